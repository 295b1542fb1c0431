package action

import (
	"errors"
	"fmt"
)

// recorder implements every capability and records the calls it receives.
type recorder struct {
	calls   []string
	openErr error

	selectURL string
	selectErr error
}

func (r *recorder) record(call string) { r.calls = append(r.calls, call) }

func (r *recorder) NewFile() { r.record("File.NewFile") }
func (r *recorder) OpenFile() { r.record("File.OpenFile") }
func (r *recorder) Save(url string) { r.record(fmt.Sprintf("File.Save(%q)", url)) }
func (r *recorder) Publish() { r.record("File.Publish") }

func (r *recorder) OpenPublishSettings() { r.record("Settings.OpenPublishSettings") }
func (r *recorder) Redraw() { r.record("Workspace.Redraw") }

func (r *recorder) Preview() { r.record("View.Preview") }
func (r *recorder) PreviewResponsize() { r.record("View.PreviewResponsize") }
func (r *recorder) OpenFileExplorer(onSelect func(string), onError func(error)) {
	r.record("View.OpenFileExplorer")
	if r.selectURL != "" {
		onSelect(r.selectURL)
	}
	if r.selectErr != nil {
		onError(r.selectErr)
	}
}
func (r *recorder) OpenCSSEditor() { r.record("View.OpenCSSEditor") }
func (r *recorder) OpenJSEditor() { r.record("View.OpenJSEditor") }
func (r *recorder) OpenHTMLHeadEditor() { r.record("View.OpenHTMLHeadEditor") }

func (r *recorder) EditElement() { r.record("Edit.EditElement") }
func (r *recorder) RemoveSelectedElements() { r.record("Edit.RemoveSelectedElements") }
func (r *recorder) CopySelection() { r.record("Edit.CopySelection") }
func (r *recorder) PasteSelection() { r.record("Edit.PasteSelection") }
func (r *recorder) Undo() { r.record("Edit.Undo") }
func (r *recorder) Redo() { r.record("Edit.Redo") }
func (r *recorder) MoveUp() { r.record("Edit.MoveUp") }
func (r *recorder) MoveDown() { r.record("Edit.MoveDown") }
func (r *recorder) MoveToTop() { r.record("Edit.MoveToTop") }
func (r *recorder) MoveToBottom() { r.record("Edit.MoveToBottom") }

func (r *recorder) CreatePage() { r.record("Insert.CreatePage") }
func (r *recorder) AddElement(t ElementType) { r.record(fmt.Sprintf("Insert.AddElement(%s)", t)) }
func (r *recorder) BrowseAndAddImage() { r.record("Insert.BrowseAndAddImage") }

func (r *recorder) ToggleAdvanced() { r.record("Tools.ToggleAdvanced") }
func (r *recorder) PixlrExpress() { r.record("Tools.PixlrExpress") }
func (r *recorder) PixlrEdit() { r.record("Tools.PixlrEdit") }

func (r *recorder) RemovePage() { r.record("Page.RemovePage") }
func (r *recorder) RenamePage() { r.record("Page.RenamePage") }

func (r *recorder) Open(url string) error {
	r.record("Links.Open(" + url + ")")
	return r.openErr
}

func (r *recorder) controllers() Controllers {
	return Controllers{
		File:      r,
		Settings:  r,
		Workspace: r,
		View:      r,
		Edit:      r,
		Insert:    r,
		Tools:     r,
		Page:      r,
		Links:     r,
	}
}

type staticModel string

func (m staticModel) FileURL() string { return string(m) }

var errBoom = errors.New("boom")
