package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/matheus3301/wed/internal/action"
	"github.com/matheus3301/wed/internal/bus"
	"github.com/matheus3301/wed/internal/tui/model"
)

const (
	pixlrExpressURL = "https://pixlr.com/express/"
	pixlrEditURL    = "https://pixlr.com/editor/"
)

// Call is the payload of controller.call events.
type Call struct {
	Method string
	Args   []string
}

func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Method
	}
	return fmt.Sprintf("%s(%s)", c.Method, strings.Join(c.Args, ", "))
}

// controllers are the shell's implementation of every action capability.
// They edit the in-memory document and use dialogs for anything that needs
// input; the document is never written to disk.
type controllers struct {
	app   *App
	links action.URLOpener

	publishPath string
}

func newControllers(a *App, links action.URLOpener) *controllers {
	return &controllers{app: a, links: links}
}

func (c *controllers) set() action.Controllers {
	return action.Controllers{
		File:      c,
		Settings:  c,
		Workspace: c,
		View:      c,
		Edit:      c,
		Insert:    c,
		Tools:     c,
		Page:      c,
		Links:     c,
	}
}

func (c *controllers) record(method string, args ...string) {
	call := Call{Method: method, Args: args}
	c.app.logger.Debug("controller call", zap.Stringer("call", call))
	c.app.bus.Publish(bus.Event{Kind: bus.KindControllerCall, Payload: call})
}

// report shows err in the flash bar. Expected user errors are not logged.
func (c *controllers) report(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, model.ErrNoSelection),
		errors.Is(err, model.ErrNothingToUndo),
		errors.Is(err, model.ErrNothingToRedo),
		errors.Is(err, model.ErrEmptyClipboard):
		c.app.flash.Warn(err.Error())
	default:
		c.app.logger.Warn("controller failed", zap.Error(err))
		c.app.flash.Err(err)
	}
}

// File.

func (c *controllers) NewFile() {
	c.record("file.NewFile")
	c.app.doc.Reset("")
	c.app.flash.Info("new site")
}

func (c *controllers) OpenFile() {
	c.record("file.OpenFile")
	c.app.prompt("Open site", c.app.doc.FileURL(), func(url string) {
		c.app.doc.Reset(url)
		c.app.flash.Infof("opened %s", url)
	})
}

func (c *controllers) Save(url string) {
	c.record("file.Save", url)
	if url != "" {
		c.app.doc.MarkSaved(url)
		c.app.flash.Infof("saved %s", url)
		return
	}
	c.app.prompt("Save as", "", func(url string) {
		c.app.doc.MarkSaved(url)
		c.app.flash.Infof("saved %s", url)
	})
}

func (c *controllers) Publish() {
	c.record("file.Publish")
	if c.publishPath == "" {
		c.app.notify("No publication folder.\n\nSet one in File > Publish Settings.")
		return
	}
	c.app.flash.Infof("publish to %s requested", c.publishPath)
}

// Settings.

func (c *controllers) OpenPublishSettings() {
	c.record("settings.OpenPublishSettings")
	c.app.form("Publish settings", func(f *tview.Form) {
		f.AddInputField("Publication folder", c.publishPath, 40, nil, nil)
	}, func(f *tview.Form) {
		field, ok := f.GetFormItemByLabel("Publication folder").(*tview.InputField)
		if !ok {
			return
		}
		c.publishPath = strings.TrimSpace(field.GetText())
		c.app.flash.Infof("publication folder: %s", c.publishPath)
	})
}

// Workspace.

func (c *controllers) Redraw() {
	c.record("workspace.Redraw")
	c.app.refresh()
}

// View.

func (c *controllers) Preview() {
	c.record("view.Preview")
	st := c.app.doc.State()
	c.app.notify(fmt.Sprintf("Preview of %s\n\n%d element(s)", st.CurrentPage, len(st.Elements)))
}

func (c *controllers) PreviewResponsize() {
	c.record("view.PreviewResponsize")
	st := c.app.doc.State()
	c.app.notify(fmt.Sprintf("Responsive preview of %s\n\nmobile 320px | tablet 768px | desktop 1024px", st.CurrentPage))
}

func (c *controllers) OpenFileExplorer(onSelect func(url string), onError func(err error)) {
	c.record("view.OpenFileExplorer")
	c.browse(onSelect, onError)
}

// browse asks for a local path and resolves it to an absolute one.
func (c *controllers) browse(onSelect func(url string), onError func(err error)) {
	c.app.prompt("Browse file", "", func(path string) {
		abs, err := filepath.Abs(path)
		if err == nil {
			_, err = os.Stat(abs)
		}
		if err != nil {
			onError(err)
			return
		}
		onSelect(abs)
	})
}

func (c *controllers) OpenCSSEditor() {
	c.record("view.OpenCSSEditor")
	c.openCode("CSS", model.CodeCSS, c.app.doc.State().CSS)
}

func (c *controllers) OpenJSEditor() {
	c.record("view.OpenJSEditor")
	c.openCode("JavaScript", model.CodeJS, c.app.doc.State().JS)
}

func (c *controllers) OpenHTMLHeadEditor() {
	c.record("view.OpenHTMLHeadEditor")
	c.openCode("HTML head", model.CodeHTMLHead, c.app.doc.State().HTMLHead)
}

func (c *controllers) openCode(title string, code model.Code, text string) {
	c.app.editCode(title, text, func(edited string) {
		if edited == text {
			return
		}
		c.report(c.app.doc.SetCode(code, edited))
	})
}

// Edit.

func (c *controllers) EditElement() {
	c.record("edit.EditElement")
	st := c.app.doc.State()
	if len(st.Selection) == 0 {
		c.report(model.ErrNoSelection)
		return
	}
	e := st.Selection[0]
	text := fmt.Sprintf("Editing %s element %s", e.Type, e.ID)
	if e.Src != "" {
		text += "\n\n" + e.Src
	}
	c.app.notify(text)
}

func (c *controllers) RemoveSelectedElements() {
	c.record("edit.RemoveSelectedElements")
	c.report(c.app.doc.RemoveSelected())
}

func (c *controllers) CopySelection() {
	c.record("edit.CopySelection")
	c.report(c.app.doc.Copy())
}

func (c *controllers) PasteSelection() {
	c.record("edit.PasteSelection")
	c.report(c.app.doc.Paste())
}

func (c *controllers) Undo() {
	c.record("edit.Undo")
	c.report(c.app.doc.Undo())
}

func (c *controllers) Redo() {
	c.record("edit.Redo")
	c.report(c.app.doc.Redo())
}

func (c *controllers) MoveUp() {
	c.record("edit.MoveUp")
	c.report(c.app.doc.MoveSelection(model.MoveUp))
}

func (c *controllers) MoveDown() {
	c.record("edit.MoveDown")
	c.report(c.app.doc.MoveSelection(model.MoveDown))
}

func (c *controllers) MoveToTop() {
	c.record("edit.MoveToTop")
	c.report(c.app.doc.MoveSelection(model.MoveToTop))
}

func (c *controllers) MoveToBottom() {
	c.record("edit.MoveToBottom")
	c.report(c.app.doc.MoveSelection(model.MoveToBottom))
}

// Insert.

func (c *controllers) CreatePage() {
	c.record("insert.CreatePage")
	c.app.prompt("New page name", "", func(name string) {
		c.report(c.app.doc.AddPage(name))
	})
}

func (c *controllers) AddElement(t action.ElementType) {
	c.record("insert.AddElement", string(t))
	_, err := c.app.doc.AddElement(string(t), "")
	c.report(err)
}

func (c *controllers) BrowseAndAddImage() {
	c.record("insert.BrowseAndAddImage")
	c.browse(func(url string) {
		_, err := c.app.doc.AddElement(string(action.ElementImage), url)
		c.report(err)
	}, c.report)
}

// Tools.

func (c *controllers) ToggleAdvanced() {
	c.record("tools.ToggleAdvanced")
	if c.app.doc.ToggleAdvanced() {
		c.app.flash.Info("advanced tools on")
	} else {
		c.app.flash.Info("advanced tools off")
	}
}

func (c *controllers) PixlrExpress() {
	c.record("tools.PixlrExpress")
	c.report(c.openLink(pixlrExpressURL))
}

func (c *controllers) PixlrEdit() {
	c.record("tools.PixlrEdit")
	c.report(c.openLink(pixlrEditURL))
}

// Page.

func (c *controllers) RemovePage() {
	c.record("page.RemovePage")
	c.report(c.app.doc.RemovePage())
}

func (c *controllers) RenamePage() {
	c.record("page.RenamePage")
	c.app.prompt("Rename page", c.app.doc.State().CurrentPage, func(name string) {
		c.report(c.app.doc.RenamePage(name))
	})
}

// Links.

func (c *controllers) Open(url string) error {
	c.record("links.Open", url)
	return c.openLink(url)
}

func (c *controllers) openLink(url string) error {
	if err := c.links.Open(url); err != nil {
		return err
	}
	c.app.flash.Infof("opened %s", url)
	return nil
}
