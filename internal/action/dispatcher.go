package action

import (
	"errors"

	"github.com/matheus3301/wed/internal/bus"
	"go.uber.org/zap"
)

// ErrNilModel is returned by NewDispatcher when no document model is given.
var ErrNilModel = errors.New("nil document model")

// Dispatched is the payload of bus.KindActionDispatched and bus.KindActionUnknown events.
type Dispatched struct {
	ID   string
	Kind Kind
}

// Dispatcher routes action identifiers to controller calls.
// Dispatch is synchronous and fire-and-forget: it never waits on the
// controllers and never fails for an unknown identifier.
type Dispatcher struct {
	handlers map[Kind]func()
	bus      *bus.Bus
	logger   *zap.Logger
}

// NewDispatcher builds the dispatch table over the given controllers.
// links maps each help action to the URL it opens; see HelpLinks.
func NewDispatcher(c Controllers, model Model, links map[Kind]string, b *bus.Bus, logger *zap.Logger) (*Dispatcher, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, ErrNilModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dispatcher{bus: b, logger: logger}
	d.handlers = map[Kind]func(){
		FileNew:   c.File.NewFile,
		FileClose: c.File.NewFile,
		FileSave:  func() { c.File.Save(model.FileURL()) },
		FileSaveAs: func() {
			c.File.Save("")
		},
		FileOpen:    c.File.OpenFile,
		FilePublish: c.File.Publish,
		FilePublishSettings: func() {
			c.Settings.OpenPublishSettings()
			c.Workspace.Redraw()
		},

		ViewFile:           c.View.Preview,
		ViewFileResponsize: c.View.PreviewResponsize,
		ViewOpenFileExplorer: func() {
			c.View.OpenFileExplorer(d.fileSelected, d.fileError)
		},
		ViewOpenCSSEditor:      c.View.OpenCSSEditor,
		ViewOpenJSEditor:       c.View.OpenJSEditor,
		ViewOpenHTMLHeadEditor: c.View.OpenHTMLHeadEditor,
		ViewOpenEditor:         c.Edit.EditElement,

		ToolsAdvancedActivate: c.Tools.ToggleAdvanced,
		ToolsPixlrExpress:     c.Tools.PixlrExpress,
		ToolsPixlrEdit:        c.Tools.PixlrEdit,

		InsertPage:      c.Insert.CreatePage,
		InsertText:      func() { c.Insert.AddElement(ElementText) },
		InsertHTML:      func() { c.Insert.AddElement(ElementHTML) },
		InsertImage:     c.Insert.BrowseAndAddImage,
		InsertContainer: func() { c.Insert.AddElement(ElementContainer) },

		EditDeleteSelection: c.Edit.RemoveSelectedElements,
		EditCopySelection:   c.Edit.CopySelection,
		EditPasteSelection:  c.Edit.PasteSelection,
		EditUndo:            c.Edit.Undo,
		EditRedo:            c.Edit.Redo,
		EditMoveUp:          c.Edit.MoveUp,
		EditMoveDown:        c.Edit.MoveDown,
		EditMoveToTop:       c.Edit.MoveToTop,
		EditMoveToBottom:    c.Edit.MoveToBottom,
		EditDeletePage:      c.Page.RemovePage,
		EditRenamePage:      c.Page.RenamePage,
	}

	for k := HelpAbout; k <= HelpContributors; k++ {
		url := links[k]
		d.handlers[k] = func() {
			if url == "" {
				d.logger.Warn("help link not configured", zap.String("action", k.String()))
				return
			}
			if err := c.Links.Open(url); err != nil {
				d.logger.Error("open help link failed", zap.String("action", k.String()), zap.String("url", url), zap.Error(err))
			}
		}
	}

	return d, nil
}

// Dispatch runs the controller call bound to id. Unknown identifiers are
// logged as a warning and otherwise ignored.
func (d *Dispatcher) Dispatch(id string) {
	k, ok := Parse(id)
	if !ok {
		d.logger.Warn("menu action not found", zap.String("action", id))
		d.bus.Publish(bus.Event{Kind: bus.KindActionUnknown, Payload: Dispatched{ID: id}})
		return
	}
	d.DispatchKind(k)
}

// DispatchKind runs the controller call bound to k.
func (d *Dispatcher) DispatchKind(k Kind) {
	handler, ok := d.handlers[k]
	if !ok {
		d.logger.Warn("menu action not found", zap.String("action", k.String()))
		d.bus.Publish(bus.Event{Kind: bus.KindActionUnknown, Payload: Dispatched{ID: k.String(), Kind: k}})
		return
	}
	d.logger.Debug("menu action", zap.String("action", k.String()))
	handler()
	d.bus.Publish(bus.Event{Kind: bus.KindActionDispatched, Payload: Dispatched{ID: k.String(), Kind: k}})
}

// Handles reports whether the dispatch table has an entry for id.
func (d *Dispatcher) Handles(id string) bool {
	k, ok := Parse(id)
	if !ok {
		return false
	}
	_, ok = d.handlers[k]
	return ok
}

func (d *Dispatcher) fileSelected(url string) {
	d.logger.Info("file explorer selection", zap.String("url", url))
	d.bus.Publish(bus.Event{Kind: bus.KindFileSelected, Payload: url})
}

func (d *Dispatcher) fileError(err error) {
	d.logger.Error("file explorer failed", zap.Error(err))
	d.bus.Publish(bus.Event{Kind: bus.KindFileError, Payload: err})
}
