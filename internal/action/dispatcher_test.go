package action

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/matheus3301/wed/internal/bus"
	"github.com/matheus3301/wed/internal/menu"
)

func newTestDispatcher(t *testing.T, r *recorder, b *bus.Bus) (*Dispatcher, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	d, err := NewDispatcher(r.controllers(), staticModel("/sites/home.html"), DefaultHelpLinks, b, zap.New(core))
	require.NoError(t, err)
	return d, logs
}

func TestDispatchTable(t *testing.T) {
	tests := []struct {
		id   string
		want []string
	}{
		{"file.new", []string{"File.NewFile"}},
		{"file.close", []string{"File.NewFile"}},
		{"file.save", []string{`File.Save("/sites/home.html")`}},
		{"file.saveas", []string{`File.Save("")`}},
		{"file.open", []string{"File.OpenFile"}},
		{"file.publish", []string{"File.Publish"}},
		{"file.publish.settings", []string{"Settings.OpenPublishSettings", "Workspace.Redraw"}},
		{"view.file", []string{"View.Preview"}},
		{"view.file.responsize", []string{"View.PreviewResponsize"}},
		{"view.open.fileExplorer", []string{"View.OpenFileExplorer"}},
		{"view.open.cssEditor", []string{"View.OpenCSSEditor"}},
		{"view.open.jsEditor", []string{"View.OpenJSEditor"}},
		{"view.open.htmlHeadEditor", []string{"View.OpenHTMLHeadEditor"}},
		{"view.open.editor", []string{"Edit.EditElement"}},
		{"tools.advanced.activate", []string{"Tools.ToggleAdvanced"}},
		{"tools.pixlr.express", []string{"Tools.PixlrExpress"}},
		{"tools.pixlr.edit", []string{"Tools.PixlrEdit"}},
		{"insert.page", []string{"Insert.CreatePage"}},
		{"insert.text", []string{"Insert.AddElement(text)"}},
		{"insert.html", []string{"Insert.AddElement(html)"}},
		{"insert.image", []string{"Insert.BrowseAndAddImage"}},
		{"insert.container", []string{"Insert.AddElement(container)"}},
		{"edit.delete.selection", []string{"Edit.RemoveSelectedElements"}},
		{"edit.copy.selection", []string{"Edit.CopySelection"}},
		{"edit.paste.selection", []string{"Edit.PasteSelection"}},
		{"edit.undo", []string{"Edit.Undo"}},
		{"edit.redo", []string{"Edit.Redo"}},
		{"edit.move.up", []string{"Edit.MoveUp"}},
		{"edit.move.down", []string{"Edit.MoveDown"}},
		{"edit.move.to.top", []string{"Edit.MoveToTop"}},
		{"edit.move.to.bottom", []string{"Edit.MoveToBottom"}},
		{"edit.delete.page", []string{"Page.RemovePage"}},
		{"edit.rename.page", []string{"Page.RenamePage"}},
		{"help.about", []string{"Links.Open(http://www.silex.me/)"}},
		{"help.issues", []string{"Links.Open(https://github.com/silexlabs/Silex/issues?state=open)"}},
		{"help.twitter", []string{"Links.Open(http://twitter.com/silexlabs)"}},
		{"help.contributors", []string{"Links.Open(https://github.com/silexlabs/Silex/blob/develop/docs/contributors.md)"}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r := &recorder{}
			d, logs := newTestDispatcher(t, r, nil)

			d.Dispatch(tt.id)

			assert.Equal(t, tt.want, r.calls)
			assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
		})
	}
}

func TestEveryKindHasOneHandler(t *testing.T) {
	for _, k := range All() {
		t.Run(k.String(), func(t *testing.T) {
			r := &recorder{}
			d, _ := newTestDispatcher(t, r, nil)

			d.DispatchKind(k)

			want := 1
			if k == FilePublishSettings {
				want = 2
			}
			assert.Len(t, r.calls, want)
		})
	}
}

func TestDispatchUnknownIsLoggedAndIgnored(t *testing.T) {
	r := &recorder{}
	b := bus.New()
	ch, unsub := b.Subscribe("action.", 4)
	defer unsub()
	d, logs := newTestDispatcher(t, r, b)

	assert.NotPanics(t, func() { d.Dispatch("not.a.real.action") })
	assert.NotPanics(t, func() { d.Dispatch("") })

	assert.Empty(t, r.calls)
	warnings := logs.FilterMessage("menu action not found").AllUntimed()
	require.Len(t, warnings, 2)
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
	assert.Equal(t, "not.a.real.action", warnings[0].ContextMap()["action"])

	evt := <-ch
	assert.Equal(t, bus.KindActionUnknown, evt.Kind)
	assert.Equal(t, "not.a.real.action", evt.Payload.(Dispatched).ID)
}

func TestDispatchPublishesEvent(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe(bus.KindActionDispatched, 1)
	defer unsub()
	d, _ := newTestDispatcher(t, &recorder{}, b)

	d.Dispatch("edit.undo")

	select {
	case evt := <-ch:
		assert.Equal(t, Dispatched{ID: "edit.undo", Kind: EditUndo}, evt.Payload)
		assert.NotEmpty(t, evt.ID)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for dispatch event")
	}
}

func TestDispatchInInputOrder(t *testing.T) {
	r := &recorder{}
	d, _ := newTestDispatcher(t, r, nil)

	d.Dispatch("edit.undo")
	d.Dispatch("edit.redo")
	d.Dispatch("edit.undo")

	assert.Equal(t, []string{"Edit.Undo", "Edit.Redo", "Edit.Undo"}, r.calls)
}

func TestFileExplorerCallbacks(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("view.", 4)
	defer unsub()

	r := &recorder{selectURL: "/assets/logo.png", selectErr: errBoom}
	d, logs := newTestDispatcher(t, r, b)

	d.Dispatch("view.open.fileExplorer")

	selected := <-ch
	assert.Equal(t, bus.KindFileSelected, selected.Kind)
	assert.Equal(t, "/assets/logo.png", selected.Payload)

	failed := <-ch
	assert.Equal(t, bus.KindFileError, failed.Kind)
	assert.ErrorIs(t, failed.Payload.(error), errBoom)

	assert.Equal(t, 1, logs.FilterMessage("file explorer failed").Len())
}

func TestHelpLinkOpenFailureIsLogged(t *testing.T) {
	r := &recorder{openErr: errBoom}
	d, logs := newTestDispatcher(t, r, nil)

	d.Dispatch("help.forkMe")

	entries := logs.FilterMessage("open help link failed").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "https://github.com/silexlabs/Silex", entries[0].ContextMap()["url"])
}

func TestHelpLinkMissingIsLogged(t *testing.T) {
	r := &recorder{}
	core, logs := observer.New(zapcore.DebugLevel)
	d, err := NewDispatcher(r.controllers(), staticModel(""), map[Kind]string{}, nil, zap.New(core))
	require.NoError(t, err)

	d.Dispatch("help.about")

	assert.Empty(t, r.calls)
	assert.Equal(t, 1, logs.FilterMessage("help link not configured").Len())
}

func TestNewDispatcherRejectsMissingController(t *testing.T) {
	r := &recorder{}
	c := r.controllers()
	c.Tools = nil
	c.Links = nil

	_, err := NewDispatcher(c, staticModel(""), nil, nil, nil)
	require.ErrorIs(t, err, ErrMissingController)
	assert.Contains(t, err.Error(), "tools, links")

	_, err = NewDispatcher(r.controllers(), nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilModel)
}

func TestDefaultMenuIsFullyDispatchable(t *testing.T) {
	d, _ := newTestDispatcher(t, &recorder{}, nil)

	assert.Empty(t, menu.Default().Lint(d.Handles))
}
