package keys

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctrl(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModCtrl) }

func TestRegisterConflict(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("edit.copy.selection", "ctrl+c"))

	err := r.Register("file.close", "ctrl+c")
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "edit.copy.selection", conflict.Existing)
	assert.Equal(t, "file.close", conflict.ID)
	assert.Contains(t, err.Error(), "ctrl+c")

	id, ok := r.Lookup(MustParse("ctrl+c"))
	require.True(t, ok)
	assert.Equal(t, "edit.copy.selection", id)
	assert.Len(t, r.Bindings(), 1)
}

func TestRegisterInvalid(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register("file.save", "ctrl+nope"))
	assert.Empty(t, r.Bindings())
}

func TestHandleEventTriggersListeners(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("file.save", "ctrl+s"))

	var got []string
	r.OnTrigger(func(tr *Trigger) { got = append(got, "first:"+tr.ID) })
	r.OnTrigger(func(tr *Trigger) {
		got = append(got, "second:"+tr.ID)
		tr.PreventDefault()
	})

	tr, ok := r.HandleEvent(ctrl(tcell.KeyCtrlS), false)
	require.True(t, ok)
	assert.True(t, tr.Prevented())
	assert.Equal(t, []string{"first:file.save", "second:file.save"}, got)

	_, ok = r.HandleEvent(ctrl(tcell.KeyCtrlX), false)
	assert.False(t, ok)
}

func TestHandleEventDefaultNotPrevented(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("edit.delete.selection", "delete"))

	tr, ok := r.HandleEvent(tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), false)
	require.True(t, ok)
	assert.False(t, tr.Prevented())

	r.SetAlwaysPreventDefault(true)
	tr, ok = r.HandleEvent(tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), false)
	require.True(t, ok)
	assert.True(t, tr.Prevented())
}

func TestHandleEventInTextInput(t *testing.T) {
	newRegistry := func() *Registry {
		r := NewRegistry()
		require.NoError(t, r.Register("file.save", "ctrl+s"))
		require.NoError(t, r.Register("edit.copy.selection", "ctrl+c"))
		require.NoError(t, r.Register("edit.delete.selection", "delete"))
		return r
	}
	del := tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone)

	t.Run("only global keys fire", func(t *testing.T) {
		r := newRegistry()
		require.NoError(t, r.SetGlobalKeys([]string{"ctrl+s", "ctrl+s"}))

		_, ok := r.HandleEvent(ctrl(tcell.KeyCtrlS), true)
		assert.True(t, ok)
		_, ok = r.HandleEvent(ctrl(tcell.KeyCtrlC), true)
		assert.False(t, ok)
		_, ok = r.HandleEvent(del, true)
		assert.False(t, ok)
		_, ok = r.HandleEvent(ctrl(tcell.KeyCtrlC), false)
		assert.True(t, ok)
	})

	t.Run("modifier shortcuts global", func(t *testing.T) {
		r := newRegistry()
		r.SetModifierShortcutsAreGlobal(true)

		_, ok := r.HandleEvent(ctrl(tcell.KeyCtrlC), true)
		assert.True(t, ok)
		_, ok = r.HandleEvent(del, true)
		assert.False(t, ok)
	})

	t.Run("all shortcuts global", func(t *testing.T) {
		r := newRegistry()
		r.SetAllShortcutsAreGlobal(true)

		_, ok := r.HandleEvent(del, true)
		assert.True(t, ok)
	})
}

func TestSetGlobalKeysReportsBadEntries(t *testing.T) {
	r := NewRegistry()
	err := r.SetGlobalKeys([]string{"ctrl+s", "ctrl+???", "bogus+z"})
	assert.Error(t, err)
	assert.True(t, r.IsGlobal(MustParse("ctrl+s")))

	require.NoError(t, r.SetGlobalKeys(nil))
	assert.False(t, r.IsGlobal(MustParse("ctrl+s")))
}

func TestHints(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("edit.redo", "ctrl+y"))
	require.NoError(t, r.Register("edit.redo", "shift+ctrl+z"))
	require.NoError(t, r.Register("file.save", "ctrl+s"))

	assert.Equal(t, []Hint{
		{Key: "Ctrl+Y", Action: "edit.redo"},
		{Key: "Ctrl+S", Action: "file.save"},
	}, r.Hints())
}
