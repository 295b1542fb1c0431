package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesOverlays(t *testing.T) {
	p := NewPages()
	p.AddPage("main", tview.NewBox(), true, false)
	p.Push("main")
	p.PushOverlay("dropdown", tview.NewBox(), false)

	assert.Equal(t, "dropdown", p.Current())
	assert.True(t, p.HasPage("dropdown"))
	front, _ := p.GetFrontPage()
	assert.Equal(t, "dropdown", front)

	p.PushOverlay("dropdown", tview.NewBox(), false)
	assert.Len(t, p.stack, 2, "replaced, not stacked")

	assert.True(t, p.Remove("dropdown"))
	assert.False(t, p.HasPage("dropdown"))
	assert.Equal(t, "main", p.Current())
}

func TestPagesRemove(t *testing.T) {
	p := NewPages()
	p.AddPage("main", tview.NewBox(), true, false)
	p.Push("main")
	p.PushOverlay("dialog", tview.NewBox(), true)
	p.PushOverlay("dropdown", tview.NewBox(), false)

	assert.True(t, p.Remove("dialog"))
	assert.False(t, p.Remove("dialog"))
	assert.False(t, p.Remove("main"), "screens are not overlays")
	assert.Equal(t, "dropdown", p.Current())
	assert.True(t, p.HasPage("main"))
	assert.Equal(t, "", NewPages().Current())
}

func TestFlashModelExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	f := NewFlashModel()
	f.now = func() time.Time { return now }

	assert.Nil(t, f.Get())

	f.Infof("saved %s", "index.html")
	msg := f.Get()
	require.NotNil(t, msg)
	assert.Equal(t, "saved index.html", msg.Text)
	assert.Equal(t, FlashInfo, msg.Level)

	f.Err(errors.New("boom"))
	assert.Equal(t, FlashErr, f.Get().Level)

	now = now.Add(time.Minute)
	assert.Nil(t, f.Get())

	watched := <-f.Watch()
	assert.Equal(t, "saved index.html", watched.Text)
}
