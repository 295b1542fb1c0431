package views

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// StatusBar displays the file location, unsaved changes and the input mode.
type StatusBar struct {
	*tview.TextView
	file     string
	dirty    bool
	mode     string
	advanced bool
	now      func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv, mode: "idle", now: time.Now}
}

// SetFile updates the file display.
func (sb *StatusBar) SetFile(url string, dirty bool) {
	sb.file = url
	sb.dirty = dirty
	sb.render()
}

// SetMode shows which surface owns keyboard input.
func (sb *StatusBar) SetMode(mode string) {
	sb.mode = mode
	sb.render()
}

// SetAdvanced toggles the advanced tools indicator.
func (sb *StatusBar) SetAdvanced(v bool) {
	sb.advanced = v
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()

	file := sb.file
	if file == "" {
		file = "untitled"
	}
	dirty := " "
	if sb.dirty {
		dirty = "[yellow]*[-]"
	}
	adv := ""
	if sb.advanced {
		adv = " | [green]advanced[-]"
	}

	line := fmt.Sprintf(" [::b]%s[-:-:-]%s | %s%s | %s",
		tview.Escape(sanitizeForTerminal(file)), dirty, sb.mode, adv, sb.now().Format("15:04"))
	_, _ = fmt.Fprint(sb, line)
}
