package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// HintBar displays keyboard shortcut hints on a single line.
type HintBar struct {
	*tview.TextView
	theme *Theme
}

// NewHintBar creates a new hint bar.
func NewHintBar(theme *Theme) *HintBar {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 0)

	return &HintBar{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders hints left to right.
func (h *HintBar) Update(hints []MenuHint) {
	h.Clear()

	keyColor := colorName(h.theme.MenuKeyColor)
	fgColor := colorName(h.theme.FgColor)

	for _, hint := range hints {
		_, _ = fmt.Fprintf(h, "[%s::b]<%s>[-:-:-] [%s]%s[-]  ", keyColor, tview.Escape(hint.Key), fgColor, tview.Escape(hint.Description))
	}
}
