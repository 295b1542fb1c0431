package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PageTabs shows the document's pages with the current one highlighted.
// Clicking a tab calls the select func with the page name.
type PageTabs struct {
	*tview.TextView
	theme    *Theme
	pages    []string
	onSelect func(name string)
}

// NewPageTabs creates a new page tab strip.
func NewPageTabs(theme *Theme) *PageTabs {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true)
	tv.SetBackgroundColor(theme.BgColor)

	p := &PageTabs{
		TextView: tv,
		theme:    theme,
	}
	tv.SetHighlightedFunc(func(added, _, _ []string) {
		if len(added) == 0 || p.onSelect == nil {
			return
		}
		i, err := strconv.Atoi(added[0])
		if err != nil || i < 0 || i >= len(p.pages) {
			return
		}
		p.onSelect(p.pages[i])
	})
	return p
}

// SetSelectFunc sets the handler called when a tab is clicked.
func (p *PageTabs) SetSelectFunc(fn func(name string)) *PageTabs {
	p.onSelect = fn
	return p
}

// Update renders the page names.
func (p *PageTabs) Update(pages []string, current string) {
	p.Clear()
	// Drop the region left highlighted by the last click.
	p.Highlight()
	p.pages = append(p.pages[:0], pages...)
	if len(pages) == 0 {
		return
	}

	parts := make([]string, 0, len(pages))
	for i, name := range pages {
		if name == current {
			parts = append(parts, fmt.Sprintf(`["%d"][%s:%s:b] %s [-:-:-][""]`,
				i, colorName(p.theme.TabActiveFg), colorName(p.theme.TabActiveBg), tview.Escape(name)))
		} else {
			parts = append(parts, fmt.Sprintf(`["%d"][%s:%s:] %s [-:-:-][""]`,
				i, colorName(p.theme.TabInactiveFg), colorName(p.theme.TabInactiveBg), tview.Escape(name)))
		}
	}
	_, _ = fmt.Fprint(p, strings.Join(parts, " "))
}

// colorName returns a tview-compatible color name string.
func colorName(c tcell.Color) string {
	for name, val := range tcell.ColorNames {
		if val == c {
			return name
		}
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
