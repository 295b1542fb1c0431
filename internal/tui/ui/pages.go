package ui

import "github.com/rivo/tview"

// Pages is a stack-based page manager wrapping tview.Pages.
// Screens replace each other on Push; overlays (drop-downs, dialogs) are
// drawn on top of the current screen until removed.
type Pages struct {
	*tview.Pages
	stack []pageEntry
}

type pageEntry struct {
	name    string
	overlay bool
}

// NewPages creates a new stack-based page manager.
func NewPages() *Pages {
	return &Pages{
		Pages: tview.NewPages(),
	}
}

// Push adds a page to the top of the stack and shows it, hiding the
// previous screen.
func (p *Pages) Push(name string) {
	if len(p.stack) > 0 {
		p.HidePage(p.stack[len(p.stack)-1].name)
	}
	p.stack = append(p.stack, pageEntry{name: name})
	p.ShowPage(name)
	p.SendToFront(name)
}

// PushOverlay adds item on top of the current page without hiding it.
// With resize false the item keeps the rect set by the caller.
// An overlay already named name is replaced.
func (p *Pages) PushOverlay(name string, item tview.Primitive, resize bool) {
	p.Remove(name)
	p.AddPage(name, item, resize, true)
	p.stack = append(p.stack, pageEntry{name: name, overlay: true})
	p.SendToFront(name)
}

// Remove drops the named overlay wherever it sits in the stack.
// It reports whether the overlay was present.
func (p *Pages) Remove(name string) bool {
	for i, e := range p.stack {
		if e.name == name && e.overlay {
			p.stack = append(p.stack[:i], p.stack[i+1:]...)
			p.RemovePage(name)
			return true
		}
	}
	return false
}

// Current returns the name of the current (top) page.
func (p *Pages) Current() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1].name
}
