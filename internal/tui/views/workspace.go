package views

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/matheus3301/wed/internal/action"
	"github.com/matheus3301/wed/internal/bus"
	"github.com/matheus3301/wed/internal/modal"
	"github.com/matheus3301/wed/internal/tui/model"
	"github.com/matheus3301/wed/internal/tui/ui"
)

const maxActivity = 200

// Workspace shows the elements of the current page and a log of the
// controller calls made through the menu.
type Workspace struct {
	*tview.Flex
	theme    *ui.Theme
	elements *tview.TextView
	activity *tview.TextView
	lines    []string

	bus    *bus.Bus
	update func(func())
	unsub  func()
	done   chan struct{}
}

// NewWorkspace creates the workspace. update runs a function on the UI
// goroutine and redraws, e.g. tview.Application.QueueUpdateDraw.
func NewWorkspace(theme *ui.Theme, b *bus.Bus, update func(func())) *Workspace {
	elements := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	elements.SetBorder(true).SetTitle(" Page ")
	elements.SetBorderColor(theme.BorderColor)
	elements.SetTitleColor(theme.TitleColor)
	elements.SetBackgroundColor(theme.BgColor)

	activity := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	activity.SetBorder(true).SetTitle(" Activity ")
	activity.SetBorderColor(theme.BorderColor)
	activity.SetTitleColor(theme.TitleColor)
	activity.SetBackgroundColor(theme.BgColor)

	flex := tview.NewFlex().
		AddItem(elements, 0, 2, true).
		AddItem(activity, 0, 1, false)

	if update == nil {
		update = func(fn func()) { fn() }
	}
	return &Workspace{
		Flex:     flex,
		theme:    theme,
		elements: elements,
		activity: activity,
		bus:      b,
		update:   update,
	}
}

// Render draws the elements of the current page, topmost last.
func (w *Workspace) Render(st model.State) {
	w.elements.Clear()
	w.elements.SetTitle(fmt.Sprintf(" %s ", sanitizeForTerminal(st.CurrentPage)))

	if len(st.Elements) == 0 {
		_, _ = fmt.Fprint(w.elements, "[::d]empty page, use Insert to add elements[-:-:-]")
		return
	}

	selected := make(map[string]bool, len(st.Selection))
	for _, e := range st.Selection {
		selected[e.ID] = true
	}
	for i, e := range st.Elements {
		marker := " "
		if selected[e.ID] {
			marker = "[orange::b]>[-:-:-]"
		}
		line := fmt.Sprintf("%s %2d [::b]%-9s[-:-:-] %s", marker, i+1, e.Type, e.ID)
		if e.Src != "" {
			line += "  " + tview.Escape(sanitizeForTerminal(e.Src))
		}
		_, _ = fmt.Fprintln(w.elements, line)
	}
}

// Log appends a line to the activity log.
func (w *Workspace) Log(line string) {
	w.lines = append(w.lines, line)
	if len(w.lines) > maxActivity {
		w.lines = w.lines[len(w.lines)-maxActivity:]
	}
	w.activity.SetText(strings.Join(w.lines, "\n"))
	w.activity.ScrollToEnd()
}

// Name implements Component.
func (w *Workspace) Name() string { return "Workspace" }

// Start subscribes to controller and action events and logs them.
func (w *Workspace) Start() {
	if w.bus == nil || w.unsub != nil {
		return
	}
	ch, unsub := w.bus.Subscribe("", 64)
	w.unsub = unsub
	w.done = make(chan struct{})
	go func(done chan struct{}) {
		for {
			select {
			case evt := <-ch:
				line := describe(evt)
				if line == "" {
					continue
				}
				// The UI loop may be gone once Stop ran.
				select {
				case <-done:
					return
				default:
				}
				w.update(func() { w.Log(line) })
			case <-done:
				return
			}
		}
	}(w.done)
}

// Stop ends the subscription started by Start.
func (w *Workspace) Stop() {
	if w.unsub == nil {
		return
	}
	w.unsub()
	close(w.done)
	w.unsub = nil
}

// Hints implements Component.
func (w *Workspace) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "select next"},
		{Key: "PgUp/PgDn", Description: "page"},
		{Key: "F1", Description: "shortcuts"},
		{Key: "Ctrl-Q", Description: "quit"},
	}
}

func describe(evt bus.Event) string {
	ts := evt.Timestamp.Format("15:04:05")
	switch evt.Kind {
	case bus.KindActionUnknown:
		if d, ok := evt.Payload.(action.Dispatched); ok {
			return fmt.Sprintf("[::d]%s[-:-:-] [orange]unknown action %q[-]", ts, d.ID)
		}
	case bus.KindFileSelected:
		return fmt.Sprintf("[::d]%s[-:-:-] file selected %v", ts, tview.Escape(fmt.Sprint(evt.Payload)))
	case bus.KindFileError:
		return fmt.Sprintf("[::d]%s[-:-:-] [red]file error: %v[-]", ts, evt.Payload)
	case bus.KindModalChanged:
		if c, ok := evt.Payload.(modal.Change); ok {
			return fmt.Sprintf("[::d]%s input %s -> %s[-:-:-]", ts, c.From, c.To)
		}
	}
	if strings.HasPrefix(evt.Kind, bus.KindControllerCall) {
		return fmt.Sprintf("[::d]%s[-:-:-] %s", ts, tview.Escape(fmt.Sprint(evt.Payload)))
	}
	return ""
}
