package ui

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rivo/uniseg"
)

// MenuEntry is a row of a drop-down Menu: a *MenuItem or a *MenuSeparator.
type MenuEntry interface {
	// Selectable reports whether the entry can be highlighted and activated.
	Selectable() bool
}

// MenuItem is an actionable row identified by an action identifier.
type MenuItem struct {
	id        string
	label     string
	class     string
	checkable bool
	checked   bool
	mnemonic  rune
	accel     string
	disabled  bool
}

// NewMenuItem creates an enabled menu item.
func NewMenuItem(label, id string) *MenuItem {
	return &MenuItem{label: label, id: id}
}

func (i *MenuItem) ID() string    { return i.id }
func (i *MenuItem) Label() string { return i.label }
func (i *MenuItem) Class() string { return i.class }

// SetClass sets the item's style class.
func (i *MenuItem) SetClass(class string) *MenuItem {
	i.class = class
	return i
}

// SetCheckable makes activation toggle the item's check mark.
func (i *MenuItem) SetCheckable(v bool) *MenuItem {
	i.checkable = v
	if !v {
		i.checked = false
	}
	return i
}

func (i *MenuItem) Checkable() bool { return i.checkable }

// SetChecked sets the check mark. Ignored unless the item is checkable.
func (i *MenuItem) SetChecked(v bool) *MenuItem {
	i.checked = v && i.checkable
	return i
}

func (i *MenuItem) Checked() bool { return i.checked }

// SetMnemonic sets the key that activates the item while its menu is open.
func (i *MenuItem) SetMnemonic(r rune) *MenuItem {
	i.mnemonic = unicode.ToLower(r)
	return i
}

func (i *MenuItem) Mnemonic() rune { return i.mnemonic }

// SetAccelerator sets the shortcut hint shown at the right of the item.
func (i *MenuItem) SetAccelerator(text string) *MenuItem {
	i.accel = text
	return i
}

func (i *MenuItem) Accelerator() string { return i.accel }

// SetEnabled enables or disables the item.
func (i *MenuItem) SetEnabled(v bool) *MenuItem {
	i.disabled = !v
	return i
}

func (i *MenuItem) Enabled() bool { return !i.disabled }

// Selectable implements MenuEntry.
func (i *MenuItem) Selectable() bool { return !i.disabled }

// MenuSeparator is a non-interactive divider line.
type MenuSeparator struct{}

// NewMenuSeparator creates a separator.
func NewMenuSeparator() *MenuSeparator { return &MenuSeparator{} }

// Selectable implements MenuEntry.
func (*MenuSeparator) Selectable() bool { return false }

// Menu is a drop-down list of items and separators.
type Menu struct {
	*tview.Box
	theme    *Theme
	entries  []MenuEntry
	current  int
	onAction func(item *MenuItem)
	onDone   func(move int)
}

// NewMenu creates an empty drop-down menu.
func NewMenu(theme *Theme) *Menu {
	m := &Menu{
		Box:     tview.NewBox(),
		theme:   theme,
		current: -1,
	}
	m.SetBorder(true)
	m.SetBorderColor(theme.BorderFocusColor)
	m.SetBackgroundColor(theme.MenuBarBg)
	return m
}

// AddItem appends an item.
func (m *Menu) AddItem(item *MenuItem) *Menu {
	m.entries = append(m.entries, item)
	return m
}

// AddSeparator appends a separator.
func (m *Menu) AddSeparator() *Menu {
	m.entries = append(m.entries, NewMenuSeparator())
	return m
}

// Entries returns the menu rows in order.
func (m *Menu) Entries() []MenuEntry {
	out := make([]MenuEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Items returns the menu items in order, without separators.
func (m *Menu) Items() []*MenuItem {
	var items []*MenuItem
	for _, e := range m.entries {
		if item, ok := e.(*MenuItem); ok {
			items = append(items, item)
		}
	}
	return items
}

// Current returns the highlighted item, or nil.
func (m *Menu) Current() *MenuItem {
	if m.current < 0 || m.current >= len(m.entries) {
		return nil
	}
	item, _ := m.entries[m.current].(*MenuItem)
	return item
}

// SetActionFunc sets the handler called when an item is activated.
func (m *Menu) SetActionFunc(fn func(item *MenuItem)) *Menu {
	m.onAction = fn
	return m
}

// SetDoneFunc sets the handler called when the user leaves the menu:
// move is -1 or 1 for left/right and 0 for escape.
func (m *Menu) SetDoneFunc(fn func(move int)) *Menu {
	m.onDone = fn
	return m
}

// Reset highlights the first selectable entry.
func (m *Menu) Reset() {
	m.current = -1
	m.move(1)
}

// Activate toggles a checkable item and reports it to the action handler.
// Disabled items are ignored.
func (m *Menu) Activate(item *MenuItem) {
	if item == nil || !item.Enabled() {
		return
	}
	if item.checkable {
		item.checked = !item.checked
	}
	if m.onAction != nil {
		m.onAction(item)
	}
}

// Size returns the width and height the menu needs, border included.
func (m *Menu) Size() (int, int) {
	check := 0
	for _, item := range m.Items() {
		if item.checkable {
			check = 4
			break
		}
	}

	width := 10
	for _, item := range m.Items() {
		w := check + uniseg.StringWidth(item.label)
		if item.accel != "" {
			w += 3 + uniseg.StringWidth(item.accel)
		}
		width = max(width, w)
	}
	return width + 4, len(m.entries) + 2
}

func (m *Menu) move(step int) {
	n := len(m.entries)
	if n == 0 {
		return
	}
	i := m.current
	for range n {
		i = (i + step + n) % n
		if m.entries[i].Selectable() {
			m.current = i
			return
		}
	}
}

func (m *Menu) done(move int) {
	if m.onDone != nil {
		m.onDone(move)
	}
}

// Draw implements tview.Primitive.
func (m *Menu) Draw(screen tcell.Screen) {
	m.DrawForSubclass(screen, m)
	x, y, width, height := m.GetInnerRect()

	check := 0
	for _, item := range m.Items() {
		if item.checkable {
			check = 4
			break
		}
	}

	base := tcell.StyleDefault.Background(m.theme.MenuBarBg).Foreground(m.theme.MenuBarFg)
	for row, e := range m.entries {
		if row >= height {
			break
		}
		line := y + row

		item, ok := e.(*MenuItem)
		if !ok {
			sep := base.Foreground(m.theme.BorderColor)
			for col := range width {
				screen.SetContent(x+col, line, tview.Borders.Horizontal, nil, sep)
			}
			continue
		}

		style := base
		switch {
		case !item.Enabled():
			style = style.Foreground(m.theme.MenuDisabledFg)
		case row == m.current:
			style = style.Background(m.theme.MenuSelectedBg).Foreground(m.theme.MenuSelectedFg)
		}
		for col := range width {
			screen.SetContent(x+col, line, ' ', nil, style)
		}

		col := x + 1
		if item.checkable {
			mark := "[ ] "
			if item.checked {
				mark = "[x] "
			}
			printText(screen, col, line, check, mark, style)
		}
		col += check
		printLabel(screen, col, line, width-check-1, item.label, item.mnemonic, style, style.Foreground(m.theme.MnemonicColor))

		if item.accel != "" {
			aw := uniseg.StringWidth(item.accel)
			accel := style
			if row != m.current && item.Enabled() {
				accel = style.Foreground(m.theme.MenuAccelColor)
			}
			printText(screen, x+width-aw-1, line, aw, item.accel, accel)
		}
	}
}

// InputHandler implements tview.Primitive.
func (m *Menu) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return m.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyBacktab:
			m.move(-1)
		case tcell.KeyDown, tcell.KeyTab:
			m.move(1)
		case tcell.KeyHome:
			m.current = -1
			m.move(1)
		case tcell.KeyEnd:
			m.current = len(m.entries)
			m.move(-1)
		case tcell.KeyEnter:
			m.Activate(m.Current())
		case tcell.KeyEscape:
			m.done(0)
		case tcell.KeyLeft:
			m.done(-1)
		case tcell.KeyRight:
			m.done(1)
		case tcell.KeyRune:
			if event.Rune() == ' ' {
				m.Activate(m.Current())
				return
			}
			r := unicode.ToLower(event.Rune())
			for i, e := range m.entries {
				if item, ok := e.(*MenuItem); ok && item.mnemonic != 0 && item.mnemonic == r && item.Enabled() {
					m.current = i
					m.Activate(item)
					return
				}
			}
		}
	})
}

// MouseHandler implements tview.Primitive.
func (m *Menu) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return m.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		mx, my := event.Position()
		if !m.InRect(mx, my) {
			return false, nil
		}
		_, y, _, _ := m.GetInnerRect()
		row := my - y
		if row < 0 || row >= len(m.entries) || !m.entries[row].Selectable() {
			return true, nil
		}
		switch action {
		case tview.MouseMove:
			m.current = row
		case tview.MouseLeftClick:
			m.current = row
			m.Activate(m.Current())
		}
		return true, nil
	})
}

func printText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	return printLabel(screen, x, y, maxWidth, text, 0, style, style)
}

// printLabel draws text and highlights the first occurrence of mnemonic.
func printLabel(screen tcell.Screen, x, y, maxWidth int, text string, mnemonic rune, style, mnemonicStyle tcell.Style) int {
	drawn := 0
	marked := mnemonic == 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := gr.Width()
		if drawn+w > maxWidth {
			break
		}
		st := style
		if !marked && unicode.ToLower(runes[0]) == mnemonic {
			st = mnemonicStyle.Underline(true)
			marked = true
		}
		screen.SetContent(x+drawn, y, runes[0], runes[1:], st)
		drawn += w
	}
	return drawn
}

// mnemonicOf returns the lower-cased first letter of label.
func mnemonicOf(label string) rune {
	for _, r := range strings.TrimSpace(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
	}
	return 0
}
