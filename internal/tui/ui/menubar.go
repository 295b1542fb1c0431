package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rivo/uniseg"
)

// MenuButton is a top-level entry of the MenuBar owning a drop-down Menu.
type MenuButton struct {
	label string
	class string
	menu  *Menu
}

// NewMenuButton creates a button that opens menu.
func NewMenuButton(label string, menu *Menu) *MenuButton {
	return &MenuButton{label: label, menu: menu}
}

func (b *MenuButton) Label() string { return b.label }
func (b *MenuButton) Class() string { return b.class }
func (b *MenuButton) Menu() *Menu   { return b.menu }

// SetClass sets the button's style class.
func (b *MenuButton) SetClass(class string) *MenuButton {
	b.class = class
	return b
}

func (b *MenuButton) width() int { return uniseg.StringWidth(b.label) + 2 }

// MenuBar is a horizontal row of menu buttons.
// Opening and closing drop-downs is delegated to the open and close
// handlers so the host decides where menus are layered.
type MenuBar struct {
	*tview.Box
	theme   *Theme
	buttons []*MenuButton
	current int
	opened  int

	onAction func(item *MenuItem)
	onOpen   func(button *MenuButton, x, y int)
	onClose  func()
}

// NewMenuBar creates an empty menu bar.
func NewMenuBar(theme *Theme) *MenuBar {
	b := &MenuBar{
		Box:    tview.NewBox(),
		theme:  theme,
		opened: -1,
	}
	b.SetBackgroundColor(theme.MenuBarBg)
	return b
}

// AddButton appends a top-level button. Button order is display order.
func (b *MenuBar) AddButton(button *MenuButton) *MenuBar {
	idx := len(b.buttons)
	b.buttons = append(b.buttons, button)
	button.menu.SetActionFunc(func(item *MenuItem) {
		b.Close()
		if b.onAction != nil {
			b.onAction(item)
		}
	})
	button.menu.SetDoneFunc(func(move int) {
		b.Close()
		if move != 0 && len(b.buttons) > 0 {
			b.Open((idx + move + len(b.buttons)) % len(b.buttons))
		}
	})
	return b
}

// Buttons returns the top-level buttons in order.
func (b *MenuBar) Buttons() []*MenuButton {
	out := make([]*MenuButton, len(b.buttons))
	copy(out, b.buttons)
	return out
}

// Items returns every item of every menu, in display order.
func (b *MenuBar) Items() []*MenuItem {
	var items []*MenuItem
	for _, button := range b.buttons {
		items = append(items, button.menu.Items()...)
	}
	return items
}

// Item returns the first item whose identifier is id.
func (b *MenuBar) Item(id string) *MenuItem {
	for _, item := range b.Items() {
		if item.id == id {
			return item
		}
	}
	return nil
}

// SetActionFunc sets the handler for the "action" event fired when any
// item of any menu is activated.
func (b *MenuBar) SetActionFunc(fn func(item *MenuItem)) *MenuBar {
	b.onAction = fn
	return b
}

// SetOpenFunc sets the handler that shows a button's drop-down at x, y.
func (b *MenuBar) SetOpenFunc(fn func(button *MenuButton, x, y int)) *MenuBar {
	b.onOpen = fn
	return b
}

// SetCloseFunc sets the handler that hides the open drop-down and hands
// focus back to the host.
func (b *MenuBar) SetCloseFunc(fn func()) *MenuBar {
	b.onClose = fn
	return b
}

// Current returns the index of the highlighted button.
func (b *MenuBar) Current() int { return b.current }

// Opened returns the index of the open drop-down, or -1.
func (b *MenuBar) Opened() int { return b.opened }

// Open highlights button i and asks the host to show its drop-down.
func (b *MenuBar) Open(i int) {
	if i < 0 || i >= len(b.buttons) {
		return
	}
	if b.opened >= 0 {
		b.Close()
	}
	b.current = i
	b.opened = i
	button := b.buttons[i]
	button.menu.Reset()

	x, y, _, _ := b.GetInnerRect()
	if b.onOpen != nil {
		b.onOpen(button, x+b.offset(i), y+1)
	}
}

// Close hides the open drop-down, if any.
func (b *MenuBar) Close() {
	if b.opened < 0 {
		return
	}
	b.opened = -1
	if b.onClose != nil {
		b.onClose()
	}
}

func (b *MenuBar) offset(i int) int {
	x := 0
	for _, button := range b.buttons[:i] {
		x += button.width() + 1
	}
	return x
}

func (b *MenuBar) buttonAt(col int) int {
	x, _, _, _ := b.GetInnerRect()
	for i, button := range b.buttons {
		start := x + b.offset(i)
		if col >= start && col < start+button.width() {
			return i
		}
	}
	return -1
}

// Draw implements tview.Primitive.
func (b *MenuBar) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
	x, y, width, height := b.GetInnerRect()
	if height < 1 {
		return
	}

	base := tcell.StyleDefault.Background(b.theme.MenuBarBg).Foreground(b.theme.MenuBarFg)
	active := b.HasFocus() || b.opened >= 0
	for i, button := range b.buttons {
		col := x + b.offset(i)
		if col >= x+width {
			break
		}
		style := base
		if active && i == b.current {
			style = style.Background(b.theme.MenuSelectedBg).Foreground(b.theme.MenuSelectedFg)
		}
		avail := x + width - col
		screen.SetContent(col, y, ' ', nil, style)
		n := printLabel(screen, col+1, y, avail-1, button.label, mnemonicOf(button.label), style, style.Foreground(b.theme.MnemonicColor))
		if col+1+n < x+width {
			screen.SetContent(col+1+n, y, ' ', nil, style)
		}
	}
}

// InputHandler implements tview.Primitive.
func (b *MenuBar) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return b.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		n := len(b.buttons)
		if n == 0 {
			return
		}
		switch event.Key() {
		case tcell.KeyLeft:
			b.current = (b.current - 1 + n) % n
		case tcell.KeyRight:
			b.current = (b.current + 1) % n
		case tcell.KeyEnter, tcell.KeyDown:
			b.Open(b.current)
		case tcell.KeyEscape:
			if b.onClose != nil {
				b.onClose()
			}
		case tcell.KeyRune:
			r := unicode.ToLower(event.Rune())
			if r == ' ' {
				b.Open(b.current)
				return
			}
			for i, button := range b.buttons {
				if mnemonicOf(button.label) == r {
					b.Open(i)
					return
				}
			}
		}
	})
}

// MouseHandler implements tview.Primitive.
func (b *MenuBar) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		mx, my := event.Position()
		if !b.InRect(mx, my) || action != tview.MouseLeftClick {
			return false, nil
		}
		if i := b.buttonAt(mx); i >= 0 {
			if i == b.opened {
				b.Close()
			} else {
				b.Open(i)
			}
		}
		return true, nil
	})
}
