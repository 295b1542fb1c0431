package views

import (
	"errors"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/matheus3301/wed/internal/menu"
	"github.com/matheus3301/wed/internal/tui/keys"
	"github.com/matheus3301/wed/internal/tui/model"
	"github.com/matheus3301/wed/internal/tui/ui"
)

// EditorAction is dispatched when Enter is pressed outside text inputs.
const EditorAction = "view.open.editor"

// ErrAlreadyBuilt is returned by a second call to BuildUI.
var ErrAlreadyBuilt = errors.New("menu already built")

// Gate reports whether a dialog or notification owns keyboard input.
type Gate interface {
	Suppressed() bool
}

// Dispatcher routes action identifiers to the controllers.
type Dispatcher interface {
	Dispatch(id string)
}

// Container is the layout slot the menu bar is rendered into.
type Container interface {
	AddItem(item tview.Primitive, fixedSize, proportion int, focus bool) *tview.Flex
}

// Model is the read-only document the menu reflects.
type Model interface {
	FileURL() string
}

// ShortcutPolicy configures which shortcuts fire while a text input has focus.
type ShortcutPolicy struct {
	AlwaysPreventDefault    bool
	ModifierShortcutsGlobal bool
}

// MenuParams holds the collaborators of the menu bar.
type MenuParams struct {
	Container  Container
	Model      Model
	Dispatcher Dispatcher
	Config     *menu.Config
	Shortcuts  *keys.Registry
	Policy     ShortcutPolicy
	Gate       Gate
	// Focus returns the primitive that currently has keyboard focus.
	Focus  func() tview.Primitive
	Theme  *ui.Theme
	Logger *zap.Logger
}

// Menu is the application menu bar: it builds the drop-downs from the menu
// configuration, binds their shortcuts and turns selections into dispatched
// actions.
type Menu struct {
	container  Container
	model      Model
	dispatcher Dispatcher
	config     *menu.Config
	shortcuts  *keys.Registry
	policy     ShortcutPolicy
	gate       Gate
	focus      func() tview.Primitive
	theme      *ui.Theme
	logger     *zap.Logger

	bar        *ui.MenuBar
	globalKeys []string
	built      bool
}

// NewMenu creates the menu bar. Nothing is drawn until BuildUI.
func NewMenu(p MenuParams) *Menu {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Theme == nil {
		p.Theme = ui.DefaultTheme()
	}
	if p.Shortcuts == nil {
		p.Shortcuts = keys.NewRegistry()
	}
	if p.Config == nil {
		p.Config = &menu.Config{}
	}
	return &Menu{
		container:  p.Container,
		model:      p.Model,
		dispatcher: p.Dispatcher,
		config:     p.Config,
		shortcuts:  p.Shortcuts,
		policy:     p.Policy,
		gate:       p.Gate,
		focus:      p.Focus,
		theme:      p.Theme,
		logger:     p.Logger.Named("menu"),
	}
}

// BuildUI creates the menu bar, registers the shortcuts and renders the bar
// into the container. It must be called once.
func (v *Menu) BuildUI() error {
	if v.built {
		return ErrAlreadyBuilt
	}
	v.built = true

	bar := ui.NewMenuBar(v.theme)
	var globalKeys []string
	for _, desc := range v.config.Menus {
		m := ui.NewMenu(v.theme)
		for _, item := range desc.Items {
			v.addToMenu(item, m, v.shortcuts, &globalKeys)
		}
		bar.AddButton(ui.NewMenuButton(desc.Label, m).SetClass(desc.Class))
	}

	v.shortcuts.SetAlwaysPreventDefault(v.policy.AlwaysPreventDefault)
	v.shortcuts.SetModifierShortcutsAreGlobal(v.policy.ModifierShortcutsGlobal)
	if err := v.shortcuts.SetGlobalKeys(globalKeys); err != nil {
		v.logger.Error("global key registration failed", zap.Error(err))
	}
	v.globalKeys = globalKeys

	v.shortcuts.OnTrigger(func(t *keys.Trigger) {
		if v.suppressed() {
			return
		}
		t.PreventDefault()
		v.OnMenuEvent(t.ID)
	})

	if v.container != nil {
		v.container.AddItem(bar, 1, 0, false)
	}
	bar.SetActionFunc(func(item *ui.MenuItem) {
		v.OnMenuEvent(item.ID())
	})
	v.bar = bar

	v.logger.Debug("menu built",
		zap.Int("menus", len(v.config.Menus)),
		zap.Int("shortcuts", len(v.shortcuts.Bindings())),
		zap.Strings("global_keys", globalKeys))
	return nil
}

// addToMenu appends one item descriptor to m. A nil descriptor is a
// separator. A shortcut that fails to register is logged and skipped.
func (v *Menu) addToMenu(item *menu.Item, m *ui.Menu, shortcuts *keys.Registry, globalKeys *[]string) {
	if item == nil {
		m.AddSeparator()
		return
	}

	mi := ui.NewMenuItem(item.Label, item.ID).SetClass(item.Class)
	if item.Checkable {
		mi.SetCheckable(true)
	}
	if item.Mnemonic != "" {
		r, _ := utf8.DecodeRuneInString(item.Mnemonic)
		mi.SetMnemonic(r)
	}
	for _, combo := range item.Shortcuts {
		if err := shortcuts.Register(item.ID, combo); err != nil {
			v.logger.Error("shortcut registration failed",
				zap.String("action", item.ID),
				zap.String("shortcut", combo),
				zap.Error(err))
		}
		// Pushed once per shortcut, as the item declares it.
		if item.GlobalKey != "" {
			*globalKeys = append(*globalKeys, item.GlobalKey)
		}
	}

	m.AddItem(mi)
	if item.Tooltip != "" {
		mi.SetAccelerator(item.Tooltip)
	}
}

// Redraw is called whenever the selection or the pages change. The menu
// has no state-dependent items yet.
func (v *Menu) Redraw(selected []model.Element, pageNames []string, currentPage string) {}

// OnMenuEvent dispatches an action identifier coming from a menu item or a
// shortcut.
func (v *Menu) OnMenuEvent(id string) {
	v.logger.Debug("menu event", zap.String("action", id))
	if v.dispatcher != nil {
		v.dispatcher.Dispatch(id)
	}
}

// HandleKey is the application-wide key hook. It returns nil when the
// event was consumed by a shortcut or by the Enter rule, and the event
// unchanged otherwise.
func (v *Menu) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	if !v.built || event == nil {
		return event
	}

	var focused tview.Primitive
	if v.focus != nil {
		focused = v.focus()
	}

	t, ok := v.shortcuts.HandleEvent(event, isTextInput(focused))
	// An open dialog owns the key, whatever the prevent-default policy says.
	if v.suppressed() {
		return event
	}
	if ok && t.Prevented() {
		return nil
	}
	if event.Key() == tcell.KeyEnter &&
		event.Mod()&(tcell.ModShift|tcell.ModAlt|tcell.ModCtrl) == 0 &&
		!isTextInput(focused) && !isMenu(focused) {
		v.OnMenuEvent(EditorAction)
		return nil
	}
	return event
}

func (v *Menu) suppressed() bool {
	return v.gate != nil && v.gate.Suppressed()
}

// Bar returns the menu bar widget, nil before BuildUI.
func (v *Menu) Bar() *ui.MenuBar { return v.bar }

// GlobalKeys returns the global keys collected while building.
func (v *Menu) GlobalKeys() []string {
	out := make([]string, len(v.globalKeys))
	copy(out, v.globalKeys)
	return out
}

// Name implements Component.
func (v *Menu) Name() string { return "Menu" }

// Start implements Component.
func (v *Menu) Start() {}

// Stop implements Component.
func (v *Menu) Stop() {}

// Hints implements Component.
func (v *Menu) Hints() []ui.MenuHint {
	hints := []ui.MenuHint{{Key: "F10", Description: "menu"}}
	for _, h := range v.shortcuts.Hints() {
		if item := v.itemLabel(h.Action); item != "" {
			hints = append(hints, ui.MenuHint{Key: h.Key, Description: item})
		}
	}
	return hints
}

func (v *Menu) itemLabel(id string) string {
	if v.bar == nil {
		return ""
	}
	if item := v.bar.Item(id); item != nil {
		return item.Label()
	}
	return ""
}

// isTextInput reports whether p edits text and should receive plain keys.
// Wrappers must hand focus to the embedded tview widget.
func isTextInput(p tview.Primitive) bool {
	switch p.(type) {
	case *tview.InputField, *tview.TextArea:
		return true
	}
	return false
}

// isMenu reports whether p is an open menu, which handles Enter itself.
func isMenu(p tview.Primitive) bool {
	switch p.(type) {
	case *ui.Menu, *ui.MenuBar:
		return true
	}
	return false
}
