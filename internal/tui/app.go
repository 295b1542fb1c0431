package tui

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/matheus3301/wed/internal/action"
	"github.com/matheus3301/wed/internal/bus"
	"github.com/matheus3301/wed/internal/menu"
	"github.com/matheus3301/wed/internal/modal"
	"github.com/matheus3301/wed/internal/tui/keys"
	"github.com/matheus3301/wed/internal/tui/model"
	"github.com/matheus3301/wed/internal/tui/ui"
	"github.com/matheus3301/wed/internal/tui/views"
)

const (
	pageMain     = "main"
	pageDropDown = "dropdown"
	pageHelp     = "help"
)

// Params configures the editor shell.
type Params struct {
	Menu      *menu.Config
	Policy    views.ShortcutPolicy
	HelpLinks map[action.Kind]string
	Links     action.URLOpener
	Bus       *bus.Bus
	Modal     *modal.Machine
	Logger    *zap.Logger
}

// App is the editor shell hosting the menu bar.
type App struct {
	app       *tview.Application
	pages     *ui.Pages
	theme     *ui.Theme
	doc       *model.Document
	bus       *bus.Bus
	modal     *modal.Machine
	logger    *zap.Logger
	shortcuts *keys.Registry

	dispatcher *action.Dispatcher
	menu       *views.Menu
	tabs       *ui.PageTabs
	workspace  *views.Workspace
	statusBar  *views.StatusBar
	hintBar    *ui.HintBar
	flash      *ui.FlashModel
	flashBar   *ui.FlashBar
	helpView   *views.HelpView
	closeHelp  func()

	components []ui.Component
	stopOnce   sync.Once

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp builds the shell: it wires the controllers to the dispatcher and
// builds the menu bar into the top row of the layout.
func NewApp(p Params) (*App, error) {
	if p.Menu == nil {
		return nil, errors.New("tui: nil menu configuration")
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Bus == nil {
		p.Bus = bus.New()
	}
	if p.Modal == nil {
		p.Modal = modal.NewMachine(p.Bus)
	}
	if p.HelpLinks == nil {
		p.HelpLinks = action.DefaultHelpLinks
	}

	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()
	a := &App{
		app:       tview.NewApplication(),
		pages:     ui.NewPages(),
		theme:     theme,
		doc:       model.NewDocument(),
		bus:       p.Bus,
		modal:     p.Modal,
		logger:    p.Logger,
		shortcuts: keys.NewRegistry(),
		tabs:      ui.NewPageTabs(theme),
		statusBar: views.NewStatusBar(),
		hintBar:   ui.NewHintBar(theme),
		flash:     ui.NewFlashModel(),
		flashBar:  ui.NewFlashBar(theme),
		helpView:  views.NewHelpView(theme),
		ctx:       ctx,
		cancel:    cancel,
	}
	a.workspace = views.NewWorkspace(theme, p.Bus, func(fn func()) { a.app.QueueUpdateDraw(fn) })

	links := p.Links
	if links == nil {
		links = noopOpener{}
	}
	c := newControllers(a, links)
	dispatcher, err := action.NewDispatcher(c.set(), a.doc, p.HelpLinks, p.Bus, p.Logger.Named("dispatch"))
	if err != nil {
		cancel()
		return nil, err
	}
	a.dispatcher = dispatcher

	if unknown := p.Menu.Lint(dispatcher.Handles); len(unknown) > 0 {
		p.Logger.Warn("menu items without action", zap.Strings("actions", unknown))
	}

	root := tview.NewFlex().SetDirection(tview.FlexRow)
	a.menu = views.NewMenu(views.MenuParams{
		Container:  root,
		Model:      a.doc,
		Dispatcher: dispatcher,
		Config:     p.Menu,
		Shortcuts:  a.shortcuts,
		Policy:     p.Policy,
		Gate:       p.Modal,
		Focus:      a.app.GetFocus,
		Theme:      theme,
		Logger:     p.Logger,
	})
	if err := a.menu.BuildUI(); err != nil {
		cancel()
		return nil, err
	}
	a.menu.Bar().
		SetOpenFunc(a.openDropDown).
		SetCloseFunc(a.closeDropDown)
	a.tabs.SetSelectFunc(a.openPage)

	root.
		AddItem(a.tabs, 1, 0, false).
		AddItem(a.workspace, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false).
		AddItem(a.hintBar, 1, 0, false).
		AddItem(a.flashBar, 1, 0, false)

	a.pages.AddPage(pageMain, root, true, false)
	a.pages.Push(pageMain)
	a.app.SetRoot(a.pages, true).EnableMouse(true)
	a.app.SetInputCapture(a.capture)

	a.components = []ui.Component{a.workspace, a.menu}
	var hints []ui.MenuHint
	for _, c := range a.components {
		hints = append(hints, c.Hints()...)
	}
	a.hintBar.Update(hints)
	a.refresh()
	return a, nil
}

// capture is the application-wide key hook.
func (a *App) capture(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlQ {
		a.Stop()
		return nil
	}

	if a.closeHelp != nil {
		switch event.Key() {
		case tcell.KeyF1, tcell.KeyEscape:
			a.toggleHelp()
			return nil
		}
	}

	if event = a.menu.HandleKey(event); event == nil {
		return nil
	}

	if !a.modal.Suppressed() {
		switch event.Key() {
		case tcell.KeyF10:
			a.focusMenuBar()
			return nil
		case tcell.KeyF1:
			a.toggleHelp()
			return nil
		case tcell.KeyTab:
			if a.pages.Current() == pageMain && a.workspace.HasFocus() {
				a.selectNext()
				return nil
			}
		case tcell.KeyPgUp, tcell.KeyPgDn:
			if a.pages.Current() == pageMain && a.workspace.HasFocus() {
				a.cyclePage(event.Key())
				return nil
			}
		}
	}

	// Ctrl-C is a menu shortcut here, never a quit key.
	if event.Key() == tcell.KeyCtrlC {
		return nil
	}
	return event
}

func (a *App) focusMenuBar() {
	bar := a.menu.Bar()
	if bar.Opened() >= 0 {
		bar.Close()
		return
	}
	a.app.SetFocus(bar)
}

func (a *App) openDropDown(button *ui.MenuButton, x, y int) {
	m := button.Menu()
	w, h := m.Size()
	m.SetRect(x, y, w, h)
	a.pages.PushOverlay(pageDropDown, m, false)
	a.app.SetFocus(m)
}

func (a *App) closeDropDown() {
	a.pages.Remove(pageDropDown)
	a.app.SetFocus(a.workspace)
}

// toggleHelp shows or hides the shortcut list. While it is shown the modal
// gate is held like for any dialog.
func (a *App) toggleHelp() {
	if a.closeHelp != nil {
		a.closeHelp()
		return
	}
	a.helpView.Update(a.shortcuts.Bindings(), func(id string) string {
		if item := a.menu.Bar().Item(id); item != nil {
			return item.Label()
		}
		return ""
	}, a.shortcuts.IsGlobal)
	closeFn := a.showDialog(pageHelp, center(a.helpView, 70, 30), a.helpView, modal.Dialog)
	if a.pages.Current() != pageHelp {
		return
	}
	a.closeHelp = func() {
		a.closeHelp = nil
		closeFn()
	}
}

func (a *App) selectNext() {
	st := a.doc.State()
	if len(st.Elements) == 0 {
		return
	}
	next := 0
	if len(st.Selection) > 0 {
		last := st.Selection[len(st.Selection)-1].ID
		for i, e := range st.Elements {
			if e.ID == last {
				next = (i + 1) % len(st.Elements)
				break
			}
		}
	}
	a.doc.Select(st.Elements[next].ID)
}

// cyclePage opens the previous (PgUp) or next (PgDn) page of the site.
func (a *App) cyclePage(k tcell.Key) {
	st := a.doc.State()
	n := len(st.Pages)
	if n < 2 {
		return
	}
	i := slices.Index(st.Pages, st.CurrentPage)
	if k == tcell.KeyPgUp {
		i = (i + n - 1) % n
	} else {
		i = (i + 1) % n
	}
	a.openPage(st.Pages[i])
}

func (a *App) openPage(name string) {
	if a.modal.Suppressed() {
		return
	}
	if err := a.doc.OpenPage(name); err != nil {
		a.logger.Warn("open page failed", zap.String("page", name), zap.Error(err))
		a.flash.Err(err)
	}
}

// refresh redraws everything that depends on the document.
func (a *App) refresh() {
	st := a.doc.State()
	a.tabs.Update(st.Pages, st.CurrentPage)
	a.workspace.Render(st)
	a.statusBar.SetFile(st.FileURL, st.Dirty)
	a.statusBar.SetAdvanced(st.Advanced)
	a.statusBar.SetMode(string(a.modal.Current()))
	a.menu.Redraw(st.Selection, st.Pages, st.CurrentPage)
	if item := a.menu.Bar().Item(action.ToolsAdvancedActivate.String()); item != nil {
		item.SetChecked(st.Advanced)
	}
}

// Run starts the shell and blocks until it stops.
func (a *App) Run() error {
	for _, c := range a.components {
		c.Start()
		a.logger.Debug("component started", zap.String("component", c.Name()))
	}
	go a.watch()
	err := a.app.Run()
	a.stopComponents()
	return err
}

// watch forwards document changes and flash messages to the UI goroutine.
func (a *App) watch() {
	modalCh, unsub := a.bus.Subscribe(bus.KindModalChanged, 8)
	defer unsub()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-a.doc.RefreshCh():
			a.app.QueueUpdateDraw(a.refresh)
		case <-modalCh:
			a.app.QueueUpdateDraw(func() {
				a.statusBar.SetMode(string(a.modal.Current()))
			})
		case msg := <-a.flash.Watch():
			a.app.QueueUpdateDraw(func() { a.flashBar.Update(&msg) })
		case <-ticker.C:
			// Clears expired messages.
			a.app.QueueUpdateDraw(func() { a.flashBar.Update(a.flash.Get()) })
		case <-a.ctx.Done():
			return
		}
	}
}

// Stop gracefully shuts down the TUI. Components stop before the UI loop
// so none of them is left queueing updates.
func (a *App) Stop() {
	a.cancel()
	a.stopComponents()
	a.app.Stop()
}

func (a *App) stopComponents() {
	a.stopOnce.Do(func() {
		for _, c := range a.components {
			c.Stop()
		}
	})
}

// center places p in the middle of the screen with the given size.
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

type noopOpener struct{}

func (noopOpener) Open(string) error { return nil }
