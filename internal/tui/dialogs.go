package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/matheus3301/wed/internal/modal"
	"github.com/matheus3301/wed/internal/tui/ui"
)

// showDialog layers p over the main page, gives focus to focus and marks
// the input gate until the returned close function runs.
func (a *App) showDialog(name string, p, focus tview.Primitive, state modal.State) func() {
	restore, err := a.modal.Enter(state)
	if err != nil {
		a.logger.Error("modal transition failed", zap.String("dialog", name), zap.Error(err))
		a.flash.Err(err)
		return func() {}
	}
	a.bar().Close()
	a.pages.PushOverlay(name, p, true)
	a.app.SetFocus(focus)

	var once sync.Once
	return func() {
		once.Do(func() {
			a.pages.Remove(name)
			if err := restore(); err != nil {
				a.logger.Error("modal transition failed", zap.String("dialog", name), zap.Error(err))
			}
			a.app.SetFocus(a.workspace)
		})
	}
}

// prompt asks for one line of text. onSubmit runs after the dialog closed.
func (a *App) prompt(title, initial string, onSubmit func(text string)) {
	p := ui.NewPrompt(a.theme, title, initial)
	closeFn := a.showDialog("prompt", center(p, 60, 3), p.InputField, modal.Dialog)
	p.SetOnSubmit(func(text string) {
		closeFn()
		onSubmit(text)
	})
	p.SetOnCancel(closeFn)
}

// notify shows a message until it is acknowledged.
func (a *App) notify(text string) {
	m := tview.NewModal().
		SetText(text).
		AddButtons([]string{"OK"})
	closeFn := a.showDialog("notification", m, m, modal.Notification)
	m.SetDoneFunc(func(int, string) { closeFn() })
}

// editCode opens a multi-line editor. Esc closes it and hands back the text.
func (a *App) editCode(title, text string, onClose func(text string)) {
	area := tview.NewTextArea().
		SetText(text, false)
	area.SetBorder(true).
		SetTitle(" " + title + " (Esc to close) ").
		SetTitleColor(a.theme.TitleColor).
		SetBorderColor(a.theme.BorderFocusColor)

	closeFn := a.showDialog("code", center(area, 80, 20), area, modal.Dialog)
	area.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			closeFn()
			onClose(area.GetText())
			return nil
		}
		return event
	})
}

// form shows fields with Save and Cancel buttons.
func (a *App) form(title string, build func(f *tview.Form), onSave func(f *tview.Form)) {
	f := tview.NewForm()
	build(f)
	f.SetBorder(true).SetTitle(" " + title + " ")
	f.SetTitleColor(a.theme.TitleColor)
	f.SetBorderColor(a.theme.BorderFocusColor)

	closeFn := a.showDialog("form", center(f, 60, 2*f.GetFormItemCount()+5), f, modal.Dialog)
	f.AddButton("Save", func() {
		closeFn()
		onSave(f)
	})
	f.AddButton("Cancel", closeFn)
	f.SetCancelFunc(closeFn)
}

func (a *App) bar() *ui.MenuBar { return a.menu.Bar() }
