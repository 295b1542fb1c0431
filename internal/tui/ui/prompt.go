package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Prompt is a bordered single-line input used by dialogs that ask for a
// name or a path.
type Prompt struct {
	*tview.InputField
	theme    *Theme
	onSubmit func(text string)
	onCancel func()
}

// NewPrompt creates a prompt with the given title and initial text.
func NewPrompt(theme *Theme, title, initial string) *Prompt {
	input := tview.NewInputField()
	input.SetBorder(true)
	input.SetTitle(" " + title + " ")
	input.SetTitleColor(theme.TitleColor)
	input.SetBorderColor(theme.PromptBorderColor)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabel("> ")
	input.SetLabelColor(theme.MenuKeyColor)
	input.SetText(initial)

	p := &Prompt{
		InputField: input,
		theme:      theme,
	}

	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := p.GetText()
			if text == "" {
				return
			}
			if p.onSubmit != nil {
				p.onSubmit(text)
			}
		case tcell.KeyEscape:
			if p.onCancel != nil {
				p.onCancel()
			}
		}
	})

	return p
}

// SetOnSubmit sets the callback for a non-empty submission.
func (p *Prompt) SetOnSubmit(fn func(text string)) *Prompt {
	p.onSubmit = fn
	return p
}

// SetOnCancel sets the callback when the prompt is cancelled.
func (p *Prompt) SetOnCancel(fn func()) *Prompt {
	p.onCancel = fn
	return p
}
