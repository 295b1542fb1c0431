package views

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/matheus3301/wed/internal/tui/keys"
	"github.com/matheus3301/wed/internal/tui/ui"
)

// HelpView lists every bound shortcut next to the menu item it triggers.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Shortcuts ")
	tv.SetTitleColor(theme.TitleColor)

	return &HelpView{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the bindings. label maps an action identifier to the
// item label shown in the menu; global reports combos that also fire in
// text inputs.
func (hv *HelpView) Update(bindings []keys.Binding, label func(id string) string, global func(c keys.Combo) bool) {
	hv.Clear()
	kc := fmt.Sprintf("#%06x", hv.theme.MenuKeyColor.Hex())

	_, _ = fmt.Fprint(hv, "\n  [::b]Menu shortcuts[-:-:-]\n\n")
	for _, b := range bindings {
		name := label(b.ID)
		if name == "" {
			name = b.ID
		}
		mark := ""
		if global(b.Combo) {
			mark = " [::d](global)[-:-:-]"
		}
		_, _ = fmt.Fprintf(hv, "  [%s]%-16s[-:-:-] %s%s\n", kc, b.Combo.Label(), tview.Escape(name), mark)
	}

	_, _ = fmt.Fprintf(hv, `
  [::b]Navigation[-:-:-]

  [%s]F10[-:-:-]    Open the menu bar      [%s]Esc[-:-:-]    Close menu or dialog
  [%s]Left/Right[-:-:-] Switch menu         [%s]Up/Down[-:-:-] Move in a menu
  [%s]Enter[-:-:-]  Edit selected element  [%s]Tab[-:-:-]    Select next element
  [%s]PgUp/PgDn[-:-:-] Switch page          [%s]Ctrl-Q[-:-:-] Quit
`, kc, kc, kc, kc, kc, kc, kc, kc)
}
