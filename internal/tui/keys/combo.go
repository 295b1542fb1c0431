// Package keys parses keyboard shortcut strings and matches them against
// terminal key events.
package keys

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Combo is a normalised key combination. Ctrl+letter combos use the
// tcell control keys (tcell.KeyCtrlA..KeyCtrlZ), printable keys use
// tcell.KeyRune with a lower-case rune and ModShift for upper case.
type Combo struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

const modMask = tcell.ModCtrl | tcell.ModAlt | tcell.ModShift

var namedKeys = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"return":    tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"del":       tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pageup":    tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"pagedown":  tcell.KeyPgDn,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

var keyLabels = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyBacktab:    "Backtab",
	tcell.KeyEscape:     "Esc",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PgUp",
	tcell.KeyPgDn:       "PgDn",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
}

// Parse reads a combo such as "ctrl+s", "shift+ctrl+z", "delete" or "a".
// Modifier names are ctrl, alt and shift, in any order.
func Parse(s string) (Combo, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return Combo{}, fmt.Errorf("parse combo: empty")
	}

	parts := strings.Split(spec, "+")
	if strings.HasSuffix(spec, "++") || spec == "+" {
		// "ctrl++" binds the plus key itself.
		parts = append(parts[:len(parts)-2], "+")
	}

	var mod tcell.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "ctrl", "control":
			mod |= tcell.ModCtrl
		case "alt", "option":
			mod |= tcell.ModAlt
		case "shift":
			mod |= tcell.ModShift
		default:
			return Combo{}, fmt.Errorf("parse combo %q: unknown modifier %q", s, p)
		}
	}

	// Upper case letters keep their case in the original string.
	last := strings.TrimSpace(s)
	last = last[strings.LastIndex(last, "+")+1:]
	name := parts[len(parts)-1]

	if key, ok := namedKeys[name]; ok {
		return normalize(key, 0, mod), nil
	}
	if name == "space" {
		return normalize(tcell.KeyRune, ' ', mod), nil
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return Combo{}, fmt.Errorf("parse combo %q: unknown key %q", s, name)
	}
	r := runes[0]
	if lr := []rune(last); len(lr) == 1 && unicode.IsUpper(lr[0]) {
		r = lr[0]
	}
	return normalize(tcell.KeyRune, r, mod), nil
}

// MustParse is like Parse but panics on error. For tests and static tables.
func MustParse(s string) Combo {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromEvent normalises a terminal key event into a Combo.
func FromEvent(ev *tcell.EventKey) Combo {
	key, mod := ev.Key(), ev.Mod()
	var r rune
	if key == tcell.KeyRune {
		r = ev.Rune()
	}

	// Backspace, Tab and Enter share their codes with Ctrl-H, Ctrl-I and
	// Ctrl-M; only an explicit ModCtrl makes them control combos.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ &&
		key != tcell.KeyBackspace && key != tcell.KeyTab && key != tcell.KeyEnter {
		mod |= tcell.ModCtrl
	}
	return normalize(key, r, mod)
}

func normalize(key tcell.Key, r rune, mod tcell.ModMask) Combo {
	mod &= modMask
	if key == tcell.KeyBackspace && mod&tcell.ModCtrl == 0 {
		key = tcell.KeyBackspace2
	}
	if key != tcell.KeyRune {
		return Combo{Key: key, Mod: mod}
	}

	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		mod |= tcell.ModShift
	} else if !unicode.IsLetter(r) {
		// Shifted punctuation arrives as its own rune.
		mod &^= tcell.ModShift
	}

	if mod&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
		return Combo{Key: tcell.KeyCtrlA + tcell.Key(r-'a'), Mod: mod}
	}
	return Combo{Key: tcell.KeyRune, Rune: r, Mod: mod}
}

// letter returns the letter of a ctrl+letter combo, or 0.
func (c Combo) letter() rune {
	if c.Key >= tcell.KeyCtrlA && c.Key <= tcell.KeyCtrlZ && c.Mod&tcell.ModCtrl != 0 {
		return 'a' + rune(c.Key-tcell.KeyCtrlA)
	}
	return 0
}

// HasModifier reports whether ctrl or alt is part of the combo.
func (c Combo) HasModifier() bool {
	return c.Mod&(tcell.ModCtrl|tcell.ModAlt) != 0
}

// String returns the canonical form accepted by Parse, e.g. "ctrl+shift+z".
func (c Combo) String() string {
	return c.format(false)
}

// Label returns a human readable form for menus and hints, e.g. "Ctrl+Shift+Z".
func (c Combo) Label() string {
	return c.format(true)
}

func (c Combo) format(title bool) string {
	var parts []string
	add := func(lower, upper string) {
		if title {
			parts = append(parts, upper)
		} else {
			parts = append(parts, lower)
		}
	}
	if c.Mod&tcell.ModCtrl != 0 {
		add("ctrl", "Ctrl")
	}
	if c.Mod&tcell.ModAlt != 0 {
		add("alt", "Alt")
	}
	if c.Mod&tcell.ModShift != 0 {
		add("shift", "Shift")
	}

	switch {
	case c.letter() != 0:
		l := string(c.letter())
		add(l, strings.ToUpper(l))
	case c.Key == tcell.KeyRune && c.Rune == ' ':
		add("space", "Space")
	case c.Key == tcell.KeyRune:
		l := string(c.Rune)
		add(l, strings.ToUpper(l))
	default:
		label, ok := keyLabels[c.Key]
		if !ok {
			if c.Key >= tcell.KeyF1 && c.Key <= tcell.KeyF12 {
				label = fmt.Sprintf("F%d", c.Key-tcell.KeyF1+1)
			} else {
				label = fmt.Sprintf("Key(%d)", c.Key)
			}
		}
		add(strings.ToLower(label), label)
	}
	return strings.Join(parts, "+")
}
