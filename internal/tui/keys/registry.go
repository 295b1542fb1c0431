package keys

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ConflictError is returned when a combo is already bound to an action.
type ConflictError struct {
	Combo    Combo
	Existing string
	ID       string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("shortcut %s for %q already bound to %q", e.Combo, e.ID, e.Existing)
}

// Binding ties a combo to an action identifier.
type Binding struct {
	ID    string
	Combo Combo
}

// Trigger is passed to listeners when a registered combo is pressed.
type Trigger struct {
	Binding
	Event *tcell.EventKey

	prevented bool
}

// PreventDefault stops the key event from reaching the focused widget.
func (t *Trigger) PreventDefault() { t.prevented = true }

// Prevented reports whether the default handling was suppressed.
func (t *Trigger) Prevented() bool { return t.prevented }

// Registry holds shortcut bindings and decides which of them fire while a
// text input has focus.
type Registry struct {
	bindings  map[Combo]string
	order     []Binding
	global    map[Combo]bool
	listeners []func(*Trigger)

	alwaysPreventDefault bool
	modifierGlobal       bool
	allGlobal            bool
}

// NewRegistry creates an empty shortcut registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Combo]string),
		global:   make(map[Combo]bool),
	}
}

// Register binds the combo described by spec to id.
// A combo can only be bound once; a second binding fails with *ConflictError.
func (r *Registry) Register(id, spec string) error {
	c, err := Parse(spec)
	if err != nil {
		return err
	}
	return r.RegisterCombo(id, c)
}

// RegisterCombo binds an already parsed combo to id.
func (r *Registry) RegisterCombo(id string, c Combo) error {
	if existing, ok := r.bindings[c]; ok {
		return &ConflictError{Combo: c, Existing: existing, ID: id}
	}
	r.bindings[c] = id
	r.order = append(r.order, Binding{ID: id, Combo: c})
	return nil
}

// Lookup returns the action bound to c.
func (r *Registry) Lookup(c Combo) (string, bool) {
	id, ok := r.bindings[c]
	return id, ok
}

// Bindings returns every binding in registration order.
func (r *Registry) Bindings() []Binding {
	out := make([]Binding, len(r.order))
	copy(out, r.order)
	return out
}

// SetGlobalKeys replaces the set of combos that fire even when a text input
// has focus. Duplicates are harmless. Unparseable entries are skipped and
// reported together.
func (r *Registry) SetGlobalKeys(specs []string) error {
	r.global = make(map[Combo]bool, len(specs))
	var errs []error
	for _, s := range specs {
		c, err := Parse(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.global[c] = true
	}
	return errors.Join(errs...)
}

// IsGlobal reports whether c fires regardless of focus.
func (r *Registry) IsGlobal(c Combo) bool {
	switch {
	case r.allGlobal:
		return true
	case r.modifierGlobal && c.HasModifier():
		return true
	}
	return r.global[c]
}

// SetAlwaysPreventDefault makes every trigger start out prevented.
func (r *Registry) SetAlwaysPreventDefault(v bool) { r.alwaysPreventDefault = v }

// SetModifierShortcutsAreGlobal treats every ctrl/alt combo as global.
func (r *Registry) SetModifierShortcutsAreGlobal(v bool) { r.modifierGlobal = v }

// SetAllShortcutsAreGlobal treats every combo as global.
func (r *Registry) SetAllShortcutsAreGlobal(v bool) { r.allGlobal = v }

// OnTrigger adds a listener called for every triggered shortcut, in the
// order listeners were added.
func (r *Registry) OnTrigger(fn func(*Trigger)) {
	r.listeners = append(r.listeners, fn)
}

// HandleEvent matches ev against the bindings. When inTextInput is true only
// global combos fire. The returned trigger is only valid when ok is true.
func (r *Registry) HandleEvent(ev *tcell.EventKey, inTextInput bool) (*Trigger, bool) {
	c := FromEvent(ev)
	id, ok := r.bindings[c]
	if !ok {
		return nil, false
	}
	if inTextInput && !r.IsGlobal(c) {
		return nil, false
	}

	t := &Trigger{
		Binding:   Binding{ID: id, Combo: c},
		Event:     ev,
		prevented: r.alwaysPreventDefault,
	}
	for _, fn := range r.listeners {
		fn(t)
	}
	return t, true
}

// Hint is a shortcut label for the hint bar.
type Hint struct {
	Key    string
	Action string
}

// Hints returns one hint per binding in registration order. Actions with
// several combos are listed once, under their first combo.
func (r *Registry) Hints() []Hint {
	seen := make(map[string]bool, len(r.order))
	var hints []Hint
	for _, b := range r.order {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		hints = append(hints, Hint{Key: b.Combo.Label(), Action: b.ID})
	}
	return hints
}
