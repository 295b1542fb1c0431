package modal

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/wed/internal/bus"
)

// State tells which surface currently owns keyboard input.
type State string

const (
	Idle         State = "IDLE"
	Dialog       State = "DIALOG"
	Notification State = "NOTIFICATION"
)

// ErrInvalidTransition is wrapped by Transition when the move is not allowed.
var ErrInvalidTransition = errors.New("invalid modal transition")

// validTransitions defines allowed state transitions.
// A notification may be raised over a dialog and the other way round.
var validTransitions = map[State][]State{
	Idle:         {Dialog, Notification},
	Dialog:       {Idle, Notification},
	Notification: {Idle, Dialog},
}

// Machine tracks whether a blocking surface (dialog or notification) is active.
// While it is, the menu must not react to shortcuts.
type Machine struct {
	mu      sync.RWMutex
	current State
	bus     *bus.Bus
}

// NewMachine creates a new state machine starting in Idle state.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: Idle,
		bus:     b,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Suppressed reports whether a dialog or notification is active.
func (m *Machine) Suppressed() bool {
	return m.Current() != Idle
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	allowed := validTransitions[m.current]
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, m.current, to)
	}
	from := m.current
	m.current = to
	m.bus.Publish(bus.Event{
		Kind: bus.KindModalChanged,
		Payload: Change{
			From: from,
			To:   to,
		},
	})
	return nil
}

// Enter moves to the given blocking state and returns a function restoring the
// previous one. Entering the current state is a no-op.
func (m *Machine) Enter(to State) (func() error, error) {
	from := m.Current()
	if from == to {
		return func() error { return nil }, nil
	}
	if err := m.Transition(to); err != nil {
		return nil, err
	}
	return func() error { return m.Transition(from) }, nil
}

// Change is the payload for modal change events.
type Change struct {
	From State
	To   State
}
