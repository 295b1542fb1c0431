package ui

// MenuHint describes a keyboard shortcut for display in the hint bar.
type MenuHint struct {
	Key         string
	Description string
}

// Component is the lifecycle interface for the shell's views.
type Component interface {
	Name() string
	Start()
	Stop()
	Hints() []MenuHint
}
