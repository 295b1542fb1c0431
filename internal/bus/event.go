package bus

import (
	"time"

	"github.com/google/uuid"
)

// Event namespaces published by the editor shell.
const (
	KindActionDispatched = "action.dispatched"
	KindActionUnknown    = "action.unknown"
	KindModalChanged     = "modal.changed"
	KindControllerCall   = "controller.call"
	KindFileSelected     = "view.file_selected"
	KindFileError        = "view.file_error"
)

// Event represents something that happened in the editor, published on the bus.
type Event struct {
	ID        string
	Kind      string
	Timestamp time.Time
	Payload   any
}

// stamp fills in the ID and timestamp when the publisher left them empty.
func (e Event) stamp() Event {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return e
}
