package notify

import "github.com/NishantDwd/tasktrail/internal/event"

// Listener subscribes the center to the event bridge. Attach is idempotent so
// a remounting presentation layer cannot double-subscribe and duplicate
// notifications; Detach unsubscribes cleanly. The handler only ever mutates
// the center and must not reach back into the task store.
type Listener struct {
	center *Center
	unsub  func()
}

func NewListener(center *Center) *Listener {
	return &Listener{center: center}
}

// Attach subscribes to the bus. A second Attach without a Detach is a no-op.
func (l *Listener) Attach(bus *event.Bus) {
	if l.unsub != nil {
		return
	}
	l.unsub = bus.Subscribe(l.handle)
}

// Detach unsubscribes. Safe to call when not attached.
func (l *Listener) Detach() {
	if l.unsub == nil {
		return
	}
	l.unsub()
	l.unsub = nil
}

func (l *Listener) handle(e event.Event) {
	switch e.Kind {
	case event.TaskCreated:
		l.center.TaskCreated(e.Task, e.UserID)
	case event.TaskUpdated:
		l.center.TaskUpdated(e.Task, e.UserID)
	case event.TaskStatusChanged:
		l.center.TaskStatusChanged(e.Task, e.OldStatus, e.NewStatus, e.UserID)
	case event.TimeEntryAdded:
		l.center.TimeEntryAdded(e.Entry, e.UserID)
	}
}
