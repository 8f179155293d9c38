// Package event is the bridge between the task store and the notification
// center: task mutations publish semantic events here, and a single listener
// translates them into notifications. The dependency is one-directional;
// subscribers must never call back into the publisher.
package event

import "github.com/NishantDwd/tasktrail/internal/domain"

// Kind identifies the semantic event a task mutation produced.
type Kind string

const (
	TaskCreated       Kind = "task_created"
	TaskUpdated       Kind = "task_updated"
	TaskStatusChanged Kind = "task_status_changed"
	TimeEntryAdded    Kind = "time_entry_added"
)

// Event carries the payload of a task store mutation. Task is set for the
// three task kinds; Entry for TimeEntryAdded; OldStatus/NewStatus only for
// TaskStatusChanged.
type Event struct {
	Kind      Kind
	Task      *domain.Task
	Entry     *domain.TimeEntry
	OldStatus domain.Status
	NewStatus domain.Status
	UserID    string
}

// Bus is a process-wide synchronous publish/subscribe channel. Handlers run
// inline on the publishing goroutine in subscription order.
type Bus struct {
	nextID int
	subs   map[int]func(Event)
	order  []int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers a handler for every event and returns an unsubscribe
// function. Unsubscribing twice is a no-op.
func (b *Bus) Subscribe(fn func(Event)) func() {
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.order = append(b.order, id)
	return func() {
		delete(b.subs, id)
	}
}

// Publish delivers the event synchronously to all current subscribers.
func (b *Bus) Publish(e Event) {
	for _, id := range b.order {
		if fn, ok := b.subs[id]; ok {
			fn(e)
		}
	}
}
