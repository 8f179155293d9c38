package event

import (
	"testing"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe(func(e Event) { got = append(got, "first") })
	bus.Subscribe(func(e Event) { got = append(got, "second") })

	bus.Publish(Event{Kind: TaskCreated})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected delivery order: %v", got)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	unsub := bus.Subscribe(func(e Event) { calls++ })

	bus.Publish(Event{Kind: TaskUpdated})
	unsub()
	bus.Publish(Event{Kind: TaskUpdated})

	if calls != 1 {
		t.Fatalf("expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestUnsubscribeTwiceIsNoop(t *testing.T) {
	bus := NewBus()

	unsub := bus.Subscribe(func(e Event) {})
	unsub()
	unsub()

	// Remaining subscriber still receives events.
	calls := 0
	bus.Subscribe(func(e Event) { calls++ })
	bus.Publish(Event{Kind: TimeEntryAdded})
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	bus := NewBus()
	bus.Publish(Event{Kind: TaskStatusChanged}) // must not panic
}

func TestEventCarriesPayload(t *testing.T) {
	bus := NewBus()

	var got Event
	bus.Subscribe(func(e Event) { got = e })

	task := &domain.Task{ID: "42", Title: "Fix login"}
	bus.Publish(Event{
		Kind:      TaskStatusChanged,
		Task:      task,
		OldStatus: domain.StatusOpen,
		NewStatus: domain.StatusInProgress,
		UserID:    "1",
	})

	if got.Task == nil || got.Task.ID != "42" {
		t.Fatalf("task payload lost: %+v", got)
	}
	if got.OldStatus != domain.StatusOpen || got.NewStatus != domain.StatusInProgress {
		t.Fatalf("status transition lost: %+v", got)
	}
	if got.UserID != "1" {
		t.Fatalf("user id lost: %+v", got)
	}
}
