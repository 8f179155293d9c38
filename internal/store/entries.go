package store

import (
	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/event"
)

// AddTimeEntry appends an immutable time entry, persists, and publishes a
// time_entry_added event. The caller separately applies the duration to the
// referenced task's TimeSpent via UpdateTask.
func (s *Store) AddTimeEntry(e domain.TimeEntry) {
	s.mu.Lock()
	if e.ID == "" {
		e.ID = s.nextID()
	}
	if e.Date == "" {
		e.Date = e.StartTime.Format("2006-01-02")
	}
	s.state.TimeEntries = append(s.state.TimeEntries, e)
	s.persist()
	userID := s.currentUserID()
	s.mu.Unlock()

	entry := e
	s.bus.Publish(event.Event{Kind: event.TimeEntryAdded, Entry: &entry, UserID: userID})
}

// TaskByID returns a copy of the task with the given id, comparing ids as
// strings the way time entries reference them.
func (s *Store) TaskByID(id string) (*domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.state.Tasks {
		if t.ID == id {
			out := t
			return &out, true
		}
	}
	return nil, false
}
