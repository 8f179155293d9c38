package store

import (
	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/event"
)

// AddTask validates the input, appends a new task to the log, persists, and
// publishes a task_created event.
func (s *Store) AddTask(in domain.TaskInput) (*domain.Task, error) {
	if verr := domain.ValidateTask(in); verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	now := s.now()
	task := domain.Task{
		ID:             s.nextID(),
		Title:          in.Title,
		Description:    in.Description,
		Priority:       in.Priority,
		Status:         in.Status,
		Assignee:       in.Assignee,
		DueDate:        in.DueDate,
		EstimatedHours: in.EstimatedHours,
		Tags:           in.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.state.Tasks = append(s.state.Tasks, task)
	s.persist()
	userID := s.currentUserID()
	s.mu.Unlock()

	t := task
	s.bus.Publish(event.Event{Kind: event.TaskCreated, Task: &t, UserID: userID})

	out := task
	return &out, nil
}

// UpdateTask overwrites the stored task's mutable fields with the provided
// version and refreshes UpdatedAt. Exactly one event fires: task_status_changed
// when the status differs from the prior version, task_updated otherwise.
func (s *Store) UpdateTask(t domain.Task) (*domain.Task, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == t.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, domain.ErrTaskNotFound
	}

	prior := s.state.Tasks[idx]
	t.CreatedAt = prior.CreatedAt // immutable after creation
	t.UpdatedAt = s.now()
	s.state.Tasks[idx] = t
	s.persist()
	userID := s.currentUserID()
	s.mu.Unlock()

	updated := t
	if prior.Status != t.Status {
		s.bus.Publish(event.Event{
			Kind:      event.TaskStatusChanged,
			Task:      &updated,
			OldStatus: prior.Status,
			NewStatus: t.Status,
			UserID:    userID,
		})
	} else {
		s.bus.Publish(event.Event{Kind: event.TaskUpdated, Task: &updated, UserID: userID})
	}

	out := t
	return &out, nil
}

// DeleteTask removes the task with the given id. Deletions publish no event;
// the notification feed does not track them.
func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Tasks[:0]
	for _, t := range s.state.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.state.Tasks = kept
	s.persist()
}
