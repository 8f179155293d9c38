// Package store owns the canonical task and time-entry log plus the active
// session. Every mutation is atomic and synchronously persisted, then
// published on the event bus where the contract says so. The store never
// reads from or writes to the notification center; the bus is the only
// coupling.
package store

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/event"
	"github.com/NishantDwd/tasktrail/internal/storage"
)

// snapshot is the persisted application record under storage.DataKey.
type snapshot struct {
	Tasks           []domain.Task      `json:"tasks"`
	TimeEntries     []domain.TimeEntry `json:"timeEntries"`
	User            *domain.User       `json:"user"`
	IsAuthenticated bool               `json:"isAuthenticated"`
	LastSaved       time.Time          `json:"lastSaved"`
}

// Store is the task/time state machine.
type Store struct {
	mu     sync.Mutex
	db     *storage.DB
	bus    *event.Bus
	logger *slog.Logger
	now    func() time.Time

	state  snapshot
	lastID int64 // monotonic guard for time-derived ids
}

// New hydrates the store from the persistence adapter, falling back to the
// demo seed dataset when no usable snapshot exists.
func New(db *storage.DB, bus *event.Bus, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		db:     db,
		bus:    bus,
		logger: logger,
		now:    time.Now,
	}

	var snap snapshot
	if db.Load(storage.DataKey, &snap) {
		if snap.Tasks == nil {
			snap.Tasks = seedTasks()
		}
		if snap.TimeEntries == nil {
			snap.TimeEntries = seedTimeEntries()
		}
		s.state = snap
		return s
	}

	s.state = snapshot{
		Tasks:       seedTasks(),
		TimeEntries: seedTimeEntries(),
	}
	return s
}

// persist writes the full snapshot. Callers hold s.mu.
func (s *Store) persist() {
	s.state.LastSaved = s.now()
	s.db.Save(storage.DataKey, s.state)
}

// nextID derives an id from the current time, bumped by a monotonic counter
// when two mutations land in the same millisecond.
func (s *Store) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) currentUserID() string {
	if s.state.User == nil {
		return ""
	}
	return s.state.User.ID
}

// Tasks returns a copy of the task log.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.state.Tasks))
	copy(out, s.state.Tasks)
	return out
}

// TimeEntries returns a copy of the time-entry log.
func (s *Store) TimeEntries() []domain.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TimeEntry, len(s.state.TimeEntries))
	copy(out, s.state.TimeEntries)
	return out
}

// CurrentUser returns the active session's user, or nil when logged out.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}
