// Package timer is the stopwatch for an in-flight time-tracking session.
// Elapsed time is always recomputed from the wall clock (now - start), never
// accumulated, so a suspended or reloaded process resumes at the correct
// value. Running state is persisted so a restart can recover the session.
package timer

import (
	"log/slog"
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/storage"
)

type state int

const (
	stopped state = iota
	running
	paused
)

// persisted is the stored record under storage.TimerKey. IsRunning covers any
// active session; Paused and the pause bookkeeping ride along so a session
// interrupted mid-pause restores at the same elapsed value.
type persisted struct {
	SelectedTask string    `json:"selectedTask"`
	IsRunning    bool      `json:"isRunning"`
	StartTime    time.Time `json:"startTime"`
	Paused       bool      `json:"paused,omitempty"`
	PausedAt     time.Time `json:"pausedAt,omitempty"`
	PauseGapSecs int64     `json:"pauseGapSeconds,omitempty"`
	LastSaved    time.Time `json:"lastSaved"`
}

// Timer tracks one stopwatch session against a selected task.
type Timer struct {
	db     *storage.DB
	logger *slog.Logger
	now    func() time.Time

	state        state
	selectedTask string
	startTime    time.Time
	pausedAt     time.Time
	pauseGap     time.Duration
}

// New restores an unstopped session from the persistence adapter, if any.
func New(db *storage.DB, logger *slog.Logger) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Timer{db: db, logger: logger, now: time.Now}

	var p persisted
	if db.Load(storage.TimerKey, &p) {
		t.selectedTask = p.SelectedTask
		if p.IsRunning && !p.StartTime.IsZero() {
			t.startTime = p.StartTime
			t.pauseGap = time.Duration(p.PauseGapSecs) * time.Second
			if p.Paused && !p.PausedAt.IsZero() {
				t.state = paused
				t.pausedAt = p.PausedAt
			} else {
				t.state = running
			}
			t.logger.Info("recovered timer session", "task", p.SelectedTask, "started", p.StartTime, "paused", p.Paused)
		}
	}
	return t
}

func (t *Timer) persist() {
	t.db.Save(storage.TimerKey, persisted{
		SelectedTask: t.selectedTask,
		IsRunning:    t.state != stopped,
		StartTime:    t.startTime,
		Paused:       t.state == paused,
		PausedAt:     t.pausedAt,
		PauseGapSecs: int64(t.pauseGap / time.Second),
		LastSaved:    t.now(),
	})
}

// Select records which task the next session will log against.
func (t *Timer) Select(taskID string) {
	t.selectedTask = taskID
	t.persist()
}

// SelectedTask returns the task the timer is pointed at, or "".
func (t *Timer) SelectedTask() string { return t.selectedTask }

// Start begins a session for the given task. No-op while already running.
func (t *Timer) Start(taskID string) {
	if t.state != stopped {
		return
	}
	t.selectedTask = taskID
	t.startTime = t.now()
	t.pauseGap = 0
	t.state = running
	t.persist()
}

// Pause freezes the display without ending the session.
func (t *Timer) Pause() {
	if t.state != running {
		return
	}
	t.state = paused
	t.pausedAt = t.now()
	t.persist()
}

// Resume continues a paused session, excluding the pause gap from elapsed.
func (t *Timer) Resume() {
	if t.state != paused {
		return
	}
	t.pauseGap += t.now().Sub(t.pausedAt)
	t.state = running
	t.persist()
}

// Toggle pauses a running session or resumes a paused one.
func (t *Timer) Toggle() {
	switch t.state {
	case running:
		t.Pause()
	case paused:
		t.Resume()
	}
}

// Stop ends the session and returns the resulting time entry (without an id;
// the store assigns one). Returns false when nothing was running or no time
// elapsed. The persisted timer state is cleared.
func (t *Timer) Stop(taskTitle string) (domain.TimeEntry, bool) {
	if t.state == stopped {
		return domain.TimeEntry{}, false
	}
	end := t.now()
	elapsed := t.Elapsed()
	start := t.startTime

	t.state = stopped
	t.pauseGap = 0
	t.db.Remove(storage.TimerKey)

	seconds := int64(elapsed.Seconds())
	if seconds <= 0 {
		return domain.TimeEntry{}, false
	}
	return domain.TimeEntry{
		TaskID:    t.selectedTask,
		TaskTitle: taskTitle,
		Duration:  seconds,
		StartTime: start,
		EndTime:   end,
		Date:      start.Format("2006-01-02"),
	}, true
}

// Reset abandons the session without logging anything.
func (t *Timer) Reset() {
	t.state = stopped
	t.pauseGap = 0
	t.db.Remove(storage.TimerKey)
}

// Running reports whether a session is active (running or paused).
func (t *Timer) Running() bool { return t.state != stopped }

// Paused reports whether the session is paused.
func (t *Timer) Paused() bool { return t.state == paused }

// Elapsed is the wall-clock session duration, excluding pause gaps.
func (t *Timer) Elapsed() time.Duration {
	switch t.state {
	case stopped:
		return 0
	case paused:
		return t.pausedAt.Sub(t.startTime) - t.pauseGap
	default:
		return t.now().Sub(t.startTime) - t.pauseGap
	}
}
