// Package notify owns the notification feed: a bounded, newest-first log
// with an unread counter and delivery settings. It mutates only itself;
// task state is observed exclusively through the event bridge.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/storage"
)

// maxNotifications bounds the log; the oldest entries are dropped first.
const maxNotifications = 100

// persisted is the stored record under storage.NotificationsKey.
type persisted struct {
	Notifications []domain.Notification       `json:"notifications"`
	UnreadCount   int                         `json:"unreadCount"`
	Settings      domain.NotificationSettings `json:"settings"`
}

// Center is the notification state machine.
type Center struct {
	mu     sync.Mutex
	db     *storage.DB
	sink   Sink
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	state persisted
}

// NewCenter hydrates the notification log from the persistence adapter,
// defaulting to an empty log with default settings. sink may be nil.
func NewCenter(db *storage.DB, sink Sink, logger *slog.Logger) *Center {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Center{
		db:     db,
		sink:   sink,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}

	var p persisted
	if db.Load(storage.NotificationsKey, &p) {
		if p.Settings.NotificationTypes == nil {
			p.Settings = domain.DefaultNotificationSettings()
		}
		// Recount so the unread invariant holds even if the stored
		// counter drifted.
		p.UnreadCount = 0
		for _, n := range p.Notifications {
			if !n.Read {
				p.UnreadCount++
			}
		}
		c.state = p
		return c
	}

	c.state = persisted{Settings: domain.DefaultNotificationSettings()}
	return c
}

func (c *Center) persist() {
	c.db.Save(storage.NotificationsKey, c.state)
}

// Insert prepends a notification, truncates the log to the most recent 100,
// bumps the unread counter, persists, and dispatches the presentation side
// effects.
func (c *Center) Insert(kind domain.NotificationKind, title, message, userID, taskID string, priority domain.NotificationPriority) {
	if priority == "" {
		priority = domain.PriorityNormalNotice
	}
	n := domain.Notification{
		ID:        c.newID(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		Timestamp: c.now(),
		UserID:    userID,
		TaskID:    taskID,
		Priority:  priority,
	}

	c.mu.Lock()
	c.state.Notifications = append([]domain.Notification{n}, c.state.Notifications...)
	if len(c.state.Notifications) > maxNotifications {
		for _, dropped := range c.state.Notifications[maxNotifications:] {
			if !dropped.Read && c.state.UnreadCount > 0 {
				c.state.UnreadCount--
			}
		}
		c.state.Notifications = c.state.Notifications[:maxNotifications]
	}
	c.state.UnreadCount++
	c.persist()
	sink := c.sink
	desktop := c.state.Settings.EnableDesktopNotifications
	c.mu.Unlock()

	if sink != nil {
		sink.ShowToast(Toast{
			Title:    title,
			Message:  message,
			Severity: severityFor(kind),
			Duration: displayDuration(priority),
		})
		if desktop {
			sink.ShowDesktop(title, message, n.ID)
		}
	}
}

// MarkAsRead marks one notification read. Idempotent: marking an already-read
// entry does not decrement the counter twice.
func (c *Center) MarkAsRead(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.state.Notifications {
		if c.state.Notifications[i].ID == id {
			if !c.state.Notifications[i].Read {
				c.state.Notifications[i].Read = true
				if c.state.UnreadCount > 0 {
					c.state.UnreadCount--
				}
			}
			break
		}
	}
	c.persist()
}

// MarkAllAsRead marks every entry read and zeroes the counter.
func (c *Center) MarkAllAsRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.state.Notifications {
		c.state.Notifications[i].Read = true
	}
	c.state.UnreadCount = 0
	c.persist()
}

// Delete removes one entry, decrementing the counter if it was unread.
func (c *Center) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.state.Notifications[:0]
	for _, n := range c.state.Notifications {
		if n.ID == id {
			if !n.Read && c.state.UnreadCount > 0 {
				c.state.UnreadCount--
			}
			continue
		}
		kept = append(kept, n)
	}
	c.state.Notifications = kept
	c.persist()
}

// ClearAll empties the log.
func (c *Center) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Notifications = nil
	c.state.UnreadCount = 0
	c.persist()
}

// SettingsPatch is a partial settings update; nil fields are unchanged.
type SettingsPatch struct {
	EnableDesktopNotifications *bool
	EnableEmailNotifications   *bool
	EnableSoundNotifications   *bool
	NotificationTypes          []domain.NotificationKind
}

// UpdateSettings merges the patch into the current settings.
func (c *Center) UpdateSettings(patch SettingsPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if patch.EnableDesktopNotifications != nil {
		c.state.Settings.EnableDesktopNotifications = *patch.EnableDesktopNotifications
	}
	if patch.EnableEmailNotifications != nil {
		c.state.Settings.EnableEmailNotifications = *patch.EnableEmailNotifications
	}
	if patch.EnableSoundNotifications != nil {
		c.state.Settings.EnableSoundNotifications = *patch.EnableSoundNotifications
	}
	if patch.NotificationTypes != nil {
		c.state.Settings.NotificationTypes = patch.NotificationTypes
	}
	c.persist()
}

// Notifications returns a copy of the log, newest first.
func (c *Center) Notifications() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Notification, len(c.state.Notifications))
	copy(out, c.state.Notifications)
	return out
}

// UnreadCount returns the number of unread notifications.
func (c *Center) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.UnreadCount
}

// Settings returns the current delivery settings.
func (c *Center) Settings() domain.NotificationSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Settings
}
