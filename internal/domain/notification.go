package domain

import "time"

// NotificationKind enumerates the events the notification feed records.
type NotificationKind string

const (
	NotifyTaskCreated       NotificationKind = "task_created"
	NotifyTaskUpdated       NotificationKind = "task_updated"
	NotifyTaskDeleted       NotificationKind = "task_deleted"
	NotifyTaskStatusChanged NotificationKind = "task_status_changed"
	NotifyTimeEntryAdded    NotificationKind = "time_entry_added"
	NotifyUserLoggedIn      NotificationKind = "user_logged_in"
	NotifyUserLoggedOut     NotificationKind = "user_logged_out"
	NotifySystemError       NotificationKind = "system_error"
	NotifyTaskApproved      NotificationKind = "task_approved"
	NotifyTaskRejected      NotificationKind = "task_rejected"
)

// AllNotificationKinds lists every kind; the default settings enable all.
func AllNotificationKinds() []NotificationKind {
	return []NotificationKind{
		NotifyTaskCreated,
		NotifyTaskUpdated,
		NotifyTaskDeleted,
		NotifyTaskStatusChanged,
		NotifyTimeEntryAdded,
		NotifyUserLoggedIn,
		NotifyUserLoggedOut,
		NotifySystemError,
		NotifyTaskApproved,
		NotifyTaskRejected,
	}
}

// NotificationPriority affects how long a notification is displayed.
type NotificationPriority string

const (
	PriorityNormalNotice NotificationPriority = "normal"
	PriorityHighNotice   NotificationPriority = "high"
)

// Notification is a transient user-facing record of a state-changing event.
type Notification struct {
	ID        string               `json:"id"`
	Kind      NotificationKind     `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Timestamp time.Time            `json:"timestamp"`
	Read      bool                 `json:"read"`
	UserID    string               `json:"userId,omitempty"`
	TaskID    string               `json:"taskId,omitempty"`
	Priority  NotificationPriority `json:"priority"`
}

// NotificationSettings holds user-configurable delivery preferences.
type NotificationSettings struct {
	EnableDesktopNotifications bool               `json:"enableDesktopNotifications"`
	EnableEmailNotifications   bool               `json:"enableEmailNotifications"`
	EnableSoundNotifications   bool               `json:"enableSoundNotifications"`
	NotificationTypes          []NotificationKind `json:"notificationTypes"`
}

// DefaultNotificationSettings enables desktop and sound delivery for every kind.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EnableDesktopNotifications: true,
		EnableEmailNotifications:   false,
		EnableSoundNotifications:   true,
		NotificationTypes:          AllNotificationKinds(),
	}
}
