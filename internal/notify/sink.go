package notify

import (
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

// Severity classifies a toast for presentation.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Toast is the payload handed to the presentation layer for on-screen display.
type Toast struct {
	Title    string
	Message  string
	Severity Severity
	Duration time.Duration
}

// Sink receives presentation side effects. The TUI implements it; tests stub
// it. ShowDesktop carries a dedup tag (the notification id).
type Sink interface {
	ShowToast(Toast)
	ShowDesktop(title, body, tag string)
}

// severityFor maps a notification kind to a toast severity: creation and
// approval read as success, deletion/rejection/system errors as errors,
// everything else as neutral info.
func severityFor(kind domain.NotificationKind) Severity {
	switch kind {
	case domain.NotifyTaskCreated, domain.NotifyTaskApproved:
		return SeveritySuccess
	case domain.NotifyTaskDeleted, domain.NotifyTaskRejected, domain.NotifySystemError:
		return SeverityError
	default:
		return SeverityInfo
	}
}

// displayDuration returns the on-screen duration hint; high priority extends it.
func displayDuration(p domain.NotificationPriority) time.Duration {
	if p == domain.PriorityHighNotice {
		return 6 * time.Second
	}
	return 4 * time.Second
}
