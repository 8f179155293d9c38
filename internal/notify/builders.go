package notify

import (
	"fmt"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

// Semantic builders: thin wrappers over Insert that fix kind, title, message
// template, and priority for the common notifications.

func (c *Center) TaskCreated(task *domain.Task, userID string) {
	c.Insert(
		domain.NotifyTaskCreated,
		"New Task Created",
		fmt.Sprintf("%q has been created", task.Title),
		userID, task.ID,
		domain.PriorityNormalNotice,
	)
}

func (c *Center) TaskUpdated(task *domain.Task, userID string) {
	c.Insert(
		domain.NotifyTaskUpdated,
		"Task Updated",
		fmt.Sprintf("%q has been updated", task.Title),
		userID, task.ID,
		domain.PriorityNormalNotice,
	)
}

// statusVerb phrases a status transition for the feed.
func statusVerb(s domain.Status) string {
	switch s {
	case domain.StatusOpen:
		return "opened"
	case domain.StatusInProgress:
		return "started"
	case domain.StatusPendingApproval:
		return "submitted for approval"
	case domain.StatusClosed:
		return "completed"
	}
	return "moved to " + string(s)
}

func (c *Center) TaskStatusChanged(task *domain.Task, oldStatus, newStatus domain.Status, userID string) {
	priority := domain.PriorityNormalNotice
	if newStatus == domain.StatusClosed {
		priority = domain.PriorityHighNotice
	}
	c.Insert(
		domain.NotifyTaskStatusChanged,
		"Task Status Changed",
		fmt.Sprintf("%q has been %s", task.Title, statusVerb(newStatus)),
		userID, task.ID,
		priority,
	)
}

func (c *Center) TaskApproved(task *domain.Task, userID string) {
	c.Insert(
		domain.NotifyTaskApproved,
		"Task Approved",
		fmt.Sprintf("%q has been approved", task.Title),
		userID, task.ID,
		domain.PriorityHighNotice,
	)
}

func (c *Center) TaskRejected(task *domain.Task, userID string) {
	c.Insert(
		domain.NotifyTaskRejected,
		"Task Rejected",
		fmt.Sprintf("%q has been rejected and needs revision", task.Title),
		userID, task.ID,
		domain.PriorityHighNotice,
	)
}

func (c *Center) TimeEntryAdded(entry *domain.TimeEntry, userID string) {
	hours := entry.Duration / 3600
	minutes := (entry.Duration % 3600) / 60
	c.Insert(
		domain.NotifyTimeEntryAdded,
		"Time Entry Added",
		fmt.Sprintf("Added %dh %dm to %q", hours, minutes, entry.TaskTitle),
		userID, entry.TaskID,
		domain.PriorityNormalNotice,
	)
}

func (c *Center) SystemError(err error, userID string) {
	c.Insert(
		domain.NotifySystemError,
		"System Error",
		fmt.Sprintf("An error occurred: %s", err),
		userID, "",
		domain.PriorityHighNotice,
	)
}
