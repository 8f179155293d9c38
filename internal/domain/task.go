package domain

import "time"

// Priority ranks a task's urgency.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank returns the sort weight of a priority (critical highest).
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Status is a task's lifecycle state.
type Status string

const (
	StatusOpen            Status = "open"
	StatusInProgress      Status = "in-progress"
	StatusPendingApproval Status = "pending-approval"
	StatusClosed          Status = "closed"
)

// Rank returns the sort weight of a status (open first).
func (s Status) Rank() int {
	switch s {
	case StatusOpen:
		return 1
	case StatusInProgress:
		return 2
	case StatusPendingApproval:
		return 3
	case StatusClosed:
		return 4
	}
	return 0
}

// Task is a unit of trackable work.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       Priority   `json:"priority"`
	Status         Status     `json:"status"`
	Assignee       string     `json:"assignee"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *float64   `json:"estimatedHours"`
	Tags           []string   `json:"tags"`
	TimeSpent      int64      `json:"timeSpent"` // accumulated seconds
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// TimeEntry is an immutable record of time logged against a task.
// TaskTitle is a denormalized snapshot taken when the entry is logged.
type TimeEntry struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	TaskTitle string    `json:"taskTitle"`
	Duration  int64     `json:"duration"` // seconds
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Date      string    `json:"date"` // calendar day of StartTime, YYYY-MM-DD
}
