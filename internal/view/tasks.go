// Package view computes read models from store snapshots: role-scoped task
// lists, aggregate counts, the 30-day trend series, and time summaries.
// Everything here is pure; nothing is cached between calls.
package view

import (
	"sort"
	"strings"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

// SortKey selects the field the task list is ordered by.
type SortKey string

const (
	SortByTitle     SortKey = "title"
	SortByPriority  SortKey = "priority"
	SortByStatus    SortKey = "status"
	SortByDueDate   SortKey = "dueDate"
	SortByCreatedAt SortKey = "createdAt"
)

// Order is the sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// Filter narrows and orders the visible task list. Zero values mean "all".
type Filter struct {
	Status   domain.Status
	Priority domain.Priority
	Search   string
	SortBy   SortKey
	Order    Order
}

// Visible applies role-based visibility: developers see only tasks assigned
// to them; managers see everything. A nil user sees nothing.
func Visible(tasks []domain.Task, user *domain.User) []domain.Task {
	if user == nil {
		return nil
	}
	if user.Role != domain.RoleDeveloper {
		out := make([]domain.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	var out []domain.Task
	for _, t := range tasks {
		if t.Assignee == user.Name {
			out = append(out, t)
		}
	}
	return out
}

// Apply runs the full pipeline: role visibility, then status/priority/search
// filters, then a stable sort. Ties keep their input order.
func Apply(tasks []domain.Task, user *domain.User, f Filter) []domain.Task {
	filtered := Visible(tasks, user)

	if f.Status != "" {
		filtered = keep(filtered, func(t domain.Task) bool { return t.Status == f.Status })
	}
	if f.Priority != "" {
		filtered = keep(filtered, func(t domain.Task) bool { return t.Priority == f.Priority })
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		filtered = keep(filtered, func(t domain.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), q) ||
				strings.Contains(strings.ToLower(t.Description), q) ||
				strings.Contains(strings.ToLower(t.Assignee), q)
		})
	}

	sortTasks(filtered, f.SortBy, f.Order)
	return filtered
}

func keep(tasks []domain.Task, pred func(domain.Task) bool) []domain.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

func sortTasks(tasks []domain.Task, by SortKey, order Order) {
	less := lessFunc(by)
	if less == nil {
		return
	}
	if order == Descending {
		inner := less
		less = func(a, b domain.Task) bool { return inner(b, a) }
	}
	sort.SliceStable(tasks, func(i, j int) bool { return less(tasks[i], tasks[j]) })
}

func lessFunc(by SortKey) func(a, b domain.Task) bool {
	switch by {
	case SortByTitle:
		return func(a, b domain.Task) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByPriority:
		return func(a, b domain.Task) bool { return a.Priority.Rank() < b.Priority.Rank() }
	case SortByStatus:
		return func(a, b domain.Task) bool { return a.Status.Rank() < b.Status.Rank() }
	case SortByDueDate:
		return func(a, b domain.Task) bool {
			var at, bt int64
			if a.DueDate != nil {
				at = a.DueDate.UnixMilli()
			}
			if b.DueDate != nil {
				bt = b.DueDate.UnixMilli()
			}
			return at < bt
		}
	case SortByCreatedAt:
		return func(a, b domain.Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
	return nil
}

// Stats are the role-scoped aggregate counts shown on the dashboard cards.
type Stats struct {
	Total           int
	Open            int
	InProgress      int
	PendingApproval int
	Closed          int
}

// TaskStats counts tasks by status under the same visibility rule as Apply.
func TaskStats(tasks []domain.Task, user *domain.User) Stats {
	var s Stats
	for _, t := range Visible(tasks, user) {
		s.Total++
		switch t.Status {
		case domain.StatusOpen:
			s.Open++
		case domain.StatusInProgress:
			s.InProgress++
		case domain.StatusPendingApproval:
			s.PendingApproval++
		case domain.StatusClosed:
			s.Closed++
		}
	}
	return s
}
