package view

import (
	"testing"
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

var (
	developer = &domain.User{ID: "1", Username: "developer", Role: domain.RoleDeveloper, Name: "John Developer"}
	manager   = &domain.User{ID: "2", Username: "manager", Role: domain.RoleManager, Name: "Jane Manager"}
)

func sampleTasks() []domain.Task {
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 10, 0, 0, 0, time.UTC)
	}
	due := func(d int) *time.Time {
		t := day(d)
		return &t
	}
	return []domain.Task{
		{ID: "1", Title: "Fix auth bug", Description: "login fails", Assignee: "John Developer",
			Priority: domain.PriorityHigh, Status: domain.StatusInProgress, CreatedAt: day(10), DueDate: due(15)},
		{ID: "2", Title: "Add dark mode", Description: "theme toggle", Assignee: "John Developer",
			Priority: domain.PriorityMedium, Status: domain.StatusOpen, CreatedAt: day(11), DueDate: due(20)},
		{ID: "3", Title: "Write docs", Description: "API reference", Assignee: "Jane Manager",
			Priority: domain.PriorityLow, Status: domain.StatusClosed, CreatedAt: day(12)},
		{ID: "4", Title: "Optimize queries", Description: "slow dashboard", Assignee: "John Developer",
			Priority: domain.PriorityCritical, Status: domain.StatusPendingApproval, CreatedAt: day(13), DueDate: due(14)},
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ============================================================
// Visibility
// ============================================================

func TestVisibleScopesDeveloperToOwnTasks(t *testing.T) {
	got := Visible(sampleTasks(), developer)
	if !equalIDs(ids(got), "1", "2", "4") {
		t.Fatalf("unexpected developer tasks: %v", ids(got))
	}
}

func TestVisibleManagerSeesAll(t *testing.T) {
	got := Visible(sampleTasks(), manager)
	if len(got) != 4 {
		t.Fatalf("expected 4 tasks for manager, got %d", len(got))
	}
}

func TestVisibleNilUserSeesNothing(t *testing.T) {
	if got := Visible(sampleTasks(), nil); got != nil {
		t.Fatalf("expected nil for nil user, got %v", ids(got))
	}
}

func TestVisibleReturnsCopyForManager(t *testing.T) {
	tasks := sampleTasks()
	got := Visible(tasks, manager)
	got[0].Title = "mutated"
	if tasks[0].Title == "mutated" {
		t.Fatal("Visible must not alias the input slice")
	}
}

// ============================================================
// Filters
// ============================================================

func TestApplyStatusFilter(t *testing.T) {
	got := Apply(sampleTasks(), manager, Filter{Status: domain.StatusOpen})
	if !equalIDs(ids(got), "2") {
		t.Fatalf("unexpected: %v", ids(got))
	}
}

func TestApplyPriorityFilter(t *testing.T) {
	got := Apply(sampleTasks(), manager, Filter{Priority: domain.PriorityCritical})
	if !equalIDs(ids(got), "4") {
		t.Fatalf("unexpected: %v", ids(got))
	}
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	got := Apply(sampleTasks(), manager, Filter{Search: "DASHBOARD"})
	if !equalIDs(ids(got), "4") {
		t.Fatalf("description search failed: %v", ids(got))
	}

	got = Apply(sampleTasks(), manager, Filter{Search: "jane"})
	if !equalIDs(ids(got), "3") {
		t.Fatalf("assignee search failed: %v", ids(got))
	}
}

func TestApplyCombinesFiltersWithVisibility(t *testing.T) {
	got := Apply(sampleTasks(), developer, Filter{Search: "docs"})
	if len(got) != 0 {
		t.Fatalf("developer must not see other assignees' tasks: %v", ids(got))
	}
}

func TestApplyEmptyFilterKeepsOrder(t *testing.T) {
	got := Apply(sampleTasks(), manager, Filter{})
	if !equalIDs(ids(got), "1", "2", "3", "4") {
		t.Fatalf("unexpected order: %v", ids(got))
	}
}

// ============================================================
// Sorting
// ============================================================

func TestSortByPriorityDescending(t *testing.T) {
	got := Apply(sampleTasks(), manager, Filter{SortBy: SortByPriority, Order: Descending})
	if !equalIDs(ids(got), "4", "1", "2", "3") {
		t.Fatalf("unexpected order: %v", ids(got))
	}
}

func TestSortByTitleAscending(t *testing.T) {
	got := Apply(sampleTasks(), manager, Filter{SortBy: SortByTitle, Order: Ascending})
	if !equalIDs(ids(got), "2", "1", "4", "3") {
		t.Fatalf("unexpected order: %v", ids(got))
	}
}

func TestSortByDueDateTreatsMissingAsEarliest(t *testing.T) {
	got := Apply(sampleTasks(), manager, Filter{SortBy: SortByDueDate, Order: Ascending})
	if ids(got)[0] != "3" {
		t.Fatalf("missing due date must sort first ascending: %v", ids(got))
	}
}

func TestSortIsStable(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Title: "same", Priority: domain.PriorityMedium},
		{ID: "b", Title: "same", Priority: domain.PriorityMedium},
		{ID: "c", Title: "same", Priority: domain.PriorityMedium},
	}
	got := Apply(tasks, manager, Filter{SortBy: SortByPriority, Order: Ascending})
	if !equalIDs(ids(got), "a", "b", "c") {
		t.Fatalf("equal keys must keep input order: %v", ids(got))
	}
}

// ============================================================
// Stats
// ============================================================

func TestTaskStatsForManager(t *testing.T) {
	s := TaskStats(sampleTasks(), manager)
	want := Stats{Total: 4, Open: 1, InProgress: 1, PendingApproval: 1, Closed: 1}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

func TestTaskStatsForDeveloper(t *testing.T) {
	s := TaskStats(sampleTasks(), developer)
	want := Stats{Total: 3, Open: 1, InProgress: 1, PendingApproval: 1}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

func TestTaskStatsNilUser(t *testing.T) {
	if s := TaskStats(sampleTasks(), nil); s != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", s)
	}
}
