package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/event"
	"github.com/NishantDwd/tasktrail/internal/logging"
	"github.com/NishantDwd/tasktrail/internal/notify"
	"github.com/NishantDwd/tasktrail/internal/storage"
	"github.com/NishantDwd/tasktrail/internal/store"
	"github.com/NishantDwd/tasktrail/internal/timer"
	"github.com/NishantDwd/tasktrail/internal/view"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	db, err := storage.OpenMemory(logging.Discard())
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	bus := event.NewBus()
	s := store.New(db, bus, logging.Discard())
	center := notify.NewCenter(db, nil, logging.Discard())
	notify.NewListener(center).Attach(bus)
	tm := timer.New(db, logging.Discard())

	return NewApp(s, tm, center)
}

// ============================================================
// App model
// ============================================================

func TestNewAppDefaults(t *testing.T) {
	app := newTestApp(t)

	if app.authed {
		t.Fatal("app must start at the login screen")
	}
	if app.activeView != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp || app.exportPicking {
		t.Fatal("overlays should be hidden by default")
	}
}

func TestAppLoadingState(t *testing.T) {
	app := newTestApp(t)
	if output := app.View(); output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppShowsLoginUntilAuthenticated(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40
	app.login.setSize(120, 40)

	output := app.View()
	if !strings.Contains(output, "TaskTrail") {
		t.Fatal("expected the login panel")
	}
	if strings.Contains(output, "Reports") {
		t.Fatal("tabs must not render before login")
	}
}

func TestAppViewStatesRender(t *testing.T) {
	app := newTestApp(t)
	app.store.Login("manager", "mgr123")
	app.authed = true
	app.width = 120
	app.height = 40
	app.dashboard.setSize(120, 36)
	app.reports.setSize(120, 36)
	app.notifications.setSize(120, 36)
	app.settings.setSize(120, 36)

	views := []viewState{viewDashboard, viewReports, viewNotifications, viewSettings}
	for _, v := range views {
		app.activeView = v
		if output := app.View(); output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppHeaderShowsTabsAndUser(t *testing.T) {
	app := newTestApp(t)
	app.store.Login("developer", "dev123")
	app.authed = true
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
	if !strings.Contains(header, "John Developer") {
		t.Fatal("header should show the signed-in user")
	}
}

func TestAppHeaderShowsUnreadBadge(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40
	app.center.Insert(domain.NotifyTaskCreated, "T", "m", "", "", domain.PriorityNormalNotice)

	header := app.renderHeader()
	if !strings.Contains(header, "Notifications (1)") {
		t.Fatal("header should show the unread count")
	}
}

func TestAppFooterShowsStatus(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40
	app.status = "saved"

	if footer := app.renderFooter(); !strings.Contains(footer, "saved") {
		t.Fatal("footer should contain status message")
	}
}

func TestAppIsFormActiveDefault(t *testing.T) {
	app := newTestApp(t)
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

// ============================================================
// Dashboard model
// ============================================================

func TestDashboardSelectedOnEmptyList(t *testing.T) {
	app := newTestApp(t)
	if _, ok := app.dashboard.selected(); ok {
		t.Fatal("expected no selection on an empty list")
	}
}

func TestDashboardLoadData(t *testing.T) {
	app := newTestApp(t)
	app.store.Login("manager", "mgr123")

	msg := app.dashboard.loadData()()
	data, ok := msg.(dashboardDataMsg)
	if !ok {
		t.Fatalf("expected dashboardDataMsg, got %T", msg)
	}
	if data.stats.Total != 5 {
		t.Fatalf("manager should see all 5 seed tasks, got %d", data.stats.Total)
	}
	if len(data.timeTotals) == 0 {
		t.Fatal("expected per-task time totals from seed entries")
	}
}

func TestDashboardLoadDataScopesDeveloper(t *testing.T) {
	app := newTestApp(t)
	app.store.Login("developer", "dev123")

	msg := app.dashboard.loadData()()
	data := msg.(dashboardDataMsg)
	for _, task := range data.tasks {
		if task.Assignee != "John Developer" {
			t.Fatalf("developer must only see own tasks, saw %q", task.Assignee)
		}
	}
}

// ============================================================
// Reports model
// ============================================================

func TestReportsModeKeyReachesReportsView(t *testing.T) {
	app := newTestApp(t)
	app.store.Login("manager", "mgr123")
	app.authed = true
	app.activeView = viewReports

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	got := model.(App)

	if got.activeView != viewReports {
		t.Fatalf("mode key must stay on reports, landed on view %d", got.activeView)
	}
	if got.reports.mode != reportTasks {
		t.Fatal("mode key must toggle the chart to task counts")
	}

	model, _ = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if model.(App).reports.mode != reportHours {
		t.Fatal("second press must toggle back to hours")
	}
}

func TestTabCyclesViewsFromReports(t *testing.T) {
	app := newTestApp(t)
	app.store.Login("manager", "mgr123")
	app.authed = true
	app.activeView = viewReports

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := model.(App)

	if got.activeView != viewNotifications {
		t.Fatalf("tab must advance to the next view, got %d", got.activeView)
	}
	if got.reports.mode != reportHours {
		t.Fatal("tab must not touch the chart mode")
	}
}

// ============================================================
// Filter cycling
// ============================================================

func TestStatusFilterCyclesThroughAll(t *testing.T) {
	seen := map[domain.Status]bool{}
	s := domain.Status("")
	for i := 0; i < 5; i++ {
		s = nextStatusFilter(s)
		seen[s] = true
	}
	if s != "" {
		t.Fatalf("cycle must return to unfiltered, got %q", s)
	}
	if len(seen) != 5 { // four statuses plus ""
		t.Fatalf("cycle skipped values: %v", seen)
	}
}

func TestPriorityFilterCyclesThroughAll(t *testing.T) {
	p := domain.Priority("")
	for i := 0; i < 5; i++ {
		p = nextPriorityFilter(p)
	}
	if p != "" {
		t.Fatalf("cycle must return to unfiltered, got %q", p)
	}
}

func TestSortKeyCycle(t *testing.T) {
	k := view.SortByCreatedAt
	for i := 0; i < 5; i++ {
		k = nextSortKey(k)
	}
	if k != view.SortByCreatedAt {
		t.Fatalf("cycle must return to createdAt, got %q", k)
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{time.Minute, "00:01:00"},
		{time.Hour + time.Minute + time.Second, "01:01:01"},
		{25 * time.Hour, "25:00:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "00:00:00"},
		{61, "00:01:01"},
		{3600, "01:00:00"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.secs); got != tt.want {
			t.Errorf("formatSeconds(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "0.0h"},
		{3600, "1.0h"},
		{5400, "1.5h"},
	}
	for _, tt := range tests {
		if got := formatHours(tt.secs); got != tt.want {
			t.Errorf("formatHours(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight short: %q", got)
	}
	if got := padRight("abcdef", 4); got != "abc…" {
		t.Fatalf("padRight long: %q", got)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-48 * time.Hour), "Mar 13"},
	}
	for _, tt := range tests {
		if got := relativeTime(tt.at, now); got != tt.want {
			t.Errorf("relativeTime(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if min(3, 5) != 3 || min(5, 3) != 3 {
		t.Fatal("min broken")
	}
	if max(3, 5) != 5 || max(5, 3) != 5 {
		t.Fatal("max broken")
	}
}

// ============================================================
// View state and key bindings
// ============================================================

func TestViewNames(t *testing.T) {
	expected := []string{"Dashboard", "Reports", "Notifications", "Settings"}
	if len(viewNames) != len(expected) {
		t.Fatalf("expected %d view names, got %d", len(expected), len(viewNames))
	}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
	for i, g := range keys.FullHelp() {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles
// ============================================================

func TestPriorityAndStatusStyles(t *testing.T) {
	for _, p := range []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityCritical} {
		if priorityStyle(p).Render(string(p)) == "" {
			t.Fatalf("priority style %s rendered empty", p)
		}
	}
	for _, s := range []domain.Status{domain.StatusOpen, domain.StatusInProgress, domain.StatusPendingApproval, domain.StatusClosed} {
		if statusStyle(s).Render(string(s)) == "" {
			t.Fatalf("status style %s rendered empty", s)
		}
	}
}

func TestToastStyles(t *testing.T) {
	for _, sev := range []notify.Severity{notify.SeverityInfo, notify.SeveritySuccess, notify.SeverityError} {
		if toastStyle(sev).Render("x") == "" {
			t.Fatalf("toast style %d rendered empty", sev)
		}
	}
}
