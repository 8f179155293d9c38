package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/notify"
	"github.com/NishantDwd/tasktrail/internal/store"
	"github.com/NishantDwd/tasktrail/internal/timer"
	"github.com/NishantDwd/tasktrail/internal/view"
)

type dashboardModel struct {
	store  *store.Store
	timer  *timer.Timer
	center *notify.Center
	width  int
	height int

	tasks      []domain.Task
	stats      view.Stats
	timeTotals map[string]int64
	todayTotal int64

	cursor int
	filter view.Filter

	// Search input state
	searching bool
	searchBuf string

	formActive  bool
	form        *huh.Form
	formEditing bool
	editingID   string

	// Form field pointers (survive value copies)
	formTitle       *string
	formDescription *string
	formPriority    *string
	formStatus      *string
	formAssignee    *string
	formDueDate     *string
	formEstimated   *string
	formTags        *string
}

func newDashboardModel(s *store.Store, t *timer.Timer, c *notify.Center) dashboardModel {
	title, desc, prio, status, assignee, due, est, tags := "", "", "", "", "", "", "", ""
	return dashboardModel{
		store:           s,
		timer:           t,
		center:          c,
		filter:          view.Filter{SortBy: view.SortByCreatedAt, Order: view.Descending},
		formTitle:       &title,
		formDescription: &desc,
		formPriority:    &prio,
		formStatus:      &status,
		formAssignee:    &assignee,
		formDueDate:     &due,
		formEstimated:   &est,
		formTags:        &tags,
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		user := d.store.CurrentUser()
		tasks := d.store.Tasks()
		entries := d.store.TimeEntries()
		return dashboardDataMsg{
			tasks:      view.Apply(tasks, user, d.filter),
			stats:      view.TaskStats(tasks, user),
			timeTotals: view.TimeByTask(entries),
			todayTotal: view.TodaySeconds(entries, time.Now()),
		}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.tasks = msg.tasks
		d.stats = msg.stats
		d.timeTotals = msg.timeTotals
		d.todayTotal = msg.todayTotal
		if d.cursor >= len(d.tasks) {
			d.cursor = max(0, len(d.tasks)-1)
		}
		return d, nil

	case tea.KeyMsg:
		if d.searching {
			return d.updateSearch(msg)
		}
		return d.updateList(msg)
	}
	return d, nil
}

func (d dashboardModel) updateSearch(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		d.searching = false
		d.filter.Search = d.searchBuf
		d.cursor = 0
		return d, d.loadData()
	case tea.KeyEsc:
		d.searching = false
		d.searchBuf = ""
		d.filter.Search = ""
		return d, d.loadData()
	case tea.KeyBackspace:
		if len(d.searchBuf) > 0 {
			d.searchBuf = d.searchBuf[:len(d.searchBuf)-1]
		}
		return d, nil
	case tea.KeySpace:
		d.searchBuf += " "
		return d, nil
	case tea.KeyRunes:
		d.searchBuf += string(msg.Runes)
		return d, nil
	}
	return d, nil
}

func (d dashboardModel) updateList(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}

	case key.Matches(msg, keys.Down):
		if d.cursor < len(d.tasks)-1 {
			d.cursor++
		}

	case key.Matches(msg, keys.New):
		return d.showTaskForm(nil)

	case key.Matches(msg, keys.Edit):
		if t, ok := d.selected(); ok {
			return d.showTaskForm(&t)
		}

	case key.Matches(msg, keys.Delete):
		if t, ok := d.selected(); ok {
			d.store.DeleteTask(t.ID)
			return d, tea.Batch(
				d.loadData(),
				status(fmt.Sprintf("Deleted %q", t.Title), false),
			)
		}

	case key.Matches(msg, keys.Approve):
		return d.approve()

	case key.Matches(msg, keys.Reject):
		return d.reject()

	case key.Matches(msg, keys.Filter):
		d.filter.Status = nextStatusFilter(d.filter.Status)
		d.cursor = 0
		return d, d.loadData()

	case key.Matches(msg, keys.Priority):
		d.filter.Priority = nextPriorityFilter(d.filter.Priority)
		d.cursor = 0
		return d, d.loadData()

	case key.Matches(msg, keys.Sort):
		d.filter.SortBy = nextSortKey(d.filter.SortBy)
		return d, d.loadData()

	case key.Matches(msg, keys.Order):
		if d.filter.Order == view.Ascending {
			d.filter.Order = view.Descending
		} else {
			d.filter.Order = view.Ascending
		}
		return d, d.loadData()

	case key.Matches(msg, keys.Search):
		d.searching = true
		d.searchBuf = d.filter.Search
		return d, nil

	case key.Matches(msg, keys.Start):
		return d.startTimer()

	case key.Matches(msg, keys.Stop):
		return d.stopTimer()

	case key.Matches(msg, keys.Pause):
		if d.timer.Running() {
			d.timer.Toggle()
		}
		return d, nil
	}
	return d, nil
}

func (d dashboardModel) selected() (domain.Task, bool) {
	if len(d.tasks) == 0 || d.cursor >= len(d.tasks) {
		return domain.Task{}, false
	}
	return d.tasks[d.cursor], true
}

func (d dashboardModel) approve() (dashboardModel, tea.Cmd) {
	user := d.store.CurrentUser()
	t, ok := d.selected()
	if !ok || user == nil || user.Role != domain.RoleManager || t.Status != domain.StatusPendingApproval {
		return d, nil
	}
	t.Status = domain.StatusClosed
	updated, err := d.store.UpdateTask(t)
	if err != nil {
		return d, status(fmt.Sprintf("Error: %v", err), true)
	}
	d.center.TaskApproved(updated, user.ID)
	return d, tea.Batch(d.loadData(), status(fmt.Sprintf("Approved %q", t.Title), false))
}

func (d dashboardModel) reject() (dashboardModel, tea.Cmd) {
	user := d.store.CurrentUser()
	t, ok := d.selected()
	if !ok || user == nil || user.Role != domain.RoleManager || t.Status != domain.StatusPendingApproval {
		return d, nil
	}
	t.Status = domain.StatusInProgress
	updated, err := d.store.UpdateTask(t)
	if err != nil {
		return d, status(fmt.Sprintf("Error: %v", err), true)
	}
	d.center.TaskRejected(updated, user.ID)
	return d, tea.Batch(d.loadData(), status(fmt.Sprintf("Reopened %q", t.Title), false))
}

func (d dashboardModel) startTimer() (dashboardModel, tea.Cmd) {
	if d.timer.Running() {
		return d, status("Timer already running", true)
	}
	t, ok := d.selected()
	if !ok {
		return d, status("No task selected", true)
	}
	d.timer.Start(t.ID)
	return d, func() tea.Msg { return timerStartedMsg{} }
}

func (d dashboardModel) stopTimer() (dashboardModel, tea.Cmd) {
	taskTitle := "Unknown Task"
	var tracked *domain.Task
	if t, ok := d.store.TaskByID(d.timer.SelectedTask()); ok {
		taskTitle = t.Title
		tracked = t
	}

	entry, ok := d.timer.Stop(taskTitle)
	if !ok {
		return d, status("Timer is not running", true)
	}

	d.store.AddTimeEntry(entry)
	if tracked != nil {
		t := *tracked
		t.TimeSpent += entry.Duration
		if _, err := d.store.UpdateTask(t); err != nil {
			return d, status(fmt.Sprintf("Error: %v", err), true)
		}
	}

	return d, tea.Batch(
		d.loadData(),
		func() tea.Msg { return timerStoppedMsg{entry: entry} },
	)
}

func status(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

func nextStatusFilter(s domain.Status) domain.Status {
	switch s {
	case "":
		return domain.StatusOpen
	case domain.StatusOpen:
		return domain.StatusInProgress
	case domain.StatusInProgress:
		return domain.StatusPendingApproval
	case domain.StatusPendingApproval:
		return domain.StatusClosed
	default:
		return ""
	}
}

func nextPriorityFilter(p domain.Priority) domain.Priority {
	switch p {
	case "":
		return domain.PriorityLow
	case domain.PriorityLow:
		return domain.PriorityMedium
	case domain.PriorityMedium:
		return domain.PriorityHigh
	case domain.PriorityHigh:
		return domain.PriorityCritical
	default:
		return ""
	}
}

func nextSortKey(k view.SortKey) view.SortKey {
	switch k {
	case view.SortByCreatedAt:
		return view.SortByTitle
	case view.SortByTitle:
		return view.SortByPriority
	case view.SortByPriority:
		return view.SortByStatus
	case view.SortByStatus:
		return view.SortByDueDate
	default:
		return view.SortByCreatedAt
	}
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}
	if d.formActive && d.form != nil {
		return d.renderForm()
	}

	contentWidth := d.width - 4

	statsPanel := d.renderStatsPanel(contentWidth)
	timerPanel := d.renderTimerPanel(contentWidth)
	listPanel := d.renderTaskList(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, statsPanel, timerPanel, listPanel)
}

func (d dashboardModel) renderStatsPanel(w int) string {
	cards := []string{
		fmt.Sprintf("%s %d", mutedStyle.Render("Total"), d.stats.Total),
		fmt.Sprintf("%s %d", highlightStyle.Render("Open"), d.stats.Open),
		fmt.Sprintf("%s %d", warningStyle.Render("In Progress"), d.stats.InProgress),
		fmt.Sprintf("%s %d", errorStyle.Render("Pending"), d.stats.PendingApproval),
		fmt.Sprintf("%s %d", successStyle.Render("Closed"), d.stats.Closed),
		fmt.Sprintf("%s %s", mutedStyle.Render("Today"), formatSeconds(d.todayTotal)),
	}
	return panelStyle.Width(w).Render(strings.Join(cards, "   "))
}

func (d dashboardModel) renderTimerPanel(w int) string {
	if !d.timer.Running() {
		hint := mutedStyle.Render("Press s on a task to start tracking")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				timerStyle.Width(w-6).Render("00:00:00"),
				hint,
			))
	}

	timeStr := formatDuration(d.timer.Elapsed())
	var timeDisplay, indicator string
	if d.timer.Paused() {
		timeDisplay = timerPausedStyle.Width(w - 6).Render(timeStr)
		indicator = warningStyle.Render("⏸  PAUSED")
	} else {
		timeDisplay = timerRunningStyle.Width(w - 6).Render(timeStr)
		indicator = successStyle.Render("●  RUNNING")
	}

	taskLine := ""
	if t, ok := d.store.TaskByID(d.timer.SelectedTask()); ok {
		taskLine = highlightStyle.Render(t.Title)
	}

	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, timeDisplay, indicator, taskLine))
}

func (d dashboardModel) renderTaskList(w int) string {
	var rows []string
	rows = append(rows, d.renderFilterLine())

	if d.searching {
		rows = append(rows, highlightStyle.Render("Search: ")+d.searchBuf+"▌")
	}

	if len(d.tasks) == 0 {
		rows = append(rows, mutedStyle.Render("No tasks match the current view"))
		return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
	}

	visible := len(d.tasks)
	maxRows := max(3, d.height-18)
	start := 0
	if d.cursor >= maxRows {
		start = d.cursor - maxRows + 1
	}
	end := min(visible, start+maxRows)

	for i := start; i < end; i++ {
		t := d.tasks[i]
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = selectedItemStyle.Render("> ")
			style = selectedItemStyle
		}

		due := ""
		if t.DueDate != nil {
			due = mutedStyle.Render(" due " + t.DueDate.Format("2006-01-02"))
		}
		spent := ""
		if total := d.timeTotals[t.ID]; total > 0 {
			spent = mutedStyle.Render("  " + formatHours(total))
		}

		row := fmt.Sprintf("%s%s  %s %s  %s%s%s",
			cursor,
			style.Render(padRight(t.Title, 32)),
			priorityStyle(t.Priority).Render(padRight(string(t.Priority), 8)),
			statusStyle(t.Status).Render(padRight(string(t.Status), 16)),
			mutedStyle.Render(t.Assignee),
			due,
			spent,
		)
		rows = append(rows, row)
	}

	if end < visible || start > 0 {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, visible)))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderFilterLine() string {
	part := func(label, value string) string {
		if value == "" {
			value = "all"
		}
		return mutedStyle.Render(label+":") + highlightStyle.Render(value)
	}
	order := "desc"
	if d.filter.Order == view.Ascending {
		order = "asc"
	}
	line := strings.Join([]string{
		part("status", string(d.filter.Status)),
		part("priority", string(d.filter.Priority)),
		part("sort", string(d.filter.SortBy)),
		part("order", order),
	}, "  ")
	if d.filter.Search != "" {
		line += "  " + part("search", d.filter.Search)
	}
	return line
}

func padRight(s string, n int) string {
	if len(s) > n {
		return s[:n-1] + "…"
	}
	return s + strings.Repeat(" ", n-len(s))
}
