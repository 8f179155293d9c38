package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NishantDwd/tasktrail/internal/export"
	"github.com/NishantDwd/tasktrail/internal/notify"
	"github.com/NishantDwd/tasktrail/internal/store"
	"github.com/NishantDwd/tasktrail/internal/timer"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	timer  *timer.Timer
	center *notify.Center
	width  int
	height int

	authed        bool
	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	login         loginModel
	dashboard     dashboardModel
	reports       reportsModel
	notifications notificationsModel
	settings      settingsModel

	help   help.Model
	status string

	toast      *notify.Toast
	toastUntil time.Time
}

func NewApp(s *store.Store, t *timer.Timer, c *notify.Center) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:         s,
		timer:         t,
		center:        c,
		authed:        s.IsAuthenticated(),
		activeView:    viewDashboard,
		login:         newLoginModel(s),
		dashboard:     newDashboardModel(s, t, c),
		reports:       newReportsModel(s),
		notifications: newNotificationsModel(c),
		settings:      newSettingsModel(c),
		help:          h,
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), trendTickCmd()}
	if a.authed {
		cmds = append(cmds, a.dashboard.loadData())
	} else {
		cmds = append(cmds, a.login.Init())
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// trendTickCmd re-arms the 30-second trend refresh.
func trendTickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return trendTickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.login.setSize(a.width, a.height)
		a.dashboard.setSize(a.width, contentHeight)
		a.reports.setSize(a.width, contentHeight)
		a.notifications.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tickMsg:
		cmds = append(cmds, tickCmd())
		if a.toast != nil && time.Now().After(a.toastUntil) {
			a.toast = nil
		}
		return a, tea.Batch(cmds...)

	case trendTickMsg:
		cmds = append(cmds, trendTickCmd())
		if a.authed && a.activeView == viewReports {
			var cmd tea.Cmd
			a.reports, cmd = a.reports.update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return a, tea.Batch(cmds...)

	case toastMsg:
		a.toast = &msg.toast
		a.toastUntil = time.Now().Add(msg.toast.Duration)
		return a, nil

	case loggedInMsg:
		a.authed = true
		a.activeView = viewDashboard
		a.status = "Welcome, " + msg.user.Name
		return a, a.dashboard.loadData()

	case loggedOutMsg:
		a.authed = false
		a.login = newLoginModel(a.store)
		a.status = ""
		return a, a.login.Init()

	case statusMsg:
		a.status = msg.text
		return a, nil

	case timerStartedMsg:
		a.status = "Timer started"
		return a, nil

	case timerStoppedMsg:
		a.status = "Logged " + formatSeconds(msg.entry.Duration) + " on " + msg.entry.TaskTitle
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	if !a.authed {
		var cmd tea.Cmd
		a.login, cmd = a.login.update(msg)
		return a, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Logout):
			a.store.Logout()
			return a, func() tea.Msg { return loggedOutMsg{} }
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, a.dashboard.loadData()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewReports
			return a, a.reports.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewNotifications
			return a, a.notifications.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 4
			return a, a.refreshCurrentView()
		}
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
	case viewNotifications:
		a.notifications, cmd = a.notifications.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.formActive || a.dashboard.searching
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.loadData()
	case viewReports:
		return a.reports.refresh()
	case viewNotifications:
		return a.notifications.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if !a.authed {
		return a.login.view()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewReports:
		content = a.reports.view()
	case viewNotifications:
		content = a.notifications.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	page := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)

	if a.toast != nil {
		page = lipgloss.JoinVertical(lipgloss.Left, a.renderToast(), page)
	}
	return page
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		label := name
		if viewState(i) == viewNotifications {
			if unread := a.center.UnreadCount(); unread > 0 {
				label = fmt.Sprintf("%s (%d)", name, unread)
			}
		}
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("tasktrail")
	userInfo := ""
	if u := a.store.CurrentUser(); u != nil {
		userInfo = mutedStyle.Render(fmt.Sprintf("%s (%s)", u.Name, u.Role))
	}

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - lipgloss.Width(userInfo) - 6
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", tabRow, spacer, userInfo),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	timerInfo := ""
	if a.timer.Running() {
		elapsed := a.timer.Elapsed()
		timerInfo = successStyle.Render(" ● " + formatDuration(elapsed))
		if a.timer.Paused() {
			timerInfo = warningStyle.Render(" ⏸ " + formatDuration(elapsed))
		}
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderToast() string {
	style := toastStyle(a.toast.Severity)
	return headerStyle.Render(
		style.Render("▎"+a.toast.Title) + "  " + mutedStyle.Render(a.toast.Message),
	)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV (time entries)", "JSON (tasks + entries)"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		tasks := a.store.Tasks()
		entries := a.store.TimeEntries()

		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("tasktrail-export-%s.csv", dateStr))
			if err := export.ToCSV(entries, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("tasktrail-export-%s.json", dateStr))
			if err := export.ToJSON(tasks, entries, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
