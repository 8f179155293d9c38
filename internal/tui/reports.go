package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NishantDwd/tasktrail/internal/store"
	"github.com/NishantDwd/tasktrail/internal/view"
)

type reportMode int

const (
	reportHours reportMode = iota
	reportTasks
)

// windowDays is how many of the 30 trend points fit on screen at once.
const windowDays = 10

type reportsModel struct {
	store  *store.Store
	width  int
	height int

	mode   reportMode
	series []view.TrendPoint
	offset int // window offset in days back from the series end (0 = latest)

	chart barchart.Model
}

func newReportsModel(s *store.Store) reportsModel {
	return reportsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		series := view.TrendSeries(r.store.Tasks(), r.store.TimeEntries(), time.Now())
		return reportsDataMsg{series: series}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		r.series = msg.series
		r.buildChart()
		return r, nil

	case trendTickMsg:
		return r, r.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if r.offset < len(r.series)-windowDays {
				r.offset++
				r.buildChart()
			}
			return r, nil
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
				r.buildChart()
			}
			return r, nil
		case key.Matches(msg, keys.Mode):
			if r.mode == reportHours {
				r.mode = reportTasks
			} else {
				r.mode = reportHours
			}
			r.buildChart()
			return r, nil
		}
	}
	return r, nil
}

// window returns the visible slice of the 30-day series.
func (r reportsModel) window() []view.TrendPoint {
	if len(r.series) == 0 {
		return nil
	}
	end := len(r.series) - r.offset
	start := max(0, end-windowDays)
	return r.series[start:end]
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, p := range r.window() {
		var values []barchart.BarValue
		if r.mode == reportHours {
			values = []barchart.BarValue{{
				Name:  "hours",
				Value: p.Hours,
				Style: lipgloss.NewStyle().Foreground(colorPrimary),
			}}
		} else {
			values = []barchart.BarValue{
				{Name: "open", Value: float64(p.Open), Style: highlightStyle},
				{Name: "in-progress", Value: float64(p.InProgress), Style: warningStyle},
				{Name: "pending", Value: float64(p.PendingApproval), Style: errorStyle},
				{Name: "closed", Value: float64(p.Closed), Style: successStyle},
			}
		}
		bars = append(bars, barchart.BarData{
			Label:  p.Label,
			Values: values,
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	hoursTab := inactiveTabStyle.Render("Hours")
	tasksTab := inactiveTabStyle.Render("Tasks")
	if r.mode == reportHours {
		hoursTab = activeTabStyle.Render("Hours")
	} else {
		tasksTab = activeTabStyle.Render("Tasks")
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, hoursTab, tasksTab)

	win := r.window()
	dateLabel := ""
	if len(win) > 0 {
		dateLabel = mutedStyle.Render(fmt.Sprintf("%s to %s", win[0].Date, win[len(win)-1].Date))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("30-Day Trend"), "  ", modeTabs, "  ", dateLabel,
	)

	chartView := r.chart.View()
	tableView := r.renderSummary(win)
	nav := mutedStyle.Render("  ←/→: scroll days  t: hours/tasks")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", tableView, "", nav,
		),
	)
}

func (r reportsModel) renderSummary(win []view.TrendPoint) string {
	if len(win) == 0 {
		return mutedStyle.Render("  No data yet")
	}

	var totalHours float64
	var totalSessions, totalTasks int
	for _, p := range win {
		totalHours += p.Hours
		totalSessions += p.Sessions
		totalTasks += p.TotalTasks
	}

	return fmt.Sprintf("  %s %.2fh   %s %d   %s %d",
		mutedStyle.Render("Logged:"), totalHours,
		mutedStyle.Render("Sessions:"), totalSessions,
		mutedStyle.Render("Tasks created:"), totalTasks,
	)
}
