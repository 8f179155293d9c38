package tui

import (
	"fmt"
	"time"

	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/notify"
	"github.com/NishantDwd/tasktrail/internal/view"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewReports
	viewNotifications
	viewSettings
)

var viewNames = []string{"Dashboard", "Reports", "Notifications", "Settings"}

// --- Messages ---

type tickMsg time.Time

// trendTickMsg drives the coarse 30-second refresh of the trend series so a
// long-open Reports view stays current.
type trendTickMsg time.Time

type loggedInMsg struct {
	user *domain.User
}

type loggedOutMsg struct{}

type dashboardDataMsg struct {
	tasks      []domain.Task
	stats      view.Stats
	timeTotals map[string]int64
	todayTotal int64
}

type reportsDataMsg struct {
	series []view.TrendPoint
}

type notificationsDataMsg struct {
	notifications []domain.Notification
	unreadCount   int
	settings      domain.NotificationSettings
}

type statusMsg struct {
	text    string
	isError bool
}

// toastMsg is delivered by the notification sink.
type toastMsg struct {
	toast notify.Toast
}

type timerStartedMsg struct{}

type timerStoppedMsg struct {
	entry domain.TimeEntry
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatSeconds(secs int64) string {
	return formatDuration(time.Duration(secs) * time.Second)
}

func formatHours(secs int64) string {
	h := float64(secs) / 3600
	return fmt.Sprintf("%.1fh", h)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
