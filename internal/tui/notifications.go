package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/notify"
)

type notificationsModel struct {
	center *notify.Center
	width  int
	height int

	notifications []domain.Notification
	unreadCount   int
	cursor        int
}

func newNotificationsModel(c *notify.Center) notificationsModel {
	return notificationsModel{center: c}
}

func (n *notificationsModel) setSize(w, h int) {
	n.width = w
	n.height = h
}

func (n notificationsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return notificationsDataMsg{
			notifications: n.center.Notifications(),
			unreadCount:   n.center.UnreadCount(),
			settings:      n.center.Settings(),
		}
	}
}

func (n notificationsModel) update(msg tea.Msg) (notificationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsDataMsg:
		n.notifications = msg.notifications
		n.unreadCount = msg.unreadCount
		if n.cursor >= len(n.notifications) {
			n.cursor = max(0, len(n.notifications)-1)
		}
		return n, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if n.cursor > 0 {
				n.cursor--
			}

		case key.Matches(msg, keys.Down):
			if n.cursor < len(n.notifications)-1 {
				n.cursor++
			}

		case key.Matches(msg, keys.Read), key.Matches(msg, keys.Enter):
			if len(n.notifications) > 0 {
				n.center.MarkAsRead(n.notifications[n.cursor].ID)
				return n, n.refresh()
			}

		case key.Matches(msg, keys.ReadAll):
			n.center.MarkAllAsRead()
			return n, n.refresh()

		case key.Matches(msg, keys.Delete):
			if len(n.notifications) > 0 {
				n.center.Delete(n.notifications[n.cursor].ID)
				return n, n.refresh()
			}

		case key.Matches(msg, keys.Clear):
			n.center.ClearAll()
			n.cursor = 0
			return n, n.refresh()
		}
	}
	return n, nil
}

func (n notificationsModel) view() string {
	w := n.width - 4

	header := titleStyle.Render("Notifications")
	if n.unreadCount > 0 {
		header += "  " + unreadStyle.Render(fmt.Sprintf("(%d unread)", n.unreadCount))
	}

	if len(n.notifications) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No notifications"),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, header, "")

	maxRows := max(3, n.height-10)
	start := 0
	if n.cursor >= maxRows {
		start = n.cursor - maxRows + 1
	}
	end := min(len(n.notifications), start+maxRows)

	for i := start; i < end; i++ {
		item := n.notifications[i]
		cursor := "  "
		if i == n.cursor {
			cursor = selectedItemStyle.Render("> ")
		}

		marker := "  "
		titleSt := normalItemStyle
		if !item.Read {
			marker = unreadStyle.Render("● ")
			titleSt = unreadStyle
		}

		prio := ""
		if item.Priority == domain.PriorityHighNotice {
			prio = errorStyle.Render(" !")
		}

		rows = append(rows, fmt.Sprintf("%s%s%s%s  %s",
			cursor, marker, titleSt.Render(item.Title), prio,
			mutedStyle.Render(relativeTime(item.Timestamp, time.Now())),
		))
		rows = append(rows, "    "+mutedStyle.Render(item.Message))
	}

	if end < len(n.notifications) || start > 0 {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(n.notifications))))
	}

	rows = append(rows, "", mutedStyle.Render("  m: mark read  M: mark all  d: delete  C: clear all"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// relativeTime renders a timestamp the way the notification dropdown does:
// "just now", "5m ago", "3h ago", then a date.
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 02")
	}
}
