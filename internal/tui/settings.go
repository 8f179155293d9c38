package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/notify"
)

var kindLabels = map[domain.NotificationKind]string{
	domain.NotifyTaskCreated:       "Task created",
	domain.NotifyTaskUpdated:       "Task updated",
	domain.NotifyTaskDeleted:       "Task deleted",
	domain.NotifyTaskStatusChanged: "Status changed",
	domain.NotifyTimeEntryAdded:    "Time entry added",
	domain.NotifyUserLoggedIn:      "User logged in",
	domain.NotifyUserLoggedOut:     "User logged out",
	domain.NotifySystemError:       "System error",
	domain.NotifyTaskApproved:      "Task approved",
	domain.NotifyTaskRejected:      "Task rejected",
}

type settingsModel struct {
	center *notify.Center
	width  int
	height int

	settings   domain.NotificationSettings
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	desktop *bool
	email   *bool
	sound   *bool
	kinds   *[]domain.NotificationKind
}

func newSettingsModel(c *notify.Center) settingsModel {
	d, e, s := false, false, false
	var kinds []domain.NotificationKind
	return settingsModel{
		center:  c,
		desktop: &d,
		email:   &e,
		sound:   &s,
		kinds:   &kinds,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return notificationsDataMsg{
			notifications: s.center.Notifications(),
			unreadCount:   s.center.UnreadCount(),
			settings:      s.center.Settings(),
		}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case notificationsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.desktop = s.settings.EnableDesktopNotifications
	*s.email = s.settings.EnableEmailNotifications
	*s.sound = s.settings.EnableSoundNotifications
	*s.kinds = append([]domain.NotificationKind(nil), s.settings.NotificationTypes...)

	all := domain.AllNotificationKinds()
	kindOptions := make([]huh.Option[domain.NotificationKind], len(all))
	for i, k := range all {
		kindOptions[i] = huh.NewOption(kindLabels[k], k)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Desktop notifications").Value(s.desktop),
			huh.NewConfirm().Title("Email notifications").Value(s.email),
			huh.NewConfirm().Title("Sound notifications").Value(s.sound),
		).Title("Channels"),
		huh.NewGroup(
			huh.NewMultiSelect[domain.NotificationKind]().
				Title("Notify me about").
				Options(kindOptions...).
				Value(s.kinds),
		).Title("Types"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		s.center.UpdateSettings(notify.SettingsPatch{
			EnableDesktopNotifications: s.desktop,
			EnableEmailNotifications:   s.email,
			EnableSoundNotifications:   s.sound,
			NotificationTypes:          *s.kinds,
		})
		return s, s.refresh()
	}

	return s, cmd
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render("Notification Settings"), "", s.form.View()),
		)
	}

	onOff := func(v bool) string {
		if v {
			return successStyle.Render("on")
		}
		return mutedStyle.Render("off")
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Notification Settings"), "")
	rows = append(rows, fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(24).Render("Desktop"), onOff(s.settings.EnableDesktopNotifications)))
	rows = append(rows, fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(24).Render("Email"), onOff(s.settings.EnableEmailNotifications)))
	rows = append(rows, fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(24).Render("Sound"), onOff(s.settings.EnableSoundNotifications)))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  Enabled types:"))
	for _, k := range s.settings.NotificationTypes {
		rows = append(rows, "    "+highlightStyle.Render(kindLabels[k]))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
