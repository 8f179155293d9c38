package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/NishantDwd/tasktrail/internal/domain"
	"github.com/NishantDwd/tasktrail/internal/store"
)

type loginModel struct {
	store  *store.Store
	width  int
	height int

	form    *huh.Form
	errText string

	// Form field pointers (survive value copies)
	username *string
	password *string
}

func newLoginModel(s *store.Store) loginModel {
	u, p := "", ""
	m := loginModel{
		store:    s,
		username: &u,
		password: &p,
	}
	m.form = m.newForm()
	return m
}

func (l loginModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(l.username),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(l.password),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (l *loginModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

func (l loginModel) Init() tea.Cmd {
	return l.form.Init()
}

func (l loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		user, err := l.store.Login(*l.username, *l.password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				l.errText = "Invalid credentials"
			} else {
				l.errText = err.Error()
			}
			*l.password = ""
			l.form = l.newForm()
			return l, l.form.Init()
		}
		l.errText = ""
		return l, func() tea.Msg { return loggedInMsg{user: user} }
	}

	return l, cmd
}

func (l loginModel) view() string {
	title := titleStyle.Render("TaskTrail")
	subtitle := mutedStyle.Render("Sign in to manage tasks and track time")
	hint := mutedStyle.Render("demo accounts: developer/dev123 · manager/mgr123")

	rows := []string{title, subtitle, "", l.form.View()}
	if l.errText != "" {
		rows = append(rows, errorStyle.Render(l.errText))
	}
	rows = append(rows, "", hint)

	content := activePanelStyle.Width(min(l.width-4, 60)).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, content)
}
