package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/NishantDwd/tasktrail/internal/domain"
)

// showTaskForm opens the create/edit form. Passing nil creates a new task
// with the current user as the default assignee, matching how the web form
// prefills itself.
func (d dashboardModel) showTaskForm(t *domain.Task) (dashboardModel, tea.Cmd) {
	if t != nil {
		*d.formTitle = t.Title
		*d.formDescription = t.Description
		*d.formPriority = string(t.Priority)
		*d.formStatus = string(t.Status)
		*d.formAssignee = t.Assignee
		*d.formDueDate = ""
		if t.DueDate != nil {
			*d.formDueDate = t.DueDate.Format("2006-01-02")
		}
		*d.formEstimated = ""
		if t.EstimatedHours != nil {
			*d.formEstimated = strconv.FormatFloat(*t.EstimatedHours, 'f', -1, 64)
		}
		*d.formTags = strings.Join(t.Tags, ", ")
		d.formEditing = true
		d.editingID = t.ID
	} else {
		assignee := ""
		if u := d.store.CurrentUser(); u != nil {
			assignee = u.Name
		}
		*d.formTitle = ""
		*d.formDescription = ""
		*d.formPriority = string(domain.PriorityMedium)
		*d.formStatus = string(domain.StatusOpen)
		*d.formAssignee = assignee
		*d.formDueDate = ""
		*d.formEstimated = ""
		*d.formTags = ""
		d.formEditing = false
		d.editingID = ""
	}

	priorityOptions := []huh.Option[string]{
		huh.NewOption("Low", "low"),
		huh.NewOption("Medium", "medium"),
		huh.NewOption("High", "high"),
		huh.NewOption("Critical", "critical"),
	}
	statusOptions := []huh.Option[string]{
		huh.NewOption("Open", "open"),
		huh.NewOption("In Progress", "in-progress"),
		huh.NewOption("Pending Approval", "pending-approval"),
		huh.NewOption("Closed", "closed"),
	}

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(d.formTitle).
				Validate(requiredField("title")),
			huh.NewText().Title("Description").Value(d.formDescription).
				Validate(requiredField("description")),
			huh.NewSelect[string]().Title("Priority").Options(priorityOptions...).Value(d.formPriority),
			huh.NewSelect[string]().Title("Status").Options(statusOptions...).Value(d.formStatus),
			huh.NewInput().Title("Assignee").Value(d.formAssignee).
				Validate(requiredField("assignee")),
			huh.NewInput().Title("Due Date (YYYY-MM-DD)").Value(d.formDueDate).
				Validate(validDate),
			huh.NewInput().Title("Estimated Hours").Value(d.formEstimated).
				Validate(validHours),
			huh.NewInput().Title("Tags (comma-separated)").Value(d.formTags),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		d.form = nil
		return d.submitForm()
	}

	return d, cmd
}

func (d dashboardModel) submitForm() (dashboardModel, tea.Cmd) {
	in := domain.TaskInput{
		Title:       strings.TrimSpace(*d.formTitle),
		Description: strings.TrimSpace(*d.formDescription),
		Priority:    domain.Priority(*d.formPriority),
		Status:      domain.Status(*d.formStatus),
		Assignee:    strings.TrimSpace(*d.formAssignee),
	}
	if s := strings.TrimSpace(*d.formDueDate); s != "" {
		due, err := time.Parse("2006-01-02", s)
		if err != nil {
			return d, status(fmt.Sprintf("Error: %v", err), true)
		}
		in.DueDate = &due
	}
	if s := strings.TrimSpace(*d.formEstimated); s != "" {
		h, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return d, status(fmt.Sprintf("Error: %v", err), true)
		}
		in.EstimatedHours = &h
	}
	if s := strings.TrimSpace(*d.formTags); s != "" {
		for _, tag := range strings.Split(s, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				in.Tags = append(in.Tags, tag)
			}
		}
	}

	if d.formEditing {
		existing, ok := d.store.TaskByID(d.editingID)
		if !ok {
			return d, status("Error: task no longer exists", true)
		}
		t := *existing
		t.Title = in.Title
		t.Description = in.Description
		t.Priority = in.Priority
		t.Status = in.Status
		t.Assignee = in.Assignee
		t.DueDate = in.DueDate
		t.EstimatedHours = in.EstimatedHours
		t.Tags = in.Tags
		if _, err := d.store.UpdateTask(t); err != nil {
			return d, status(fmt.Sprintf("Error: %v", err), true)
		}
		return d, tea.Batch(d.loadData(), status(fmt.Sprintf("Updated %q", t.Title), false))
	}

	task, err := d.store.AddTask(in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return d, status("Validation failed: "+verr.Error(), true)
		}
		return d, status(fmt.Sprintf("Error: %v", err), true)
	}
	return d, tea.Batch(d.loadData(), status(fmt.Sprintf("Created %q", task.Title), false))
}

func (d dashboardModel) renderForm() string {
	title := titleStyle.Render("New Task")
	if d.formEditing {
		title = titleStyle.Render("Edit Task")
	}
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", d.form.View())
	return panelStyle.Width(d.width - 4).Render(content)
}

func requiredField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validHours(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || h < 0 {
		return errors.New("must be a positive number")
	}
	return nil
}
