package kanban

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/kanban/models"
	"taskboard/internal/tui/theme"
	"taskboard/internal/users"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldLabel
	fieldAssignee
	fieldDue
	fieldCount
)

var fieldNames = [fieldCount]string{"Title", "Description", "Label", "Assignee", "Due date"}

// TaskFormModel edits the fields of a new or existing task
type TaskFormModel struct {
	taskID      string // "" for a new task
	title       textinput.Model
	description textinput.Model
	due         textinput.Model
	labelIdx    int // 0 = no label, otherwise models.Labels[labelIdx-1]
	assigneeIdx int // 0 = unassigned, otherwise users[assigneeIdx-1]
	users       []users.User
	focus       formField
	err         string
	Width       int
}

// TaskFormResultMsg is sent when the form is submitted or cancelled
type TaskFormResultMsg struct {
	TaskID      string
	Title       string
	Description string
	Label       *models.Label
	AssigneeID  string
	DueDate     *time.Time
	Cancelled   bool
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	return ti
}

// NewTaskForm returns an empty form for a new task
func NewTaskForm(dir *users.Directory) *TaskFormModel {
	m := &TaskFormModel{
		title:       newInput("What needs doing?", 200),
		description: newInput("Details", 1000),
		due:         newInput("yyyy-MM-dd", 10),
		users:       dir.All(),
		Width:       60,
	}
	m.setFocus(fieldTitle)
	return m
}

// EditTaskForm returns a form prefilled from task
func EditTaskForm(task models.Task, dir *users.Directory) *TaskFormModel {
	m := NewTaskForm(dir)
	m.taskID = task.ID
	m.title.SetValue(task.Title)
	m.description.SetValue(task.Description)
	m.due.SetValue(task.DueDateString())
	if task.Label != nil {
		for i, l := range models.Labels {
			if l == *task.Label {
				m.labelIdx = i + 1
			}
		}
	}
	for i, u := range m.users {
		if u.ID == task.AssigneeID {
			m.assigneeIdx = i + 1
		}
	}
	return m
}

// IsNew reports whether the form creates a task
func (m *TaskFormModel) IsNew() bool {
	return m.taskID == ""
}

// SetError shows err under the form
func (m *TaskFormModel) SetError(err error) {
	if err == nil {
		m.err = ""
		return
	}
	m.err = err.Error()
}

func (m *TaskFormModel) setFocus(f formField) {
	m.focus = f
	m.title.Blur()
	m.description.Blur()
	m.due.Blur()
	switch f {
	case fieldTitle:
		m.title.Focus()
	case fieldDescription:
		m.description.Focus()
	case fieldDue:
		m.due.Focus()
	}
}

func (m *TaskFormModel) label() *models.Label {
	if m.labelIdx == 0 {
		return nil
	}
	return models.LabelPtr(models.Labels[m.labelIdx-1])
}

func (m *TaskFormModel) assigneeID() string {
	if m.assigneeIdx == 0 {
		return ""
	}
	return m.users[m.assigneeIdx-1].ID
}

func (m *TaskFormModel) cycle(delta int) {
	switch m.focus {
	case fieldLabel:
		n := len(models.Labels) + 1
		m.labelIdx = (m.labelIdx + delta + n) % n
	case fieldAssignee:
		n := len(m.users) + 1
		m.assigneeIdx = (m.assigneeIdx + delta + n) % n
	}
}

func (m *TaskFormModel) submit() tea.Cmd {
	due, err := models.ParseDate(m.due.Value())
	if err != nil {
		m.err = "invalid due date, use yyyy-MM-dd"
		m.setFocus(fieldDue)
		return nil
	}
	result := TaskFormResultMsg{
		TaskID:      m.taskID,
		Title:       m.title.Value(),
		Description: m.description.Value(),
		Label:       m.label(),
		AssigneeID:  m.assigneeID(),
		DueDate:     due,
	}
	return func() tea.Msg { return result }
}

// Update handles a key press. Text fields take typed input; label and
// assignee cycle with left/right or space.
func (m *TaskFormModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "esc":
		return func() tea.Msg { return TaskFormResultMsg{TaskID: m.taskID, Cancelled: true} }
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return nil
	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return nil
	case "enter":
		if m.focus == fieldDue {
			return m.submit()
		}
		m.setFocus(m.focus + 1)
		return nil
	}

	if m.focus == fieldLabel || m.focus == fieldAssignee {
		switch key.String() {
		case "left", "h":
			m.cycle(-1)
		case "right", "l", " ":
			m.cycle(1)
		}
		return nil
	}

	m.err = ""
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldDue:
		m.due, cmd = m.due.Update(msg)
	}
	return cmd
}

// View renders the form as a modal box
func (m *TaskFormModel) View() string {
	st := currentStyles()

	var s strings.Builder
	if m.IsNew() {
		s.WriteString(theme.ModalTitle.Render("New task"))
	} else {
		s.WriteString(theme.ModalTitle.Render("Edit task"))
	}
	s.WriteString("\n\n")

	for f := formField(0); f < fieldCount; f++ {
		labelStyle := st.formLabel
		if f == m.focus {
			labelStyle = st.formFocusedLabel
		}
		s.WriteString(labelStyle.Render(fieldNames[f]))
		s.WriteString(m.fieldView(f))
		s.WriteString("\n")
	}

	if m.err != "" {
		s.WriteString("\n")
		s.WriteString(theme.Error.Render("Error: " + m.err))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(theme.ModalHelp.Render("tab/↑↓: field • ←/→: cycle • enter: next/save • ctrl+s: save • esc: cancel"))

	return theme.ModalBox.Width(m.Width).Render(s.String())
}

func (m *TaskFormModel) fieldView(f formField) string {
	switch f {
	case fieldTitle:
		return m.title.View()
	case fieldDescription:
		return m.description.View()
	case fieldDue:
		return m.due.View()
	case fieldLabel:
		if m.labelIdx == 0 {
			return cycleView("none", f == m.focus)
		}
		return cycleView(theme.Label(m.label()), f == m.focus)
	case fieldAssignee:
		if m.assigneeIdx == 0 {
			return cycleView("unassigned", f == m.focus)
		}
		u := m.users[m.assigneeIdx-1]
		return cycleView(fmt.Sprintf("%s (%s)", u.Name, u.ID), f == m.focus)
	}
	return ""
}

func cycleView(value string, focused bool) string {
	if focused {
		return "◀ " + value + " ▶"
	}
	return "  " + value
}
