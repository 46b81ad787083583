package agenda

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	agendapkg "taskboard/internal/agenda"
	"taskboard/internal/kanban/operations"
	"taskboard/internal/tui/messages"
	"taskboard/internal/tui/shared"
	"taskboard/internal/tui/theme"
	"taskboard/internal/users"
)

// WeekModel lists the tasks due in the seven days starting today
type WeekModel struct {
	ctrl    *operations.Controller
	users   *users.Directory
	now     func() time.Time
	buckets []agendapkg.DateBucket
	overdue []agendapkg.AgendaItem
	cursor  int // selected day
	width   int
	height  int
}

// NewWeekModel creates a new week view over ctrl's board
func NewWeekModel(ctrl *operations.Controller, dir *users.Directory) WeekModel {
	m := WeekModel{
		ctrl:  ctrl,
		users: dir,
		now:   time.Now,
	}
	m.Refresh()
	return m
}

// Refresh recomputes the buckets from the current board
func (m *WeekModel) Refresh() {
	today := m.now()
	board := m.ctrl.Board()
	m.buckets = agendapkg.Week(board, today)
	m.overdue = agendapkg.Overdue(board, today)
	if m.cursor >= len(m.buckets) {
		m.cursor = len(m.buckets) - 1
	}
}

// SetSize updates the view dimensions
func (m *WeekModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedDate returns the day under the cursor
func (m WeekModel) SelectedDate() time.Time {
	return m.buckets[m.cursor].Date
}

// Update handles key events for the week view
func (m WeekModel) Update(msg tea.Msg) (WeekModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.buckets)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "t":
		m.cursor = 0
	case "enter":
		date := m.SelectedDate()
		return m, tea.Sequence(
			func() tea.Msg { return messages.FilterDueMsg{Date: date} },
			messages.SwitchView(messages.ViewBoard),
		)
	case "esc", "b":
		return m, messages.SwitchView(messages.ViewBoard)
	}

	return m, nil
}

// View renders the week view
func (m WeekModel) View() string {
	st := currentStyles()
	today := m.now()

	var sb strings.Builder

	start := m.buckets[0].Date
	end := m.buckets[len(m.buckets)-1].Date
	sb.WriteString(st.title.Render(fmt.Sprintf(" Week: %s - %s", start.Format("Jan 2"), end.Format("Jan 2 2006"))))
	sb.WriteString("\n")

	if agendapkg.HasDueOrOverdue(m.ctrl.Board(), today) {
		sb.WriteString(st.banner.Render(" You have tasks due today or overdue!"))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if len(m.overdue) > 0 {
		sb.WriteString(st.overdueHeader.Render(fmt.Sprintf(" Overdue (%d)", len(m.overdue))))
		sb.WriteString("\n")
		for _, item := range m.overdue {
			sb.WriteString("     ")
			sb.WriteString(m.renderItem(st, item, true))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	for i, bucket := range m.buckets {
		header := " " + bucket.Date.Format("Mon Jan 2")
		if bucket.IsToday(today) {
			header += " (today)"
		}

		switch {
		case i == m.cursor:
			sb.WriteString(st.selectedDay.Render(header))
		case bucket.IsToday(today):
			sb.WriteString(st.today.Render(header))
		default:
			sb.WriteString(st.dayHeader.Render(header))
		}
		if len(bucket.Items) > 0 {
			sb.WriteString(" " + st.count.Render(fmt.Sprintf("(%d)", len(bucket.Items))))
		}
		sb.WriteString("\n")

		if len(bucket.Items) == 0 && i == m.cursor {
			sb.WriteString(st.empty.Render("     nothing due"))
			sb.WriteString("\n")
		}
		for _, item := range bucket.Items {
			sb.WriteString("     ")
			sb.WriteString(m.renderItem(st, item, false))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(theme.HelpHint.Render(" j/k: day • enter: filter board by day • t: today • esc/b: board"))

	return shared.CenterContent(sb.String(), m.height)
}

func (m WeekModel) renderItem(st weekStyles, item agendapkg.AgendaItem, withDate bool) string {
	var parts []string
	if withDate {
		parts = append(parts, item.Date.Format("Jan 2"))
	}
	parts = append(parts, item.Task.Title)
	if item.Task.Label != nil {
		parts = append(parts, theme.Label(item.Task.Label))
	}
	if item.Task.AssigneeID != "" {
		parts = append(parts, theme.Assignee.Render("@"+m.users.Name(item.Task.AssigneeID)))
	}
	parts = append(parts, st.column.Render("["+item.ColumnTitle+"]"))
	return strings.Join(parts, " ")
}
