package kanban

import (
	"fmt"
	"strings"

	"taskboard/internal/kanban/models"
	"taskboard/internal/tui/theme"
	"taskboard/internal/users"
)

const activityTimeLayout = "2006-01-02 15:04:05"

// renderActivity draws a task's history, oldest first
func renderActivity(task models.Task, dir *users.Directory, width int) string {
	var s strings.Builder

	s.WriteString(theme.ModalTitle.Render("Activity: " + task.Title))
	s.WriteString("\n\n")

	if len(task.Activity) == 0 {
		s.WriteString(theme.Muted.Render("No activity yet."))
		s.WriteString("\n")
	}

	for _, e := range task.Activity {
		s.WriteString(theme.Muted.Render(e.Timestamp.Local().Format(activityTimeLayout)))
		s.WriteString("  ")
		s.WriteString(e.Detail)
		s.WriteString(theme.Assignee.Render(" by " + actorName(e.User, dir)))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(theme.ModalHelp.Render(fmt.Sprintf("%d entries • esc/i: close", len(task.Activity))))

	return theme.ModalBox.Width(width).Render(s.String())
}

func actorName(user string, dir *users.Directory) string {
	switch user {
	case "":
		return "unassigned"
	case models.SystemUser:
		return models.SystemUser
	}
	return dir.Name(user)
}
