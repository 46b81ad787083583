// Package filter projects the visible subset of a column's tasks.
package filter

import (
	"strings"
	"time"

	"taskboard/internal/kanban/models"
)

// State is the active set of board filters. Zero values disable a filter.
type State struct {
	Query      string        // Case-insensitive title substring
	Label      *models.Label // nil = any label
	AssigneeID string        // "" = any assignee
	DueDate    *time.Time    // nil = any due date
}

// IsActive reports whether any filter is set
func (s State) IsActive() bool {
	return s.Query != "" || s.Label != nil || s.AssigneeID != "" || s.DueDate != nil
}

// Matches reports whether a task passes every active filter
func (s State) Matches(t *models.Task) bool {
	if t == nil {
		return false
	}
	if s.Query != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(s.Query)) {
		return false
	}
	if s.Label != nil && !models.SameLabel(s.Label, t.Label) {
		return false
	}
	if s.AssigneeID != "" && t.AssigneeID != s.AssigneeID {
		return false
	}
	if s.DueDate != nil && !models.SameDate(s.DueDate, t.DueDate) {
		return false
	}
	return true
}

// Apply returns the visible tasks for a column's id sequence, in sequence
// order. Ids with no task are skipped. Inputs are never modified.
func Apply(tasks map[string]*models.Task, ids []string, s State) []models.Task {
	visible := make([]models.Task, 0, len(ids))
	for _, idx := range VisibleIndices(tasks, ids, s) {
		visible = append(visible, tasks[ids[idx]].Clone())
	}
	return visible
}

// VisibleIndices returns the positions in ids of the tasks that pass the
// filters, in ascending order.
func VisibleIndices(tasks map[string]*models.Task, ids []string, s State) []int {
	indices := make([]int, 0, len(ids))
	for i, id := range ids {
		if s.Matches(tasks[id]) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Column projects one column of a board
func Column(board *models.Board, columnID string, s State) []models.Task {
	col := board.GetColumn(columnID)
	if col == nil {
		return nil
	}
	return Apply(board.Tasks, col.TaskIDs, s)
}

// Describe renders the active filters for status lines, e.g.
// `"api" label:Bug assignee:u1 due:2025-07-28`
func (s State) Describe() string {
	return s.DescribeWith(nil)
}

// DescribeWith is Describe with assignee ids shown through name. A nil name
// shows raw ids.
func (s State) DescribeWith(name func(id string) string) string {
	var parts []string
	if s.Query != "" {
		parts = append(parts, `"`+s.Query+`"`)
	}
	if s.Label != nil {
		parts = append(parts, "label:"+string(*s.Label))
	}
	if s.AssigneeID != "" {
		assignee := s.AssigneeID
		if name != nil {
			assignee = name(assignee)
		}
		parts = append(parts, "assignee:"+assignee)
	}
	if s.DueDate != nil {
		parts = append(parts, "due:"+models.FormatDate(s.DueDate))
	}
	return strings.Join(parts, " ")
}
