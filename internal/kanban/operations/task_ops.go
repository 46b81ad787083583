package operations

import (
	"fmt"
	"strings"
	"time"

	"taskboard/internal/kanban/activity"
	"taskboard/internal/kanban/models"
	"taskboard/internal/logs"
)

// TaskFields are the user-editable fields of a task
type TaskFields struct {
	Title       string
	Description string
	Label       *models.Label
	AssigneeID  string
	DueDate     *time.Time
}

func (c *Controller) validateFields(f TaskFields) error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Msg: "cannot be empty"}
	}
	if strings.TrimSpace(f.Description) == "" {
		return &ValidationError{Field: "description", Msg: "cannot be empty"}
	}
	if f.AssigneeID != "" && c.users != nil && !c.users.Exists(f.AssigneeID) {
		return &ValidationError{Field: "assignee", Msg: fmt.Sprintf("unknown user %q", f.AssigneeID)}
	}
	return nil
}

// AddTask creates a task at the end of the intake column and returns its id
func (c *Controller) AddTask(intakeColumnID, title, description string, label *models.Label, assigneeID string, dueDate *time.Time) (string, error) {
	f := TaskFields{Title: title, Description: description, Label: label, AssigneeID: assigneeID, DueDate: dueDate}
	if err := c.validateFields(f); err != nil {
		logs.Logger.WithError(err).Warn("add task rejected")
		return "", err
	}

	col := c.board.GetColumn(intakeColumnID)
	if col == nil {
		return "", columnNotFound(intakeColumnID)
	}

	id := c.newID()
	for c.board.Tasks[id] != nil {
		id = c.newID()
	}

	task := &models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      col.ID,
		Label:       copyLabel(label),
		AssigneeID:  assigneeID,
		DueDate:     copyDate(dueDate),
		CreatedAt:   c.recorder.Now(),
	}
	c.recorder.Append(task, models.ActivityCreated, "Task created", activity.Actor(assigneeID))

	c.board.Tasks[id] = task
	col.TaskIDs = append(col.TaskIDs, id)

	c.logf("added task %s to %s", id, col.ID)
	return id, nil
}

// EditTask replaces a task's editable fields and records what changed.
// Every entry is attributed to the new assignee value as given.
func (c *Controller) EditTask(taskID, title, description string, label *models.Label, assigneeID string, dueDate *time.Time) error {
	task, ok := c.board.Tasks[taskID]
	if !ok {
		return taskNotFound(taskID)
	}
	f := TaskFields{Title: title, Description: description, Label: label, AssigneeID: assigneeID, DueDate: dueDate}
	if err := c.validateFields(f); err != nil {
		logs.Logger.WithError(err).Warnf("edit task %s rejected", taskID)
		return err
	}

	prev := task.Clone()

	task.Title = title
	task.Description = description
	task.Label = copyLabel(label)
	task.AssigneeID = assigneeID
	task.DueDate = copyDate(dueDate)

	c.recorder.Append(task, models.ActivityEdited, "Task edited", assigneeID)
	if !models.SameLabel(prev.Label, label) {
		c.recorder.Append(task, models.ActivityLabelChanged, "Label changed to "+models.LabelString(label), assigneeID)
	}
	if !models.SameDate(prev.DueDate, dueDate) {
		c.recorder.Append(task, models.ActivityDueDateChanged, "Due date changed to "+models.FormatDate(dueDate), assigneeID)
	}
	if prev.AssigneeID != assigneeID {
		c.recorder.Append(task, models.ActivityAssigned, "Assigned to "+assigneeID, assigneeID)
	}

	c.logf("edited task %s", taskID)
	return nil
}

// DeleteTask removes a task from the board. Unknown ids are ignored.
func (c *Controller) DeleteTask(taskID string) {
	if _, ok := c.board.Tasks[taskID]; !ok {
		return
	}

	if colIdx, pos := c.board.ColumnOf(taskID); colIdx >= 0 {
		col := &c.board.Columns[colIdx]
		col.TaskIDs = removeAt(col.TaskIDs, pos)
	}
	delete(c.board.Tasks, taskID)

	c.logf("deleted task %s", taskID)
}

func copyLabel(l *models.Label) *models.Label {
	if l == nil {
		return nil
	}
	return models.LabelPtr(*l)
}

func copyDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return &day
}

func removeAt(ids []string, i int) []string {
	out := make([]string, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...)
}

func insertAt(ids []string, i int, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:i]...)
	out = append(out, id)
	return append(out, ids[i:]...)
}
