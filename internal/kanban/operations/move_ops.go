package operations

import (
	"fmt"

	"taskboard/internal/kanban/activity"
	"taskboard/internal/kanban/models"
)

// MoveTask takes the task at fromIndex of the source column and inserts it
// at toIndex of the destination column. toIndex is clamped to the
// destination's length once the task has been removed. Crossing columns
// updates the task's status and records a moved entry; reordering within a
// column changes only the order.
func (c *Controller) MoveTask(taskID, fromColumnID string, fromIndex int, toColumnID string, toIndex int) error {
	from := c.board.GetColumn(fromColumnID)
	if from == nil {
		return columnNotFound(fromColumnID)
	}
	to := c.board.GetColumn(toColumnID)
	if to == nil {
		return columnNotFound(toColumnID)
	}
	task, ok := c.board.Tasks[taskID]
	if !ok {
		return taskNotFound(taskID)
	}
	if fromIndex < 0 || fromIndex >= len(from.TaskIDs) {
		return &NotFoundError{Kind: "task", ID: fmt.Sprintf("%s[%d]", fromColumnID, fromIndex)}
	}
	if from.TaskIDs[fromIndex] != taskID {
		return &NotFoundError{Kind: "task", ID: fmt.Sprintf("%s at %s[%d]", taskID, fromColumnID, fromIndex)}
	}

	sameColumn := from == to
	destLen := len(to.TaskIDs)
	if sameColumn {
		destLen--
	}
	toIndex = max(0, min(toIndex, destLen))

	if sameColumn && toIndex == fromIndex {
		return nil
	}

	if sameColumn {
		from.TaskIDs = insertAt(removeAt(from.TaskIDs, fromIndex), toIndex, taskID)
		c.logf("reordered task %s in %s: %d -> %d", taskID, fromColumnID, fromIndex, toIndex)
		return nil
	}

	from.TaskIDs = removeAt(from.TaskIDs, fromIndex)
	to.TaskIDs = insertAt(to.TaskIDs, toIndex, taskID)
	task.Status = to.ID
	c.recorder.Append(task, models.ActivityMoved, "Moved to "+to.Title, activity.Actor(task.AssigneeID))

	c.logf("moved task %s from %s to %s", taskID, fromColumnID, toColumnID)
	return nil
}
