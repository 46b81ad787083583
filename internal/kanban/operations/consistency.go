package operations

import (
	"fmt"

	"taskboard/internal/kanban/models"
)

// CheckConsistency verifies that column ids are unique, that every task is
// referenced by exactly one column, that every referenced id resolves to a
// task, and that each task's status names its column. A board with no
// columns and no tasks is consistent.
func CheckConsistency(board *models.Board) error {
	columnIDs := make(map[string]bool, len(board.Columns))
	seen := make(map[string]string, len(board.Tasks))

	for _, col := range board.Columns {
		if columnIDs[col.ID] {
			return fmt.Errorf("duplicate column id %q", col.ID)
		}
		columnIDs[col.ID] = true

		for _, id := range col.TaskIDs {
			if other, dup := seen[id]; dup {
				return fmt.Errorf("task %q appears in both %q and %q", id, other, col.ID)
			}
			seen[id] = col.ID

			task, ok := board.Tasks[id]
			if !ok {
				return fmt.Errorf("column %q references missing task %q", col.ID, id)
			}
			if task.ID != id {
				return fmt.Errorf("task keyed %q has id %q", id, task.ID)
			}
			if task.Status != col.ID {
				return fmt.Errorf("task %q has status %q but is in column %q", id, task.Status, col.ID)
			}
		}
	}

	for id := range board.Tasks {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("task %q is not in any column", id)
		}
	}
	return nil
}
