package operations

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/kanban/models"
)

func TestCheckConsistency(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *models.Board)
		wantErr bool
	}{
		{"seed", func(b *models.Board) {}, false},
		{"no columns and no tasks", func(b *models.Board) {
			b.Columns = nil
			b.Tasks = map[string]*models.Task{}
		}, false},
		{"orphan task", func(b *models.Board) {
			b.Columns[0].TaskIDs = []string{"1"}
		}, true},
		{"dangling id", func(b *models.Board) {
			b.Columns[2].TaskIDs = []string{"42"}
		}, true},
		{"id in two columns", func(b *models.Board) {
			b.Columns[2].TaskIDs = []string{"1"}
		}, true},
		{"duplicate within column", func(b *models.Board) {
			b.Columns[1].TaskIDs = []string{"3", "3"}
		}, true},
		{"wrong status", func(b *models.Board) {
			b.Tasks["1"].Status = "done"
		}, true},
		{"duplicate column id", func(b *models.Board) {
			b.Columns[2].ID = "todo"
		}, true},
		{"columns deleted but tasks remain", func(b *models.Board) {
			b.Columns = nil
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := SeedBoard(testNow)
			tt.mutate(b)
			err := CheckConsistency(b)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestRandomOperations_KeepInvariants drives the controller with a random
// mix of commands and checks the board after every step.
func TestRandomOperations_KeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := newTestController(t, SeedBoard(testNow))

	randomTask := func() string {
		for id := range c.board.Tasks {
			return id
		}
		return "none"
	}
	randomColumn := func() string {
		if len(c.board.Columns) == 0 {
			return "none"
		}
		return c.board.Columns[rng.Intn(len(c.board.Columns))].ID
	}

	for step := 0; step < 500; step++ {
		switch rng.Intn(7) {
		case 0, 1:
			if c.board.GetColumn(IntakeColumnID) == nil {
				_, _ = c.AddColumn("todo")
			}
			_, _ = c.AddTask(IntakeColumnID, "task", "desc", nil, "u1", nil)
		case 2:
			_ = c.EditTask(randomTask(), "edited", "desc", models.LabelPtr(models.LabelUrgent), "u2", nil)
		case 3:
			c.DeleteTask(randomTask())
		case 4:
			if rng.Intn(4) == 0 {
				c.DeleteColumn(randomColumn())
			} else {
				_, _ = c.AddColumn("col")
			}
		default:
			from := randomColumn()
			col := c.board.GetColumn(from)
			if col == nil || len(col.TaskIDs) == 0 {
				continue
			}
			idx := rng.Intn(len(col.TaskIDs))
			taskID := col.TaskIDs[idx]
			to := randomColumn()
			status := c.board.Tasks[taskID].Status
			activity := len(c.board.Tasks[taskID].Activity)

			require.NoError(t, c.MoveTask(taskID, from, idx, to, rng.Intn(6)))

			if from == to {
				assert.Equal(t, status, c.board.Tasks[taskID].Status)
				assert.Len(t, c.board.Tasks[taskID].Activity, activity)
			} else {
				assert.Equal(t, to, c.board.Tasks[taskID].Status)
				assert.Len(t, c.board.Tasks[taskID].Activity, activity+1)
			}
		}

		require.NoError(t, CheckConsistency(c.board), "step %d", step)
	}
}
