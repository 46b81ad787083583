package move

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/kanban/filter"
	"taskboard/internal/kanban/models"
	"taskboard/internal/kanban/operations"
)

// newBoard builds todo = [a1 b1 a2 b2 a3] and done = [b3 a4] where "a"
// tasks belong to u1 and "b" tasks to u2.
func newBoard(t *testing.T) (*operations.Controller, *Resolver) {
	t.Helper()
	board := models.NewBoard("test",
		models.Column{ID: "todo", Title: "To-Do", TaskIDs: []string{"a1", "b1", "a2", "b2", "a3"}},
		models.Column{ID: "done", Title: "Done", TaskIDs: []string{"b3", "a4"}},
	)
	for _, col := range board.Columns {
		for _, id := range col.TaskIDs {
			assignee := "u1"
			if id[0] == 'b' {
				assignee = "u2"
			}
			board.Tasks[id] = &models.Task{ID: id, Title: "task " + id, Status: col.ID, AssigneeID: assignee}
		}
	}

	n := 0
	ctrl, err := operations.NewController(board,
		operations.WithClock(func() time.Time { return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC) }),
		operations.WithIDGenerator(func() string { n++; return fmt.Sprintf("n%d", n) }),
	)
	require.NoError(t, err)
	return ctrl, NewResolver(ctrl)
}

func ids(t *testing.T, ctrl *operations.Controller, column string) []string {
	t.Helper()
	col, ok := ctrl.Column(column)
	require.True(t, ok)
	return col.TaskIDs
}

func drag(taskID, from string, fromIdx int, to string, toIdx int) DragResult {
	return DragResult{
		TaskID:      taskID,
		Source:      Location{ColumnID: from, Index: fromIdx},
		Destination: &Location{ColumnID: to, Index: toIdx},
	}
}

func TestApply_Unfiltered(t *testing.T) {
	ctrl, r := newBoard(t)

	require.NoError(t, r.Apply(drag("a1", "todo", 0, "todo", 2), filter.State{}))
	assert.Equal(t, []string{"b1", "a2", "a1", "b2", "a3"}, ids(t, ctrl, "todo"))

	require.NoError(t, r.Apply(drag("b2", "todo", 3, "done", 1), filter.State{}))
	assert.Equal(t, []string{"b1", "a2", "a1", "a3"}, ids(t, ctrl, "todo"))
	assert.Equal(t, []string{"b3", "b2", "a4"}, ids(t, ctrl, "done"))
	assert.NoError(t, ctrl.Check())
}

func TestApply_FilteredSourceIndexMapsToRawSlot(t *testing.T) {
	ctrl, r := newBoard(t)
	onlyU1 := filter.State{AssigneeID: "u1"}

	// Visible todo = [a1 a2 a3]; visible index 1 is a2 at raw index 2.
	require.NoError(t, r.Apply(drag("a2", "todo", 1, "done", 0), onlyU1))

	assert.Equal(t, []string{"a1", "b1", "b2", "a3"}, ids(t, ctrl, "todo"))
	// Visible done = [a4]; slot 0 is right before a4, after the hidden b3.
	assert.Equal(t, []string{"b3", "a2", "a4"}, ids(t, ctrl, "done"))

	task, _ := ctrl.Task("a2")
	assert.Equal(t, "done", task.Status)
	assert.Equal(t, "Moved to Done", task.Activity[len(task.Activity)-1].Detail)
}

func TestApply_FilteredReorderWithinColumn(t *testing.T) {
	ctrl, r := newBoard(t)
	onlyU1 := filter.State{AssigneeID: "u1"}

	// Drag a3 (visible 2) to visible slot 0: lands right before a1.
	require.NoError(t, r.Apply(drag("a3", "todo", 2, "todo", 0), onlyU1))
	assert.Equal(t, []string{"a3", "a1", "b1", "a2", "b2"}, ids(t, ctrl, "todo"))

	// Drag a3 (visible 0) to visible slot 2 (past a2): lands right after a2.
	require.NoError(t, r.Apply(drag("a3", "todo", 0, "todo", 2), onlyU1))
	assert.Equal(t, []string{"a1", "b1", "a2", "a3", "b2"}, ids(t, ctrl, "todo"))

	// Drag a1 (visible 0) to visible slot 1: lands right before a3.
	require.NoError(t, r.Apply(drag("a1", "todo", 0, "todo", 1), onlyU1))
	assert.Equal(t, []string{"b1", "a2", "a1", "a3", "b2"}, ids(t, ctrl, "todo"))

	task, _ := ctrl.Task("a1")
	assert.Empty(t, task.Activity, "reorders never log activity")
}

func TestApply_DropIntoColumnWithNothingVisible(t *testing.T) {
	ctrl, r := newBoard(t)
	onlyU1 := filter.State{AssigneeID: "u1"}
	_, err := ctrl.AddColumn("Review")
	require.NoError(t, err)
	_, err = ctrl.AddTask("Review", "hidden", "desc", nil, "u2", nil)
	require.NoError(t, err)

	require.NoError(t, r.Apply(drag("a1", "todo", 0, "Review", 0), onlyU1))
	assert.Equal(t, []string{"n1", "a1"}, ids(t, ctrl, "Review"))
}

func TestResolve_Noops(t *testing.T) {
	ctrl, r := newBoard(t)
	before := ctrl.Columns()

	cancelled := DragResult{TaskID: "a1", Source: Location{ColumnID: "todo", Index: 0}}
	_, ok, err := r.Resolve(cancelled, filter.State{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = r.Resolve(drag("a1", "todo", 0, "todo", 0), filter.State{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = r.Resolve(drag("a1", "todo", 0, "todo", 1), filter.State{Query: "zzz"})
	assert.Error(t, err, "a1 is hidden, so visible slot 0 does not exist")
	assert.False(t, ok)

	require.NoError(t, r.Apply(cancelled, filter.State{}))
	assert.Equal(t, before, ctrl.Columns())
}

func TestResolve_PastLastVisible(t *testing.T) {
	ctrl, r := newBoard(t)
	onlyU2 := filter.State{AssigneeID: "u2"}

	// Visible todo = [b1 b2]. Without b1 the visible list is [b2], so slot 1
	// is right after b2.
	req, ok, err := r.Resolve(drag("b1", "todo", 0, "todo", 1), onlyU2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Request{TaskID: "b1", FromColumnID: "todo", FromIndex: 1, ToColumnID: "todo", ToIndex: 3}, req)

	require.NoError(t, r.Apply(drag("b1", "todo", 0, "todo", 1), onlyU2))
	assert.Equal(t, []string{"a1", "a2", "b2", "b1", "a3"}, ids(t, ctrl, "todo"))
}

func TestResolve_SameRawSlotIsNoop(t *testing.T) {
	_, r := newBoard(t)

	// a3 is already last; dropping it past the end resolves to its own slot.
	req, ok, err := r.Resolve(drag("a3", "todo", 4, "todo", 9), filter.State{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 4, req.FromIndex)
	assert.Equal(t, 4, req.ToIndex)
}

func TestResolve_Errors(t *testing.T) {
	_, r := newBoard(t)

	tests := []struct {
		name string
		drag DragResult
	}{
		{"missing source column", drag("a1", "nope", 0, "todo", 0)},
		{"missing destination column", drag("a1", "todo", 0, "nope", 0)},
		{"source index out of range", drag("a1", "todo", 9, "done", 0)},
		{"dragged id not at source slot", drag("b1", "todo", 0, "done", 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := r.Resolve(tt.drag, filter.State{})
			assert.True(t, operations.IsNotFound(err))
		})
	}
}
