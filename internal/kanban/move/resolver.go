// Package move turns drag results over filtered columns into controller moves.
package move

import (
	"fmt"

	"taskboard/internal/kanban/filter"
	"taskboard/internal/kanban/models"
	"taskboard/internal/kanban/operations"
)

// Location is a slot in a column's visible list
type Location struct {
	ColumnID string
	Index    int
}

// DragResult is what a drag gesture reports on drop. Indices address the
// filtered lists the user saw. A nil Destination means the drag was cancelled.
type DragResult struct {
	TaskID      string
	Source      Location
	Destination *Location
}

// Request is a move expressed in raw column positions
type Request struct {
	TaskID       string
	FromColumnID string
	FromIndex    int
	ToColumnID   string
	ToIndex      int
}

// Resolver maps drag results onto controller moves
type Resolver struct {
	ctrl *operations.Controller
}

// NewResolver returns a resolver driving ctrl
func NewResolver(ctrl *operations.Controller) *Resolver {
	return &Resolver{ctrl: ctrl}
}

// Resolve translates visible indices into raw ones using the same filters
// the columns were projected with. ok is false when the drop changes
// nothing.
func (r *Resolver) Resolve(drag DragResult, state filter.State) (Request, bool, error) {
	if drag.Destination == nil {
		return Request{}, false, nil
	}
	dest := *drag.Destination
	if dest.ColumnID == drag.Source.ColumnID && dest.Index == drag.Source.Index {
		return Request{}, false, nil
	}

	board := r.ctrl.Board()
	from := board.GetColumn(drag.Source.ColumnID)
	if from == nil {
		return Request{}, false, &operations.NotFoundError{Kind: "column", ID: drag.Source.ColumnID}
	}
	to := board.GetColumn(dest.ColumnID)
	if to == nil {
		return Request{}, false, &operations.NotFoundError{Kind: "column", ID: dest.ColumnID}
	}

	visible := filter.VisibleIndices(board.Tasks, from.TaskIDs, state)
	if drag.Source.Index < 0 || drag.Source.Index >= len(visible) {
		return Request{}, false, &operations.NotFoundError{
			Kind: "task",
			ID:   fmt.Sprintf("%s[%d]", drag.Source.ColumnID, drag.Source.Index),
		}
	}
	fromIndex := visible[drag.Source.Index]
	if from.TaskIDs[fromIndex] != drag.TaskID {
		return Request{}, false, &operations.NotFoundError{Kind: "task", ID: drag.TaskID}
	}

	toIndex := destinationIndex(board.Tasks, without(to.TaskIDs, drag.TaskID), state, dest.Index)

	req := Request{
		TaskID:       drag.TaskID,
		FromColumnID: from.ID,
		FromIndex:    fromIndex,
		ToColumnID:   to.ID,
		ToIndex:      toIndex,
	}
	if req.FromColumnID == req.ToColumnID && req.FromIndex == req.ToIndex {
		return req, false, nil
	}
	return req, true, nil
}

// Apply resolves a drag result and performs the move
func (r *Resolver) Apply(drag DragResult, state filter.State) error {
	req, ok, err := r.Resolve(drag, state)
	if err != nil || !ok {
		return err
	}
	return r.ctrl.MoveTask(req.TaskID, req.FromColumnID, req.FromIndex, req.ToColumnID, req.ToIndex)
}

// destinationIndex maps a visible drop slot onto a raw insertion index in
// ids, which must already exclude the dragged task. Dropping before the
// n-th visible task inserts right before it; dropping past the last visible
// task inserts right after it; with nothing visible the task goes last.
func destinationIndex(tasks map[string]*models.Task, ids []string, state filter.State, visibleIndex int) int {
	visible := filter.VisibleIndices(tasks, ids, state)
	switch {
	case len(visible) == 0:
		return len(ids)
	case visibleIndex <= 0:
		return visible[0]
	case visibleIndex < len(visible):
		return visible[visibleIndex]
	default:
		return visible[len(visible)-1] + 1
	}
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
