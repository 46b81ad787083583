package operations

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/kanban/activity"
	"taskboard/internal/kanban/models"
	"taskboard/internal/logs"
	"taskboard/internal/users"
)

// Controller owns a board and is the only writer of its tasks and columns.
// Each command validates fully before its first write, so a failed command
// leaves the board untouched.
type Controller struct {
	board    *models.Board
	recorder *activity.Recorder
	newID    func() string
	users    *users.Directory
}

// Option configures a Controller
type Option func(*Controller)

// WithClock sets the clock used for creation times and activity entries
func WithClock(clock func() time.Time) Option {
	return func(c *Controller) {
		c.recorder = activity.NewRecorder(clock)
	}
}

// WithIDGenerator replaces the default uuid task id generator
func WithIDGenerator(gen func() string) Option {
	return func(c *Controller) {
		c.newID = gen
	}
}

// WithUsers enables assignee validation against a user directory
func WithUsers(dir *users.Directory) Option {
	return func(c *Controller) {
		c.users = dir
	}
}

// NewController takes ownership of board after checking its consistency and,
// when WithUsers is given, that every assignee is a known user
func NewController(board *models.Board, opts ...Option) (*Controller, error) {
	if board == nil {
		board = models.NewBoard("")
	}
	if board.Tasks == nil {
		board.Tasks = make(map[string]*models.Task)
	}

	c := &Controller{
		board:    board,
		recorder: activity.NewRecorder(nil),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := CheckConsistency(board); err != nil {
		return nil, err
	}
	if err := c.checkAssignees(); err != nil {
		return nil, err
	}
	return c, nil
}

// checkAssignees rejects tasks assigned to users missing from the directory.
// Without a directory every assignee is accepted.
func (c *Controller) checkAssignees() error {
	if c.users == nil {
		return nil
	}
	for _, col := range c.board.Columns {
		for _, id := range col.TaskIDs {
			task := c.board.Tasks[id]
			if task.AssigneeID != "" && !c.users.Exists(task.AssigneeID) {
				return fmt.Errorf("task %q: %w", id, &ValidationError{
					Field: "assignee",
					Msg:   fmt.Sprintf("unknown user %q", task.AssigneeID),
				})
			}
		}
	}
	return nil
}

// Board exposes the owned board for read-only projections
func (c *Controller) Board() *models.Board {
	return c.board
}

// Columns returns a copy of the columns in order
func (c *Controller) Columns() []models.Column {
	out := make([]models.Column, len(c.board.Columns))
	for i, col := range c.board.Columns {
		out[i] = col.Clone()
	}
	return out
}

// Tasks returns a copy of the task mapping
func (c *Controller) Tasks() map[string]models.Task {
	out := make(map[string]models.Task, len(c.board.Tasks))
	for id, t := range c.board.Tasks {
		out[id] = t.Clone()
	}
	return out
}

// Task returns a copy of a single task
func (c *Controller) Task(id string) (models.Task, bool) {
	t, ok := c.board.Tasks[id]
	if !ok {
		return models.Task{}, false
	}
	return t.Clone(), true
}

// Column returns a copy of a single column
func (c *Controller) Column(id string) (models.Column, bool) {
	col := c.board.GetColumn(id)
	if col == nil {
		return models.Column{}, false
	}
	return col.Clone(), true
}

// ColumnCount returns the number of columns
func (c *Controller) ColumnCount() int {
	return len(c.board.Columns)
}

// CanDeleteColumn reports whether the UI should offer deleting the column.
// DeleteColumn itself does not enforce this.
func (c *Controller) CanDeleteColumn(id string) bool {
	ok, _ := c.board.CanDeleteColumn(c.board.GetColumnIndex(id))
	return ok
}

// Check verifies the board invariants
func (c *Controller) Check() error {
	return CheckConsistency(c.board)
}

func (c *Controller) logf(format string, args ...any) {
	logs.Logger.Debugf(format, args...)
}
