package operations

import (
	"strings"

	"taskboard/internal/kanban/models"
)

// AddColumn appends an empty column and returns its id. The id is the
// trimmed title, suffixed -2, -3, ... when already taken.
func (c *Controller) AddColumn(title string) (string, error) {
	validated, err := ValidateColumnName(title)
	if err != nil {
		return "", err
	}

	id := UniqueID(validated, func(candidate string) bool {
		return c.board.GetColumn(candidate) != nil
	})

	c.board.Columns = append(c.board.Columns, models.Column{
		ID:      id,
		Title:   validated,
		TaskIDs: []string{},
	})

	c.logf("added column %s", id)
	return id, nil
}

// DeleteColumn removes a column together with every task it holds.
// Unknown ids are ignored.
func (c *Controller) DeleteColumn(columnID string) {
	index := c.board.GetColumnIndex(columnID)
	if index < 0 {
		return
	}

	column := c.board.Columns[index]
	for _, id := range column.TaskIDs {
		delete(c.board.Tasks, id)
	}

	columns := make([]models.Column, 0, len(c.board.Columns)-1)
	columns = append(columns, c.board.Columns[:index]...)
	c.board.Columns = append(columns, c.board.Columns[index+1:]...)

	c.logf("deleted column %s with %d task(s)", columnID, len(column.TaskIDs))
}

// ValidateColumnName checks if column name is valid (trim, length check)
func ValidateColumnName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return "", &ValidationError{Field: "title", Msg: "column name cannot be empty"}
	}

	if len(trimmed) > 50 {
		return "", &ValidationError{Field: "title", Msg: "column name too long (max 50 characters)"}
	}

	return trimmed, nil
}
