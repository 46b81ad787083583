package models

// Column is a named, ordered bucket of task ids
type Column struct {
	ID      string   // Unique column id, also the status of its member tasks
	Title   string   // Display title
	TaskIDs []string // Member task ids in render order
}

// Board holds the task mapping and the ordered columns
type Board struct {
	Name    string
	Tasks   map[string]*Task
	Columns []Column
}

// NewBoard returns an empty board with the given columns
func NewBoard(name string, columns ...Column) *Board {
	return &Board{
		Name:    name,
		Tasks:   make(map[string]*Task),
		Columns: columns,
	}
}

// GetColumn returns a pointer to the column with the given id
func (b *Board) GetColumn(id string) *Column {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i]
		}
	}
	return nil
}

// GetColumnIndex returns the index of the column with the given id
func (b *Board) GetColumnIndex(id string) int {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return i
		}
	}
	return -1
}

// ColumnOf returns the index of the column holding taskID and the task's
// position within it, or (-1, -1).
func (b *Board) ColumnOf(taskID string) (int, int) {
	for i, col := range b.Columns {
		if pos := col.IndexOf(taskID); pos >= 0 {
			return i, pos
		}
	}
	return -1, -1
}

// CanDeleteColumn returns (bool, errorMessage)
func (b *Board) CanDeleteColumn(index int) (bool, string) {
	if index < 0 || index >= len(b.Columns) {
		return false, "invalid column index"
	}

	if len(b.Columns) <= 1 {
		return false, "cannot delete the last column"
	}

	return true, ""
}

// IndexOf returns the position of taskID in the column, or -1
func (c Column) IndexOf(taskID string) int {
	for i, id := range c.TaskIDs {
		if id == taskID {
			return i
		}
	}
	return -1
}

// Clone returns a copy of the column that does not share its id slice
func (c Column) Clone() Column {
	ids := make([]string, len(c.TaskIDs))
	copy(ids, c.TaskIDs)
	c.TaskIDs = ids
	return c
}
