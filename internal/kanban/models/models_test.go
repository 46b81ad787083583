package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want *Label
		ok   bool
	}{
		{"", nil, true},
		{"none", nil, true},
		{"bug", LabelPtr(LabelBug), true},
		{" Feature ", LabelPtr(LabelFeature), true},
		{"IMPROVEMENT", LabelPtr(LabelImprovement), true},
		{"chore", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLabel(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSameLabel(t *testing.T) {
	assert.True(t, SameLabel(nil, nil))
	assert.True(t, SameLabel(LabelPtr(LabelBug), LabelPtr(LabelBug)))
	assert.False(t, SameLabel(LabelPtr(LabelBug), nil))
	assert.False(t, SameLabel(nil, LabelPtr(LabelUrgent)))
	assert.False(t, SameLabel(LabelPtr(LabelBug), LabelPtr(LabelUrgent)))
	assert.Equal(t, "", LabelString(nil))
	assert.Equal(t, "Urgent", LabelString(LabelPtr(LabelUrgent)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2025-07-28")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2025-07-28", FormatDate(d))

	_, err = ParseDate("28/07/2025")
	assert.Error(t, err)
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, 7, 28, 9, 0, 0, 0, time.Local)
	b := time.Date(2025, 7, 28, 17, 30, 0, 0, time.Local)
	c := time.Date(2025, 7, 29, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDate(nil, nil))
	assert.True(t, SameDate(&a, &b))
	assert.False(t, SameDate(&a, &c))
	assert.False(t, SameDate(&a, nil))
}

func TestTaskClone(t *testing.T) {
	due := time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local)
	task := Task{
		ID:       "1",
		Label:    LabelPtr(LabelBug),
		DueDate:  &due,
		Activity: []ActivityEntry{{Kind: ActivityCreated, Detail: "Task created"}},
	}

	clone := task.Clone()
	clone.Activity[0].Detail = "changed"
	*clone.Label = LabelFeature
	*clone.DueDate = due.AddDate(0, 0, 1)

	assert.Equal(t, "Task created", task.Activity[0].Detail)
	assert.Equal(t, LabelBug, *task.Label)
	assert.Equal(t, "2025-08-01", task.DueDateString())
}

func TestColumnHelpers(t *testing.T) {
	board := NewBoard("b",
		Column{ID: "todo", Title: "To-Do", TaskIDs: []string{"1", "2"}},
		Column{ID: "done", Title: "Done", TaskIDs: []string{"3"}},
	)

	assert.Equal(t, 1, board.GetColumnIndex("done"))
	assert.Equal(t, -1, board.GetColumnIndex("nope"))
	assert.Nil(t, board.GetColumn("nope"))

	col, pos := board.ColumnOf("2")
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, pos)
	col, pos = board.ColumnOf("9")
	assert.Equal(t, -1, col)
	assert.Equal(t, -1, pos)

	clone := board.Columns[0].Clone()
	clone.TaskIDs[0] = "x"
	assert.Equal(t, "1", board.Columns[0].TaskIDs[0])

	ok, _ := board.CanDeleteColumn(0)
	assert.True(t, ok)
	ok, msg := board.CanDeleteColumn(5)
	assert.False(t, ok)
	assert.Equal(t, "invalid column index", msg)
}

func TestActivityEntryTimestamp(t *testing.T) {
	e := ActivityEntry{Timestamp: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2025-07-20T10:00:00Z", e.ISOTimestamp())
}
