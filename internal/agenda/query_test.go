package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/kanban/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func testBoard() *models.Board {
	board := models.NewBoard("test",
		models.Column{ID: "todo", Title: "To-Do", TaskIDs: []string{"1", "2", "3"}},
		models.Column{ID: "done", Title: "Done", TaskIDs: []string{"4", "5"}},
	)
	board.Tasks["1"] = &models.Task{ID: "1", Title: "Write docs", Status: "todo", DueDate: datePtr(2025, 7, 28)}
	board.Tasks["2"] = &models.Task{ID: "2", Title: "No date", Status: "todo"}
	board.Tasks["3"] = &models.Task{ID: "3", Title: "Ancient", Status: "todo", DueDate: datePtr(2025, 7, 1)}
	board.Tasks["4"] = &models.Task{ID: "4", Title: "Audit", Status: "done", DueDate: datePtr(2025, 7, 28)}
	board.Tasks["5"] = &models.Task{ID: "5", Title: "Next week", Status: "done", DueDate: datePtr(2025, 8, 4)}
	return board
}

func TestDayRange(t *testing.T) {
	dr := DayRange(time.Date(2026, 2, 6, 15, 4, 0, 0, time.Local))
	assert.Equal(t, date(2026, 2, 6), dr.Start)
	assert.Equal(t, 6, dr.End.Day())
	assert.True(t, dr.Contains(time.Date(2026, 2, 6, 23, 59, 0, 0, time.Local)))
	assert.False(t, dr.Contains(date(2026, 2, 7)))
}

func TestNextDaysRange(t *testing.T) {
	dr := NextDaysRange(date(2025, 12, 29), 7)
	assert.Equal(t, date(2025, 12, 29), dr.Start)
	assert.Equal(t, 2026, dr.End.Year())
	assert.Equal(t, 4, dr.End.Day())
}

func TestWeek(t *testing.T) {
	today := time.Date(2025, 7, 28, 9, 0, 0, 0, time.Local)

	week := Week(testBoard(), today)

	require.Len(t, week, WeekDays)
	assert.Equal(t, "2025-07-28", week[0].DateString())
	assert.Equal(t, "2025-08-03", week[6].DateString())
	assert.True(t, week[0].IsToday(today))
	assert.False(t, week[1].IsToday(today))

	require.Len(t, week[0].Items, 2)
	assert.Equal(t, "Audit", week[0].Items[0].Task.Title, "sorted by title")
	assert.Equal(t, "Done", week[0].Items[0].ColumnTitle)
	assert.Equal(t, "Write docs", week[0].Items[1].Task.Title)

	for _, bucket := range week[1:] {
		assert.Empty(t, bucket.Items, bucket.DateString())
	}
}

func TestOverdue(t *testing.T) {
	overdue := Overdue(testBoard(), date(2025, 7, 28))
	require.Len(t, overdue, 1)
	assert.Equal(t, "Ancient", overdue[0].Task.Title)
}

func TestHasDueOrOverdue(t *testing.T) {
	board := testBoard()
	assert.True(t, HasDueOrOverdue(board, date(2025, 7, 28)))

	board.Columns[0].TaskIDs = []string{"2"}
	delete(board.Tasks, "1")
	delete(board.Tasks, "3")
	board.Columns[1].TaskIDs = []string{"5"}
	delete(board.Tasks, "4")
	assert.False(t, HasDueOrOverdue(board, date(2025, 7, 28)))
	assert.True(t, HasDueOrOverdue(board, date(2025, 8, 5)))
}

func TestDueOn(t *testing.T) {
	assert.Len(t, DueOn(testBoard(), date(2025, 7, 28)), 2)
	assert.Empty(t, DueOn(testBoard(), date(2025, 7, 29)))
}
