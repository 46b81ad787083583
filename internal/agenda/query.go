package agenda

import (
	"sort"
	"time"

	"taskboard/internal/kanban/models"
)

// WeekDays is the length of the week-at-a-glance window
const WeekDays = 7

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DayRange returns a DateRange for a single day
func DayRange(date time.Time) DateRange {
	start := startOfDay(date)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return DateRange{Start: start, End: end}
}

// NextDaysRange returns the range covering n days starting at date
func NextDaysRange(date time.Time, n int) DateRange {
	start := startOfDay(date)
	end := start.AddDate(0, 0, n).Add(-time.Nanosecond)
	return DateRange{Start: start, End: end}
}

// items collects every task with a due date, in board order
func items(board *models.Board) []AgendaItem {
	var out []AgendaItem
	for _, col := range board.Columns {
		for _, id := range col.TaskIDs {
			task, ok := board.Tasks[id]
			if !ok || task.DueDate == nil {
				continue
			}
			out = append(out, AgendaItem{
				Date:        startOfDay(*task.DueDate),
				Task:        task.Clone(),
				ColumnID:    col.ID,
				ColumnTitle: col.Title,
			})
		}
	}
	return out
}

// Week returns one bucket per day for the seven days starting today,
// including empty days. Items within a day are sorted by title.
func Week(board *models.Board, today time.Time) []DateBucket {
	dateRange := NextDaysRange(today, WeekDays)

	buckets := make([]DateBucket, WeekDays)
	for i := range buckets {
		buckets[i].Date = dateRange.Start.AddDate(0, 0, i)
	}

	for _, item := range items(board) {
		if !dateRange.Contains(item.Date) {
			continue
		}
		for i := range buckets {
			if sameDay(buckets[i].Date, item.Date) {
				buckets[i].Items = append(buckets[i].Items, item)
				break
			}
		}
	}

	for i := range buckets {
		sort.SliceStable(buckets[i].Items, func(a, b int) bool {
			return buckets[i].Items[a].Task.Title < buckets[i].Items[b].Task.Title
		})
	}
	return buckets
}

// DueOn returns the tasks due on the given day
func DueOn(board *models.Board, day time.Time) []AgendaItem {
	var out []AgendaItem
	for _, item := range items(board) {
		if sameDay(item.Date, day) {
			out = append(out, item)
		}
	}
	return out
}

// Overdue returns tasks due strictly before today, oldest first
func Overdue(board *models.Board, today time.Time) []AgendaItem {
	cutoff := startOfDay(today)
	var out []AgendaItem
	for _, item := range items(board) {
		if item.Date.Before(cutoff) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// HasDueOrOverdue reports whether any task is due today or earlier
func HasDueOrOverdue(board *models.Board, today time.Time) bool {
	return len(DueOn(board, today)) > 0 || len(Overdue(board, today)) > 0
}
