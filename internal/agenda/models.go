package agenda

import (
	"time"

	"taskboard/internal/kanban/models"
)

// AgendaItem wraps a task with the column it currently sits in
type AgendaItem struct {
	Date        time.Time
	Task        models.Task
	ColumnID    string
	ColumnTitle string
}

// DateBucket groups agenda items due on one day
type DateBucket struct {
	Date  time.Time
	Items []AgendaItem
}

// IsToday reports whether the bucket is for the same day as now
func (b DateBucket) IsToday(now time.Time) bool {
	return sameDay(b.Date, now)
}

// DateString returns the bucket's date as YYYY-MM-DD
func (b DateBucket) DateString() string {
	return b.Date.Format(models.DateLayout)
}

// DateRange represents a range of dates for querying
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
