package models

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for due dates
const DateLayout = "2006-01-02"

// Label is one of the fixed task labels
type Label string

const (
	LabelBug         Label = "Bug"
	LabelFeature     Label = "Feature"
	LabelUrgent      Label = "Urgent"
	LabelImprovement Label = "Improvement"
)

// Labels lists every valid label in display order
var Labels = []Label{LabelBug, LabelFeature, LabelUrgent, LabelImprovement}

// ParseLabel resolves a label name case-insensitively. An empty or "none"
// name yields nil.
func ParseLabel(s string) (*Label, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, true
	}
	for _, l := range Labels {
		if strings.EqualFold(string(l), s) {
			label := l
			return &label, true
		}
	}
	return nil, false
}

// LabelPtr returns a pointer to l
func LabelPtr(l Label) *Label {
	return &l
}

// SameLabel reports whether two optional labels are equal
func SameLabel(a, b *Label) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// LabelString renders an optional label, empty when absent
func LabelString(l *Label) string {
	if l == nil {
		return ""
	}
	return string(*l)
}

// Task is a unit of work on the board
type Task struct {
	ID          string
	Title       string
	Description string
	Status      string     // Id of the column holding the task
	Label       *Label     // nil = no label
	AssigneeID  string     // Empty = unassigned
	DueDate     *time.Time // Calendar date, nil = none
	CreatedAt   time.Time
	Activity    []ActivityEntry
}

// DueDateString returns the due date as YYYY-MM-DD, or "" when unset
func (t Task) DueDateString() string {
	return FormatDate(t.DueDate)
}

// Clone returns a copy of the task with its own activity slice
func (t Task) Clone() Task {
	activity := make([]ActivityEntry, len(t.Activity))
	copy(activity, t.Activity)
	t.Activity = activity
	if t.Label != nil {
		t.Label = LabelPtr(*t.Label)
	}
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}

// ParseDate parses a YYYY-MM-DD string. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FormatDate renders an optional date as YYYY-MM-DD
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}

// SameDate reports whether two optional dates fall on the same calendar day
func SameDate(a, b *time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}
