// Package activity appends audit entries to a task's history.
package activity

import (
	"time"

	"taskboard/internal/kanban/models"
)

// Recorder stamps and appends activity entries
type Recorder struct {
	now func() time.Time
}

// NewRecorder returns a recorder using clock, or time.Now when clock is nil
func NewRecorder(clock func() time.Time) *Recorder {
	if clock == nil {
		clock = time.Now
	}
	return &Recorder{now: clock}
}

// Now returns the recorder's current time
func (r *Recorder) Now() time.Time {
	return r.now()
}

// Append adds an entry to the end of the task's history. The timestamp never
// precedes the task's latest entry, even if the clock steps backwards.
func (r *Recorder) Append(task *models.Task, kind models.ActivityKind, detail, user string) models.ActivityEntry {
	ts := r.now()
	if n := len(task.Activity); n > 0 {
		if last := task.Activity[n-1].Timestamp; ts.Before(last) {
			ts = last
		}
	}

	entry := models.ActivityEntry{
		Timestamp: ts,
		Kind:      kind,
		Detail:    detail,
		User:      user,
	}
	task.Activity = append(task.Activity, entry)
	return entry
}

// Actor returns the acting user for an entry: the assignee, or the system
// sentinel when nobody is assigned.
func Actor(assigneeID string) string {
	if assigneeID == "" {
		return models.SystemUser
	}
	return assigneeID
}
