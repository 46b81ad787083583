package models

import "time"

// ActivityKind tags what an activity entry records
type ActivityKind string

const (
	ActivityCreated        ActivityKind = "created"
	ActivityEdited         ActivityKind = "edited"
	ActivityMoved          ActivityKind = "moved"
	ActivityAssigned       ActivityKind = "assigned"
	ActivityLabelChanged   ActivityKind = "labelChanged"
	ActivityDueDateChanged ActivityKind = "dueDateChanged"
)

// SystemUser attributes entries that have no acting user
const SystemUser = "system"

// ActivityEntry is an immutable audit record of a change to a task
type ActivityEntry struct {
	Timestamp time.Time
	Kind      ActivityKind
	Detail    string
	User      string
}

// ISOTimestamp renders the entry's timestamp as an RFC 3339 instant in UTC
func (e ActivityEntry) ISOTimestamp() string {
	return e.Timestamp.UTC().Format(time.RFC3339Nano)
}
