package model

import "time"

// Actions recorded by the backend audit log.
const (
	ActionCreated             = "created"
	ActionUpdated             = "updated"
	ActionCompleted           = "completed"
	ActionDeleted             = "deleted"
	ActionSnoozed             = "snoozed"
	ActionSubtaskAdded        = "subtask_added"
	ActionSubtaskCompleted    = "subtask_completed"
	ActionCreatedFromTemplate = "created_from_template"
)

// HistoryEntry is one read-only audit record for an activity.
// FieldName/OldValue/NewValue are only populated for field-level updates.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	ActivityID int64     `json:"activity_id"`
	Action     string    `json:"action"`
	FieldName  *string   `json:"field_name,omitempty"`
	OldValue   *string   `json:"old_value,omitempty"`
	NewValue   *string   `json:"new_value,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
