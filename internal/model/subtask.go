package model

// Subtask is a checklist entry belonging to exactly one activity.
type Subtask struct {
	ID          int64  `json:"id"`
	ActivityID  int64  `json:"activity_id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
	Order       int    `json:"order"`
}
