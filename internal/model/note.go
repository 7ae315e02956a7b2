package model

import "time"

// Note is a free-text annotation on an activity. Notes are append-only
// from the client's point of view.
type Note struct {
	ID         int64     `json:"id"`
	ActivityID int64     `json:"activity_id"`
	Text       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}
