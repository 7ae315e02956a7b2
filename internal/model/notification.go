package model

import "time"

// Notification kinds recorded in the local log.
const (
	NotificationKindMissed = "missed"
	NotificationKindEvent  = "event"
)

// Notification is one alert that passed the notification gate, recorded
// locally so the user can review what fired.
type Notification struct {
	// ID is the locally generated identifier.
	ID string `json:"id"`

	// Kind is one of the NotificationKind* constants.
	Kind string `json:"kind"`

	// Title is the notification headline shown to the user.
	Title string `json:"title"`

	// Body is the notification body text.
	Body string `json:"body"`

	// Read indicates whether the user has reviewed this notification.
	Read bool `json:"read"`

	// CreatedAt is when the notification fired.
	CreatedAt time.Time `json:"created_at"`
}
