package model

import "time"

// Status values reported by the backend for an activity.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusMissed    = "missed"
)

// Priority levels accepted by the backend.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Categories accepted by the backend.
const (
	CategoryGeneral   = "general"
	CategoryWork      = "work"
	CategoryPersonal  = "personal"
	CategoryHealth    = "health"
	CategoryFinance   = "finance"
	CategoryEducation = "education"
	CategoryOther     = "other"
)

// Categories lists every category in the order selectors display them.
var Categories = []string{
	CategoryGeneral, CategoryWork, CategoryPersonal,
	CategoryHealth, CategoryFinance, CategoryEducation, CategoryOther,
}

// Activity is a trackable task with a deadline, owned by the backend.
// The client only ever holds a transient, refreshable copy.
type Activity struct {
	// ID is the backend-assigned identifier.
	ID int64 `json:"id"`

	// Title is the short human-readable summary.
	Title string `json:"title"`

	// Description is the optional long-form body.
	Description string `json:"description"`

	// Deadline is the absolute instant the activity is due.
	Deadline time.Time `json:"deadline"`

	// Priority is one of the Priority* constants.
	Priority string `json:"priority"`

	// Category is one of the Category* constants.
	Category string `json:"category"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// IsRecurring marks activities that repeat on a pattern.
	IsRecurring bool `json:"is_recurring"`

	// RecurrencePattern describes how the activity repeats, when recurring.
	RecurrencePattern *string `json:"recurrence_pattern,omitempty"`

	// NotificationMinutes is the reminder lead time requested at creation.
	NotificationMinutes int `json:"notification_minutes"`

	// EstimatedMinutes is the optional effort estimate.
	EstimatedMinutes *int `json:"estimated_minutes,omitempty"`

	// CreatedAt is when the activity was created on the backend.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is set once the activity has been completed.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
