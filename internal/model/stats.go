package model

// CategoryCount is one row of the per-category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PriorityCount is one row of the per-priority breakdown.
type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

// Stats is the aggregate progress summary computed by the backend.
type Stats struct {
	TotalActivities     int             `json:"total_activities"`
	CompletedActivities int             `json:"completed_activities"`
	PendingActivities   int             `json:"pending_activities"`
	CompletionRate      float64         `json:"completion_rate"`
	CurrentStreak       int             `json:"current_streak"`
	LongestStreak       int             `json:"longest_streak"`
	GoalReached         bool            `json:"goal_reached"`
	CategoryBreakdown   []CategoryCount `json:"category_breakdown"`
	PriorityBreakdown   []PriorityCount `json:"priority_breakdown"`
}

// Achievement is one unlocked milestone.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AchievementList wraps the backend's achievements payload.
type AchievementList struct {
	Achievements []Achievement `json:"achievements"`
}
