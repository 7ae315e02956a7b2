package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pvu/accountable/internal/model"
)

// ActivityCreate is the request body for creating an activity.
// Deadline must already be an absolute instant; callers convert local
// wall-clock input before building this value.
type ActivityCreate struct {
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Deadline            time.Time `json:"deadline"`
	Priority            string    `json:"priority"`
	Category            string    `json:"category"`
	NotificationMinutes int       `json:"notification_minutes"`
	IsRecurring         bool      `json:"is_recurring"`
	RecurrencePattern   *string   `json:"recurrence_pattern"`
}

// ActivityUpdate is the request body for editing an activity.
type ActivityUpdate struct {
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Deadline            time.Time `json:"deadline"`
	Priority            string    `json:"priority"`
	Category            string    `json:"category"`
	NotificationMinutes int       `json:"notification_minutes"`
	EstimatedMinutes    int       `json:"estimated_minutes"`
}

// ListActivities fetches one page of activities matching the query.
func (c *Client) ListActivities(
	ctx context.Context,
	q ActivityQuery,
) ([]model.Activity, error) {
	var activities []model.Activity
	if err := c.get(ctx, "/activities", q.Values(), &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// CreateActivity creates a new activity and returns the backend's copy.
func (c *Client) CreateActivity(
	ctx context.Context,
	req ActivityCreate,
) (*model.Activity, error) {
	var created model.Activity
	if err := c.post(ctx, "/activities", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateActivity replaces the editable fields of an existing activity.
func (c *Client) UpdateActivity(
	ctx context.Context,
	id int64,
	req ActivityUpdate,
) (*model.Activity, error) {
	var updated model.Activity
	path := fmt.Sprintf("/activities/%d", id)
	if err := c.put(ctx, path, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CompleteActivity marks a pending activity as completed.
func (c *Client) CompleteActivity(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/activities/%d/complete", id)
	return c.post(ctx, path, nil, nil, nil)
}

// DeleteActivity removes an activity.
func (c *Client) DeleteActivity(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/activities/%d", id))
}

// SnoozeActivity pushes an activity's deadline forward by the given
// number of minutes.
func (c *Client) SnoozeActivity(
	ctx context.Context,
	id int64,
	minutes int,
) error {
	q := url.Values{}
	q.Set("minutes", strconv.Itoa(minutes))
	path := fmt.Sprintf("/activities/%d/snooze", id)
	return c.post(ctx, path, q, nil, nil)
}
