package api

import (
	"context"
	"fmt"

	"github.com/pvu/accountable/internal/model"
)

// subtaskCreateRequest is the body for adding a subtask.
type subtaskCreateRequest struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

// subtaskUpdateRequest is the body for toggling a subtask's completion.
type subtaskUpdateRequest struct {
	IsCompleted bool `json:"is_completed"`
}

// ListSubtasks fetches the subtasks of an activity.
func (c *Client) ListSubtasks(
	ctx context.Context,
	activityID int64,
) ([]model.Subtask, error) {
	var subtasks []model.Subtask
	path := fmt.Sprintf("/activities/%d/subtasks", activityID)
	if err := c.get(ctx, path, nil, &subtasks); err != nil {
		return nil, err
	}
	return subtasks, nil
}

// AddSubtask appends a new subtask to an activity at the given position.
func (c *Client) AddSubtask(
	ctx context.Context,
	activityID int64,
	title string,
	order int,
) (*model.Subtask, error) {
	var created model.Subtask
	path := fmt.Sprintf("/activities/%d/subtasks", activityID)
	body := subtaskCreateRequest{Title: title, Order: order}
	if err := c.post(ctx, path, nil, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SetSubtaskCompleted toggles a subtask's completion state.
func (c *Client) SetSubtaskCompleted(
	ctx context.Context,
	subtaskID int64,
	completed bool,
) error {
	path := fmt.Sprintf("/subtasks/%d", subtaskID)
	return c.put(ctx, path, subtaskUpdateRequest{IsCompleted: completed}, nil)
}

// DeleteSubtask removes a subtask.
func (c *Client) DeleteSubtask(ctx context.Context, subtaskID int64) error {
	return c.del(ctx, fmt.Sprintf("/subtasks/%d", subtaskID))
}
