package api

import (
	"context"
	"fmt"

	"github.com/pvu/accountable/internal/model"
)

// noteCreateRequest is the body for appending a note.
type noteCreateRequest struct {
	Note string `json:"note"`
}

// ListNotes fetches the notes attached to an activity.
func (c *Client) ListNotes(
	ctx context.Context,
	activityID int64,
) ([]model.Note, error) {
	var notes []model.Note
	path := fmt.Sprintf("/activities/%d/notes", activityID)
	if err := c.get(ctx, path, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// AddNote appends a note to an activity.
func (c *Client) AddNote(
	ctx context.Context,
	activityID int64,
	text string,
) (*model.Note, error) {
	var created model.Note
	path := fmt.Sprintf("/activities/%d/notes", activityID)
	if err := c.post(ctx, path, nil, noteCreateRequest{Note: text}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
