package api

import (
	"context"
	"fmt"

	"github.com/pvu/accountable/internal/model"
)

// ListHistory fetches the read-only audit log of an activity.
func (c *Client) ListHistory(
	ctx context.Context,
	activityID int64,
) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	path := fmt.Sprintf("/activities/%d/history", activityID)
	if err := c.get(ctx, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
