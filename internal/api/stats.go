package api

import (
	"context"

	"github.com/pvu/accountable/internal/model"
)

// GetStats fetches the aggregate progress summary.
func (c *Client) GetStats(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	if err := c.get(ctx, "/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetAchievements fetches the unlocked achievement list.
func (c *Client) GetAchievements(
	ctx context.Context,
) (*model.AchievementList, error) {
	var list model.AchievementList
	if err := c.get(ctx, "/achievements", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
