package api

import "context"

// BatchResult is the backend's aggregate outcome message for a batch
// operation. Per-item success/failure is not reported.
type BatchResult struct {
	Message string `json:"message"`
}

// batchCategoryRequest is the body for batch category reassignment.
type batchCategoryRequest struct {
	ActivityIDs []int64 `json:"activity_ids"`
	Category    string  `json:"category"`
}

// BatchComplete marks every listed activity as completed.
func (c *Client) BatchComplete(
	ctx context.Context,
	ids []int64,
) (*BatchResult, error) {
	var result BatchResult
	err := c.post(ctx, "/activities/batch/complete", nil, ids, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// BatchDelete removes every listed activity.
func (c *Client) BatchDelete(
	ctx context.Context,
	ids []int64,
) (*BatchResult, error) {
	var result BatchResult
	err := c.post(ctx, "/activities/batch/delete", nil, ids, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// BatchUpdateCategory moves every listed activity into category.
func (c *Client) BatchUpdateCategory(
	ctx context.Context,
	ids []int64,
	category string,
) (*BatchResult, error) {
	var result BatchResult
	body := batchCategoryRequest{ActivityIDs: ids, Category: category}
	err := c.post(ctx, "/activities/batch/update-category", nil, body, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
