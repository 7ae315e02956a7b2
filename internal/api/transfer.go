package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ImportResult wraps the backend's import outcome message.
type ImportResult struct {
	Message string `json:"message"`
}

// ExportToFile downloads the full backup and writes it to destPath
// as indented JSON.
func (c *Client) ExportToFile(ctx context.Context, destPath string) error {
	body, err := c.stream(ctx, "/export")
	if err != nil {
		return err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("reading export: %w", err)
	}

	// Re-indent so the exported file is human-readable.
	var payload json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("parsing export payload: %w", err)
	}
	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting export payload: %w", err)
	}

	if err := os.WriteFile(destPath, pretty, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}

// ImportFromFile reads a previously exported JSON file and posts it
// to the backend.
func (c *Client) ImportFromFile(
	ctx context.Context,
	srcPath string,
) (*ImportResult, error) {
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", srcPath, err)
	}

	var payload json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", srcPath, err)
	}

	var result ImportResult
	if err := c.post(ctx, "/import", nil, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
