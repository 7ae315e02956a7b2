package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pvu/accountable/internal/model"
)

// ListAttachments fetches the attachment metadata for an activity.
func (c *Client) ListAttachments(
	ctx context.Context,
	activityID int64,
) ([]model.Attachment, error) {
	var attachments []model.Attachment
	path := fmt.Sprintf("/activities/%d/attachments", activityID)
	if err := c.get(ctx, path, nil, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// UploadAttachment uploads the file at localPath as a multipart form.
// This is the one mutating request that does not use a JSON body.
func (c *Client) UploadAttachment(
	ctx context.Context,
	activityID int64,
	localPath string,
) (*model.Attachment, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", localPath, err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(localPath))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	url := fmt.Sprintf("%s/activities/%d/attachments", c.baseURL, activityID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		return nil, fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", localPath, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, respBody)
	}

	var created model.Attachment
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("unmarshaling upload response: %w", err)
	}
	return &created, nil
}

// DownloadAttachment streams the attachment's bytes into destPath.
func (c *Client) DownloadAttachment(
	ctx context.Context,
	attachmentID int64,
	destPath string,
) error {
	body, err := c.stream(
		ctx, fmt.Sprintf("/attachments/%d/download", attachmentID),
	)
	if err != nil {
		return err
	}
	defer body.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}

	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return out.Close()
}

// DeleteAttachment removes an attachment.
func (c *Client) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	return c.del(ctx, fmt.Sprintf("/attachments/%d", attachmentID))
}
