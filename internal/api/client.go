package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Error is a server-rejected request. The backend reports failures as a
// JSON body {"detail": "..."}; Detail carries that message verbatim so
// callers can surface it to the user unchanged.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}

// Detail extracts the user-facing message from err. For server-rejected
// requests this is the backend's detail field verbatim; transport and
// parse failures get a generic message with the underlying error.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Unknown error: " + err.Error()
}

// Client is a thin HTTP client for the accountability backend REST API.
// It handles JSON marshaling and error payload extraction. Failed
// requests are never retried; the user retries manually.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend rooted at baseURL
// (e.g. http://127.0.0.1:8000).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the backend root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs an HTTP GET request and unmarshals the JSON response.
func (c *Client) get(
	ctx context.Context,
	path string,
	query url.Values,
	result interface{},
) error {
	return c.do(ctx, http.MethodGet, path, query, nil, result)
}

// post performs an HTTP POST request with an optional JSON body.
func (c *Client) post(
	ctx context.Context,
	path string,
	query url.Values,
	body interface{},
	result interface{},
) error {
	return c.do(ctx, http.MethodPost, path, query, body, result)
}

// put performs an HTTP PUT request with a JSON body.
func (c *Client) put(
	ctx context.Context,
	path string,
	body interface{},
	result interface{},
) error {
	return c.do(ctx, http.MethodPut, path, nil, body, result)
}

// del performs an HTTP DELETE request.
func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do is the core HTTP method that builds the request and handles JSON
// (de)serialization and error payload extraction.
func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body interface{},
	result interface{},
) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request %s %s: %w", method, path, err)
	}

	respBody, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("reading response body: %w", readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, respBody)
	}

	// No content to parse (e.g. 204).
	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf(
			"unmarshaling response from %s %s: %w", method, path, err,
		)
	}

	return nil
}

// stream performs a GET request and returns the raw response body for
// callers that consume bytes directly (attachment download, export).
// The caller must close the returned reader.
func (c *Client) stream(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+path, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request GET %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, decodeError(resp.StatusCode, respBody)
	}

	return resp.Body, nil
}

// decodeError turns a non-success response into an *Error, extracting
// the backend's detail field when present.
func decodeError(status int, body []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
		return &Error{StatusCode: status, Detail: payload.Detail}
	}
	return &Error{StatusCode: status, Detail: strings.TrimSpace(string(body))}
}
