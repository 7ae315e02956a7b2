package api

import (
	"context"
	"fmt"
	"time"

	"github.com/pvu/accountable/internal/model"
)

// TemplateCreate is the request body for creating a template.
type TemplateCreate struct {
	Name                string `json:"name"`
	TitleTemplate       string `json:"title_template"`
	DescriptionTemplate string `json:"description_template"`
	Priority            string `json:"priority"`
	Category            string `json:"category"`
}

// templateUseRequest is the body for stamping an activity from a template.
type templateUseRequest struct {
	Deadline time.Time `json:"deadline"`
}

// ListTemplates fetches all activity templates.
func (c *Client) ListTemplates(ctx context.Context) ([]model.Template, error) {
	var templates []model.Template
	if err := c.get(ctx, "/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// CreateTemplate creates a new activity template.
func (c *Client) CreateTemplate(
	ctx context.Context,
	req TemplateCreate,
) (*model.Template, error) {
	var created model.Template
	if err := c.post(ctx, "/templates", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteTemplate removes a template.
func (c *Client) DeleteTemplate(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/templates/%d", id))
}

// CreateActivityFromTemplate stamps a new activity out of a template
// with the given deadline.
func (c *Client) CreateActivityFromTemplate(
	ctx context.Context,
	templateID int64,
	deadline time.Time,
) (*model.Activity, error) {
	var created model.Activity
	path := fmt.Sprintf("/templates/%d/create-activity", templateID)
	body := templateUseRequest{Deadline: deadline}
	if err := c.post(ctx, path, nil, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
