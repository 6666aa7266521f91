package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"internhub/internal/portal"
)

const applicationsPath = "/applications"

func (c *Client) ListApplications(ctx context.Context, q portal.ListQuery) (portal.Page[portal.Application], error) {
	return list[portal.Application](ctx, c, applicationsPath, q)
}

func (c *Client) GetApplication(ctx context.Context, id string) (portal.Application, error) {
	return get[portal.Application](ctx, c, applicationsPath, id)
}

// Apply registers the logged-in student for a program.
func (c *Client) Apply(ctx context.Context, in portal.ApplyInput) (portal.Application, error) {
	if strings.TrimSpace(in.ProgramID) == "" {
		return portal.Application{}, fmt.Errorf("%w: program_id is required", ErrInvalidInput)
	}
	return send[portal.Application](ctx, c, http.MethodPost, applicationsPath, in)
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id string, review portal.ApplicationReview) (portal.Application, error) {
	path, err := resourcePath(applicationsPath, id)
	if err != nil {
		return portal.Application{}, err
	}
	return send[portal.Application](ctx, c, http.MethodPatch, path+"/status", review)
}
