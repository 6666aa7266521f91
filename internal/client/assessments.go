package client

import (
	"context"
	"net/http"

	"internhub/internal/portal"
)

const assessmentsPath = "/assessments"

func (c *Client) ListAssessments(ctx context.Context, q portal.ListQuery) (portal.Page[portal.Assessment], error) {
	return list[portal.Assessment](ctx, c, assessmentsPath, q)
}

func (c *Client) GetAssessment(ctx context.Context, id string) (portal.Assessment, error) {
	return get[portal.Assessment](ctx, c, assessmentsPath, id)
}

func (c *Client) UpdateAssessment(ctx context.Context, id string, in portal.AssessmentInput) (portal.Assessment, error) {
	path, err := resourcePath(assessmentsPath, id)
	if err != nil {
		return portal.Assessment{}, err
	}
	return send[portal.Assessment](ctx, c, http.MethodPut, path, in)
}
