package client

import (
	"context"
	"net/http"

	"internhub/internal/portal"
)

const mentorsPath = "/mentors"

func (c *Client) ListMentors(ctx context.Context, q portal.ListQuery) (portal.Page[portal.Mentor], error) {
	return list[portal.Mentor](ctx, c, mentorsPath, q)
}

func (c *Client) GetMentor(ctx context.Context, id string) (portal.Mentor, error) {
	return get[portal.Mentor](ctx, c, mentorsPath, id)
}

func (c *Client) CreateMentor(ctx context.Context, in portal.MentorInput) (portal.Mentor, error) {
	return send[portal.Mentor](ctx, c, http.MethodPost, mentorsPath, in)
}

func (c *Client) UpdateMentor(ctx context.Context, id string, in portal.MentorInput) (portal.Mentor, error) {
	path, err := resourcePath(mentorsPath, id)
	if err != nil {
		return portal.Mentor{}, err
	}
	return send[portal.Mentor](ctx, c, http.MethodPut, path, in)
}

func (c *Client) DeleteMentor(ctx context.Context, id string) error {
	path, err := resourcePath(mentorsPath, id)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
	return err
}
