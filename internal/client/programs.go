package client

import (
	"context"
	"net/http"

	"internhub/internal/portal"
)

const programsPath = "/programs"

func (c *Client) ListPrograms(ctx context.Context, q portal.ListQuery) (portal.Page[portal.Program], error) {
	return list[portal.Program](ctx, c, programsPath, q)
}

func (c *Client) GetProgram(ctx context.Context, id string) (portal.Program, error) {
	return get[portal.Program](ctx, c, programsPath, id)
}

func (c *Client) CreateProgram(ctx context.Context, in portal.ProgramInput) (portal.Program, error) {
	return send[portal.Program](ctx, c, http.MethodPost, programsPath, in)
}

func (c *Client) UpdateProgram(ctx context.Context, id string, in portal.ProgramInput) (portal.Program, error) {
	path, err := resourcePath(programsPath, id)
	if err != nil {
		return portal.Program{}, err
	}
	return send[portal.Program](ctx, c, http.MethodPut, path, in)
}

func (c *Client) DeleteProgram(ctx context.Context, id string) error {
	path, err := resourcePath(programsPath, id)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
	return err
}
