package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"internhub/internal/portal"
)

func (c *Client) Login(ctx context.Context, email, password string) (portal.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return portal.LoginResult{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	var result portal.LoginResult
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   portal.LoginRequest{Email: email, Password: password},
		public: true,
	}, &result)
	if err != nil {
		return portal.LoginResult{}, err
	}
	if result.Token == "" {
		return portal.LoginResult{}, fmt.Errorf("login response carried no token")
	}
	return result, nil
}
