package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"internhub/internal/portal"
)

const maxResponseBytes = 4 << 20

// TokenSource yields the bearer token for protected calls. An empty token
// means nobody is logged in.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	log        *slog.Logger
	userAgent  string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		log:       slog.Default(),
		userAgent: "internhub-cli",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	public bool
}

// do sends r and decodes the envelope's data into out. The pagination block
// is returned as-is when the server sent one.
func (c *Client) do(ctx context.Context, r request, out any) (*portal.Pagination, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", r.path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", r.path, err)
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if !r.public {
		token, err := c.token(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.Warn("request timed out", "method", r.method, "path", r.path, "elapsed", time.Since(started))
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("send %s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("read %s response: %w", r.path, err)
	}
	c.log.Debug("api call",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"request_id", req.Header.Get("X-Request-ID"),
		"elapsed", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseError(resp.StatusCode, payload)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, nil
	}

	var envelope portal.Envelope[json.RawMessage]
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", r.path, err)
	}
	if envelope.Status == portal.StatusError {
		message := strings.TrimSpace(envelope.Message)
		if message == "" {
			message = genericMessage(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	if out != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", r.path, err)
		}
	}
	return envelope.Pagination, nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", ErrNoSession
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

func list[T any](ctx context.Context, c *Client, path string, q portal.ListQuery) (portal.Page[T], error) {
	var items []T
	pagination, err := c.do(ctx, request{method: http.MethodGet, path: path, query: q.Values()}, &items)
	if err != nil {
		return portal.Page[T]{}, err
	}
	page := portal.Page[T]{Items: items}
	if pagination != nil {
		page.Pagination = *pagination
	} else {
		page.Pagination = portal.NewPagination(1, len(items), len(items))
	}
	return page, nil
}

func get[T any](ctx context.Context, c *Client, path, id string) (T, error) {
	var out T
	if strings.TrimSpace(id) == "" {
		return out, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	_, err := c.do(ctx, request{method: http.MethodGet, path: path + "/" + url.PathEscape(id)}, &out)
	return out, err
}

func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	_, err := c.do(ctx, request{method: method, path: path, body: body}, &out)
	return out, err
}

func resourcePath(collection, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return collection + "/" + url.PathEscape(id), nil
}
