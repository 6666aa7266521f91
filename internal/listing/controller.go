// Package listing holds the state behind a paged list view: the server-side
// page, plus search and sort applied on the client over that page.
package listing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"internhub/internal/portal"
)

const DefaultPageSize = 10

var ErrUnknownSortField = errors.New("unknown sort field")

type FetchFunc[T any] func(ctx context.Context, q portal.ListQuery) (portal.Page[T], error)

type Direction int

const (
	Asc Direction = iota
	Desc
)

// SearchScope tells what a search runs over. Search only ever sees the page
// that is currently loaded.
type SearchScope string

const ScopePage SearchScope = "page"

// Fields describes how records are searched and sorted.
type Fields[T any] struct {
	Search func(T) []string
	Sort   map[string]func(T) Key
}

type Option[T any] func(*Controller[T])

func WithPageSize[T any](size int) Option[T] {
	return func(c *Controller[T]) {
		if size > 0 {
			c.query.Limit = size
		}
	}
}

// WithQuery seeds the server-side filters. Page and limit are only taken
// when set.
func WithQuery[T any](q portal.ListQuery) Option[T] {
	return func(c *Controller[T]) {
		limit, page := c.query.Limit, c.query.Page
		c.query = q
		if q.Limit <= 0 {
			c.query.Limit = limit
		}
		if q.Page <= 0 {
			c.query.Page = page
		}
	}
}

type Controller[T any] struct {
	fetch  FetchFunc[T]
	fields Fields[T]

	query      portal.ListQuery
	search     string
	sortField  string
	sortDir    Direction
	records    []T
	pagination portal.Pagination
	loaded     bool
	loading    bool
	err        error
}

func New[T any](fetch FetchFunc[T], fields Fields[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		fetch:  fetch,
		fields: fields,
		query:  portal.ListQuery{Page: 1, Limit: DefaultPageSize},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches the current page. A failed fetch leaves no records and keeps
// the error for display.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	page, err := c.fetch(ctx, c.query)
	if err != nil {
		c.records = nil
		c.pagination = portal.Pagination{}
		c.loaded = false
		c.err = err
		return fmt.Errorf("load page %d: %w", c.query.Page, err)
	}
	c.records = page.Items
	c.pagination = page.Pagination
	c.loaded = true
	c.err = nil
	return nil
}

func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.query.Page = page
	return c.Load(ctx)
}

// SetPageSize changes the page size and goes back to the first page.
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) error {
	if size <= 0 {
		size = DefaultPageSize
	}
	c.query.Limit = size
	c.query.Page = 1
	return c.Load(ctx)
}

// Next moves forward one page unless the last page is already shown. Without
// a successful load there is no known last page, so it stays put; retry with
// Load.
func (c *Controller[T]) Next(ctx context.Context) (bool, error) {
	if !c.loaded || c.query.Page >= c.pagination.TotalPages {
		return false, nil
	}
	return true, c.SetPage(ctx, c.query.Page+1)
}

func (c *Controller[T]) Prev(ctx context.Context) (bool, error) {
	if c.query.Page <= 1 {
		return false, nil
	}
	return true, c.SetPage(ctx, c.query.Page-1)
}

func (c *Controller[T]) SetSearch(text string) {
	c.search = strings.TrimSpace(text)
}

func (c *Controller[T]) Search() string {
	return c.search
}

func (c *Controller[T]) SearchScope() SearchScope {
	return ScopePage
}

// SetSort orders Visible by field. An empty field clears the sort.
func (c *Controller[T]) SetSort(field string, dir Direction) error {
	if field == "" {
		c.sortField = ""
		return nil
	}
	if _, ok := c.fields.Sort[field]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSortField, field)
	}
	c.sortField = field
	c.sortDir = dir
	return nil
}

func (c *Controller[T]) SortFields() []string {
	names := make([]string, 0, len(c.fields.Sort))
	for name := range c.fields.Sort {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Visible is the loaded page after search and sort. Records on other pages
// never match a search.
func (c *Controller[T]) Visible() []T {
	out := make([]T, 0, len(c.records))
	needle := strings.ToLower(c.search)
	for _, record := range c.records {
		if needle == "" || c.matches(record, needle) {
			out = append(out, record)
		}
	}
	if key, ok := c.fields.Sort[c.sortField]; ok {
		slices.SortStableFunc(out, func(a, b T) int {
			cmp := compare(key(a), key(b))
			if c.sortDir == Desc {
				return -cmp
			}
			return cmp
		})
	}
	return out
}

func (c *Controller[T]) matches(record T, needle string) bool {
	if c.fields.Search == nil {
		return false
	}
	for _, value := range c.fields.Search(record) {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

// Records is the page exactly as the server returned it.
func (c *Controller[T]) Records() []T {
	return c.records
}

// Total is pagination.total as reported by the server.
func (c *Controller[T]) Total() int {
	return c.pagination.Total
}

func (c *Controller[T]) Pagination() portal.Pagination {
	return c.pagination
}

func (c *Controller[T]) Query() portal.ListQuery {
	return c.query
}

func (c *Controller[T]) Page() int {
	return c.query.Page
}

func (c *Controller[T]) PageSize() int {
	return c.query.Limit
}

func (c *Controller[T]) Loading() bool {
	return c.loading
}

func (c *Controller[T]) Err() error {
	return c.err
}
