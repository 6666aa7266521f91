package stubapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidOffset = errors.New("offset must not be negative")
	ErrConflict      = errors.New("record conflicts with an existing one")
)

// Filter matches top-level JSON fields by exact string value.
type Filter map[string]string

// Store keeps backend records as JSON documents grouped by kind, in insertion
// order.
type Store interface {
	List(ctx context.Context, kind string, filter Filter, offset, limit int) ([]json.RawMessage, int, error)
	Get(ctx context.Context, kind, id string) (json.RawMessage, error)
	Put(ctx context.Context, kind, id string, data json.RawMessage) error
	Delete(ctx context.Context, kind, id string) error
}

const (
	kindUsers        = "users"
	kindPrograms     = "programs"
	kindMentors      = "mentors"
	kindApplications = "applications"
	kindAssessments  = "assessments"
	kindCertificates = "certificates"
)

// collection is a typed view over one kind.
type collection[T any] struct {
	store Store
	kind  string
}

func (c collection[T]) list(ctx context.Context, filter Filter, offset, limit int) ([]T, int, error) {
	raws, total, err := c.store.List(ctx, c.kind, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", c.kind, err)
		}
		items = append(items, item)
	}
	return items, total, nil
}

// all returns every match; the double never holds more than a few hundred records.
func (c collection[T]) all(ctx context.Context, filter Filter) ([]T, error) {
	items, _, err := c.list(ctx, filter, 0, 0)
	return items, err
}

func (c collection[T]) get(ctx context.Context, id string) (T, error) {
	var item T
	raw, err := c.store.Get(ctx, c.kind, id)
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, fmt.Errorf("decode %s %s: %w", c.kind, id, err)
	}
	return item, nil
}

func (c collection[T]) put(ctx context.Context, id string, item T) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", c.kind, id, err)
	}
	return c.store.Put(ctx, c.kind, id, raw)
}

func (c collection[T]) delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.kind, id)
}
