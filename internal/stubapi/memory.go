package stubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type memoryKind struct {
	order []string
	data  map[string]json.RawMessage
}

type MemoryStore struct {
	mu    sync.RWMutex
	kinds map[string]*memoryKind
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{kinds: make(map[string]*memoryKind)}
}

// List returns limit records from offset; limit <= 0 returns all of them.
func (s *MemoryStore) List(_ context.Context, kind string, filter Filter, offset, limit int) ([]json.RawMessage, int, error) {
	if offset < 0 {
		return nil, 0, ErrInvalidOffset
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	k, ok := s.kinds[kind]
	if !ok {
		return nil, 0, nil
	}
	matched := make([]json.RawMessage, 0, len(k.order))
	for _, id := range k.order {
		raw := k.data[id]
		ok, err := matchFilter(raw, filter)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			matched = append(matched, raw)
		}
	}
	total := len(matched)
	if offset >= total {
		return []json.RawMessage{}, total, nil
	}
	end := total
	if limit > 0 {
		end = min(offset+limit, total)
	}
	return matched[offset:end], total, nil
}

func (s *MemoryStore) Get(_ context.Context, kind, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	k, ok := s.kinds[kind]
	if !ok {
		return nil, ErrNotFound
	}
	raw, ok := k.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return raw, nil
}

func (s *MemoryStore) Put(_ context.Context, kind, id string, data json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, ok := s.kinds[kind]
	if !ok {
		k = &memoryKind{data: make(map[string]json.RawMessage)}
		s.kinds[kind] = k
	}
	if _, exists := k.data[id]; !exists {
		k.order = append(k.order, id)
	}
	k.data[id] = append(json.RawMessage(nil), data...)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, ok := s.kinds[kind]
	if !ok {
		return ErrNotFound
	}
	if _, exists := k.data[id]; !exists {
		return ErrNotFound
	}
	delete(k.data, id)
	for i, existing := range k.order {
		if existing == id {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
	return nil
}

func matchFilter(raw json.RawMessage, filter Filter) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false, fmt.Errorf("decode record: %w", err)
	}
	for key, want := range filter {
		got, ok := fields[key]
		if !ok || fmt.Sprint(got) != want {
			return false, nil
		}
	}
	return true, nil
}
