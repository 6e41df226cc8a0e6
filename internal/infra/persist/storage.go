// Package persist keeps todo store state in a key-value storage between restarts.
package persist

import (
	"context"
	"sync"
)

// Storage is a key-value storage of serialized state.
type Storage interface {
	// GetItem returns stored value, found is false for missing key.
	GetItem(ctx context.Context, key string) (value []byte, found bool, err error)

	// SetItem stores value by key.
	SetItem(ctx context.Context, key string, value []byte) error

	// RemoveItem deletes value by key, missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// Memory is an in-process storage.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
}

var _ Storage = &Memory{}

// GetItem returns stored value.
func (m *Memory) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}

	return append([]byte(nil), v...), true, nil
}

// SetItem stores value.
func (m *Memory) SetItem(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.items == nil {
		m.items = make(map[string][]byte)
	}

	m.items[key] = append([]byte(nil), value...)

	return nil
}

// RemoveItem deletes value.
func (m *Memory) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)

	return nil
}
