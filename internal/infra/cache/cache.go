// Package cache provides keyed in-memory values with change subscriptions.
package cache

import (
	"sync"

	"github.com/google/uuid"
)

// Cache keeps values by key and notifies subscribers of writes.
//
// Reads and writes are linearizable per key, values are stored as is,
// so writers must not modify a value after it was written.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]
}

type entry[V any] struct {
	value       V
	set         bool
	subscribers map[uuid.UUID]chan V
}

// Subscription receives latest values written to a key.
type Subscription[V any] struct {
	ID uuid.UUID

	c      chan V
	cancel func()
	once   sync.Once
}

// C returns channel of written values.
//
// Channel has capacity of one, a value that was not received yet is replaced with a newer one.
func (s *Subscription[V]) C() <-chan V {
	return s.c
}

// Close stops the subscription.
func (s *Subscription[V]) Close() {
	s.once.Do(s.cancel)
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]*entry[V]),
	}
}

func (c *Cache[V]) entry(key string) *entry[V] {
	e, ok := c.entries[key]
	if !ok {
		e = &entry[V]{subscribers: make(map[uuid.UUID]chan V)}
		c.entries[key] = e
	}

	return e
}

// Read returns value by key, ok is false if key was never written.
func (c *Cache[V]) Read(key string) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.entries[key]
	if !found || !e.set {
		return value, false
	}

	return e.value, true
}

// Write replaces value by key and notifies subscribers.
func (c *Cache[V]) Write(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)
	e.value = value
	e.set = true

	for _, ch := range e.subscribers {
		// Drop the pending value, if any, so that subscriber receives the latest one.
		select {
		case <-ch:
		default:
		}

		ch <- value
	}
}

// Subscribe starts receiving values written to key after this call.
func (c *Cache[V]) Subscribe(key string) *Subscription[V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.New()
	ch := make(chan V, 1)

	c.entry(key).subscribers[id] = ch

	return &Subscription[V]{
		ID: id,
		c:  ch,
		cancel: func() {
			c.mu.Lock()
			defer c.mu.Unlock()

			if e, ok := c.entries[key]; ok {
				delete(e.subscribers, id)
			}

			close(ch)
		},
	}
}

// Subscribers returns number of active subscriptions for key.
func (c *Cache[V]) Subscribers(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return len(e.subscribers)
	}

	return 0
}
