// Package repository implements the todo item store on top of cache.
package repository

import (
	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/todomvc/internal/infra/cache"
)

// Todo is an in-memory todo store.
//
// The whole snapshot is replaced on every write, readers never observe partial updates.
type Todo struct {
	cache *cache.Cache[todo.Snapshot]
	key   string
}

// NewTodo creates todo store with its own cache.
func NewTodo() *Todo {
	return NewTodoWithCache(cache.New[todo.Snapshot](), todo.QueryKey)
}

// NewTodoWithCache creates todo store that keeps snapshot in c by key.
func NewTodoWithCache(c *cache.Cache[todo.Snapshot], key string) *Todo {
	return &Todo{cache: c, key: key}
}

// Read returns current todo collection, empty before first write.
func (tr *Todo) Read() []todo.Todo {
	s := tr.Snapshot()
	if s.Todos == nil {
		return []todo.Todo{}
	}

	return s.Todos
}

// Snapshot returns a copy of current state.
func (tr *Todo) Snapshot() todo.Snapshot {
	s, _ := tr.cache.Read(tr.key)

	return s.Clone()
}

// Write replaces current state.
func (tr *Todo) Write(s todo.Snapshot) {
	tr.cache.Write(tr.key, s.Clone())
}

// Subscribe starts receiving snapshots written after this call.
func (tr *Todo) Subscribe() *cache.Subscription[todo.Snapshot] {
	return tr.cache.Subscribe(tr.key)
}
