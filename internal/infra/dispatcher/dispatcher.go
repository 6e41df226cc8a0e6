// Package dispatcher routes todo queries to the item store and mutations to resolvers.
package dispatcher

import (
	"context"
	"slices"
	"sync"

	"github.com/bool64/ctxd"
	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/todomvc/internal/infra/repository"
	"github.com/swaggest/todomvc/internal/resolver"
)

// Dispatcher is the single entry point to read and write todos.
type Dispatcher struct {
	Logger ctxd.Logger

	mu    sync.Mutex
	store *repository.Todo
	table todo.Resolver
}

var (
	_ todo.Finder  = &Dispatcher{}
	_ todo.Mutator = &Dispatcher{}
	_ todo.Watcher = &Dispatcher{}
)

// New creates dispatcher for store.
func New(store *repository.Todo) *Dispatcher {
	return &Dispatcher{
		Logger: ctxd.NoOpLogger{},
		store:  store,
		table:  resolver.Table{},
	}
}

// TodoFinder is a service provider.
func (d *Dispatcher) TodoFinder() todo.Finder {
	return d
}

// TodoMutator is a service provider.
func (d *Dispatcher) TodoMutator() todo.Mutator {
	return d
}

// TodoWatcher is a service provider.
func (d *Dispatcher) TodoWatcher() todo.Watcher {
	return d
}

// Todos returns current collection.
func (d *Dispatcher) Todos(_ context.Context) ([]todo.Todo, error) {
	return d.store.Read(), nil
}

// Mutate applies mutation to the latest snapshot and writes back the result.
//
// Mutations are applied one at a time in order of arrival.
func (d *Dispatcher) Mutate(ctx context.Context, m todo.Mutation) (todo.Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, res := m.Resolve(d.table, d.store.Snapshot())
	d.store.Write(s)

	d.Logger.Debug(ctx, "mutation applied", "operation", m.Name(), "variables", m.Variables(),
		"count", len(s.Todos))

	res.Todos = slices.Clone(res.Todos)

	return res, nil
}

// Watch returns live view of the collection.
func (d *Dispatcher) Watch(ctx context.Context) (<-chan []todo.Todo, error) {
	sub := d.store.Subscribe()
	out := make(chan []todo.Todo, 1)

	// Current value is taken after subscription to avoid missing a write in between.
	out <- d.store.Read()

	go func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case s, ok := <-sub.C():
				if !ok {
					return
				}

				todos := slices.Clone(s.Todos)
				if todos == nil {
					todos = []todo.Todo{}
				}

				select {
				case out <- todos:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
