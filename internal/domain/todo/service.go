// Package todo describes todo list domain.
package todo

import "context"

// Finder reads todo collection.
type Finder interface {
	Todos(ctx context.Context) ([]Todo, error)
}

// Mutator dispatches mutations.
type Mutator interface {
	Mutate(ctx context.Context, m Mutation) (Result, error)
}

// Watcher provides live view of todo collection.
//
// The returned channel yields current collection first and then every new collection,
// it is closed when context is done.
type Watcher interface {
	Watch(ctx context.Context) (<-chan []Todo, error)
}
