package service

import "github.com/swaggest/todomvc/internal/domain/todo"

// TodoFinderProvider is a service locator provider.
type TodoFinderProvider interface {
	TodoFinder() todo.Finder
}

// TodoMutatorProvider is a service locator provider.
type TodoMutatorProvider interface {
	TodoMutator() todo.Mutator
}

// TodoWatcherProvider is a service locator provider.
type TodoWatcherProvider interface {
	TodoWatcher() todo.Watcher
}
