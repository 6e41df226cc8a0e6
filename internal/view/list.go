package view

import "github.com/swaggest/todomvc/internal/domain/todo"

// List shows todos that pass the route filter.
type List struct {
	Todos        []todo.Todo
	AllCompleted bool
}

// NewList filters todos.
func NewList(todos []todo.Todo, f todo.Filter) List {
	return List{
		Todos:        f.Apply(todos),
		AllCompleted: todo.AllCompleted(todos),
	}
}

// Hidden is true when nothing passes the filter.
func (l List) Hidden() bool {
	return len(l.Todos) == 0
}
