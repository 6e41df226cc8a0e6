// Package resolver implements todo mutations as pure functions of snapshot and arguments.
//
// Resolvers never modify the snapshot they receive, a new todo slice is built for every result.
package resolver

import "github.com/swaggest/todomvc/internal/domain/todo"

// Table resolves every todo mutation variant.
type Table struct{}

var _ todo.Resolver = Table{}

// Resolve applies mutation to snapshot.
func Resolve(s todo.Snapshot, m todo.Mutation) (todo.Snapshot, todo.Result) {
	return m.Resolve(Table{}, s)
}

// AddTodo appends a new todo with the next id, empty text is accepted.
func (Table) AddTodo(s todo.Snapshot, m todo.AddTodo) (todo.Snapshot, todo.Result) {
	t := todo.Todo{
		ID:   s.NextID,
		Text: m.Text,
	}

	todos := make([]todo.Todo, 0, len(s.Todos)+1)
	todos = append(todos, s.Todos...)
	todos = append(todos, t)

	return todo.Snapshot{Todos: todos, NextID: s.NextID + 1}, todo.Result{Todos: todos, Todo: &t}
}

// ToggleTodo flips completed flag of the todo with matching id, missing id is a no-op.
func (Table) ToggleTodo(s todo.Snapshot, m todo.ToggleTodo) (todo.Snapshot, todo.Result) {
	var (
		todos   = make([]todo.Todo, len(s.Todos))
		toggled *todo.Todo
	)

	for i, t := range s.Todos {
		if t.ID == m.ID {
			t.Completed = !t.Completed
			toggled = &t
		}

		todos[i] = t
	}

	return todo.Snapshot{Todos: todos, NextID: s.NextID}, todo.Result{Todos: todos, Todo: toggled}
}

// CompleteAllTodos flips aggregate state: if every todo is completed, all become active,
// otherwise all become completed.
func (Table) CompleteAllTodos(s todo.Snapshot, _ todo.CompleteAllTodos) (todo.Snapshot, todo.Result) {
	completed := !todo.AllCompleted(s.Todos)
	todos := make([]todo.Todo, len(s.Todos))

	for i, t := range s.Todos {
		t.Completed = completed
		todos[i] = t
	}

	return todo.Snapshot{Todos: todos, NextID: s.NextID}, todo.Result{Todos: todos}
}

// RemoveTodo filters out the todo with matching id, missing id is a no-op.
func (Table) RemoveTodo(s todo.Snapshot, m todo.RemoveTodo) (todo.Snapshot, todo.Result) {
	todos := make([]todo.Todo, 0, len(s.Todos))

	for _, t := range s.Todos {
		if t.ID != m.ID {
			todos = append(todos, t)
		}
	}

	return todo.Snapshot{Todos: todos, NextID: s.NextID}, todo.Result{Todos: todos}
}
