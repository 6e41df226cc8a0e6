package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/todomvc/internal/resolver"
)

func apply(s todo.Snapshot, mm ...todo.Mutation) todo.Snapshot {
	for _, m := range mm {
		s, _ = resolver.Resolve(s, m)
	}

	return s
}

func TestTable_AddTodo(t *testing.T) {
	s, res := resolver.Resolve(todo.Snapshot{}, todo.AddTodo{Text: "Do the laundry"})

	assert.Equal(t, []todo.Todo{{ID: 0, Text: "Do the laundry", Completed: false}}, s.Todos)
	assert.Equal(t, 1, s.NextID)
	require.NotNil(t, res.Todo)
	assert.Equal(t, todo.Todo{ID: 0, Text: "Do the laundry"}, *res.Todo)
	assert.Equal(t, s.Todos, res.Todos)
}

func TestTable_AddTodo_order(t *testing.T) {
	texts := []string{"first", "second", "", "fourth", "second"}
	s := todo.Snapshot{}

	for _, text := range texts {
		s = apply(s, todo.AddTodo{Text: text})
	}

	require.Len(t, s.Todos, len(texts))

	for i, text := range texts {
		assert.Equal(t, i, s.Todos[i].ID)
		assert.Equal(t, text, s.Todos[i].Text)
		assert.False(t, s.Todos[i].Completed)
	}
}

func TestTable_AddTodo_empty(t *testing.T) {
	s := apply(todo.Snapshot{}, todo.AddTodo{Text: ""}, todo.AddTodo{Text: "x"})

	assert.Equal(t, []todo.Todo{{ID: 0, Text: ""}, {ID: 1, Text: "x"}}, s.Todos)
}

func TestTable_AddTodo_idNotReused(t *testing.T) {
	s := apply(todo.Snapshot{},
		todo.AddTodo{Text: "A"},
		todo.AddTodo{Text: "B"},
		todo.RemoveTodo{ID: 1},
		todo.AddTodo{Text: "C"},
	)

	assert.Equal(t, []todo.Todo{{ID: 0, Text: "A"}, {ID: 2, Text: "C"}}, s.Todos)
}

func TestTable_ToggleTodo(t *testing.T) {
	s := apply(todo.Snapshot{}, todo.AddTodo{Text: "A"}, todo.AddTodo{Text: "B"})

	toggled, res := resolver.Resolve(s, todo.ToggleTodo{ID: 1})
	assert.Equal(t, []todo.Todo{{ID: 0, Text: "A"}, {ID: 1, Text: "B", Completed: true}}, toggled.Todos)
	require.NotNil(t, res.Todo)
	assert.True(t, res.Todo.Completed)

	// Toggle is an involution.
	back := apply(toggled, todo.ToggleTodo{ID: 1})
	assert.Equal(t, s.Todos, back.Todos)

	// Input snapshot is left intact.
	assert.False(t, s.Todos[1].Completed)
}

func TestTable_ToggleTodo_missing(t *testing.T) {
	s := apply(todo.Snapshot{}, todo.AddTodo{Text: "A"})

	toggled, res := resolver.Resolve(s, todo.ToggleTodo{ID: 42})
	assert.Equal(t, s, toggled)
	assert.Nil(t, res.Todo)
}

func TestTable_CompleteAllTodos(t *testing.T) {
	s := apply(todo.Snapshot{}, todo.AddTodo{Text: "A"}, todo.AddTodo{Text: "B"})

	s = apply(s, todo.CompleteAllTodos{})
	assert.Equal(t, []todo.Todo{{ID: 0, Text: "A", Completed: true}, {ID: 1, Text: "B", Completed: true}}, s.Todos)

	s = apply(s, todo.CompleteAllTodos{})
	assert.Equal(t, []todo.Todo{{ID: 0, Text: "A"}, {ID: 1, Text: "B"}}, s.Todos)
}

func TestTable_CompleteAllTodos_mixed(t *testing.T) {
	s := apply(todo.Snapshot{},
		todo.AddTodo{Text: "A"},
		todo.AddTodo{Text: "B"},
		todo.ToggleTodo{ID: 0},
		todo.CompleteAllTodos{},
	)

	assert.True(t, todo.AllCompleted(s.Todos))
}

func TestTable_CompleteAllTodos_empty(t *testing.T) {
	s, res := resolver.Resolve(todo.Snapshot{NextID: 3}, todo.CompleteAllTodos{})

	assert.Empty(t, s.Todos)
	assert.Equal(t, 3, s.NextID)
	assert.Empty(t, res.Todos)
}

func TestTable_RemoveTodo(t *testing.T) {
	s := apply(todo.Snapshot{}, todo.AddTodo{Text: "A"}, todo.AddTodo{Text: "B"})

	removed := apply(s, todo.RemoveTodo{ID: 0})
	assert.Equal(t, []todo.Todo{{ID: 1, Text: "B", Completed: false}}, removed.Todos)
	assert.Equal(t, 2, removed.NextID)

	// Second removal is a no-op.
	again := apply(removed, todo.RemoveTodo{ID: 0})
	assert.Equal(t, removed, again)

	assert.Len(t, s.Todos, 2)
}
