package todo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaggest/todomvc/internal/domain/todo"
)

func TestFilterFromPath(t *testing.T) {
	assert.Equal(t, todo.FilterAll, todo.FilterFromPath("/"))
	assert.Equal(t, todo.FilterActive, todo.FilterFromPath("/active"))
	assert.Equal(t, todo.FilterCompleted, todo.FilterFromPath("/completed"))
	assert.Equal(t, todo.FilterAll, todo.FilterFromPath("/archived"))
	assert.Equal(t, todo.FilterAll, todo.FilterFromPath(""))
}

func TestFilter_Path(t *testing.T) {
	for _, f := range []todo.Filter{todo.FilterAll, todo.FilterActive, todo.FilterCompleted} {
		assert.Equal(t, f, todo.FilterFromPath(f.Path()))
	}

	assert.Equal(t, "/", todo.Filter("").Path())
}

func TestFilter_Apply(t *testing.T) {
	todos := []todo.Todo{
		{ID: 0, Text: "A", Completed: true},
		{ID: 1, Text: "B"},
		{ID: 2, Text: "C", Completed: true},
	}

	assert.Equal(t, []todo.Todo{{ID: 1, Text: "B"}}, todo.FilterFromPath("/active").Apply(todos))
	assert.Equal(t, []todo.Todo{todos[0], todos[2]}, todo.FilterCompleted.Apply(todos))
	assert.Equal(t, todos, todo.FilterAll.Apply(todos))
	assert.Empty(t, todo.FilterActive.Apply(nil))
}

func TestAllCompleted(t *testing.T) {
	assert.False(t, todo.AllCompleted(nil))
	assert.False(t, todo.AllCompleted([]todo.Todo{{Completed: true}, {}}))
	assert.True(t, todo.AllCompleted([]todo.Todo{{Completed: true}, {Completed: true}}))
}

func TestActiveCount(t *testing.T) {
	assert.Equal(t, 0, todo.ActiveCount(nil))
	assert.Equal(t, 2, todo.ActiveCount([]todo.Todo{{}, {Completed: true}, {}}))
}
