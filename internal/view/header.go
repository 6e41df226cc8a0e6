// Package view renders todo list components.
package view

import (
	"context"

	"github.com/swaggest/todomvc/internal/domain/todo"
)

// KeyEnter commits header draft.
const KeyEnter = "Enter"

// Header holds the draft of a new todo.
type Header struct {
	draft string
}

// Draft returns current input value.
func (h *Header) Draft() string {
	return h.draft
}

// Change replaces the draft.
func (h *Header) Change(value string) {
	h.draft = value
}

// KeyPress dispatches AddTodo with the draft on Enter and clears the draft.
//
// Other keys are ignored, empty draft is committed as is.
func (h *Header) KeyPress(ctx context.Context, key string, m todo.Mutator) (todo.Result, bool, error) {
	if key != KeyEnter {
		return todo.Result{}, false, nil
	}

	text := h.draft
	h.draft = ""

	res, err := m.Mutate(ctx, todo.AddTodo{Text: text})
	if err != nil {
		return todo.Result{}, true, err
	}

	return res, true, nil
}
