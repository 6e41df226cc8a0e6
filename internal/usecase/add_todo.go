package usecase

import (
	"context"

	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

// AddTodo creates usecase interactor.
func AddTodo(deps interface {
	TodoMutator() todo.Mutator
},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in todo.Value, out *todo.Result) (err error) {
		*out, err = deps.TodoMutator().Mutate(ctx, todo.AddTodo{Text: in.Text})

		return err
	})

	u.SetTitle("Add Todo")
	u.SetDescription("Append new active todo to the list.")
	u.SetExpectedErrors(status.InvalidArgument, status.Unavailable)
	u.SetTags("Todos")

	return u
}
