package usecase

import (
	"context"

	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

// ToggleTodo creates usecase interactor.
func ToggleTodo(deps interface {
	TodoMutator() todo.Mutator
},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in todo.Identity, out *todo.Result) (err error) {
		*out, err = deps.TodoMutator().Mutate(ctx, todo.ToggleTodo{ID: in.ID})

		return err
	})

	u.SetTitle("Toggle Todo")
	u.SetDescription("Flip completion of todo, unknown ID leaves the list unchanged.")
	u.SetExpectedErrors(status.InvalidArgument, status.Unavailable)
	u.SetTags("Todos")

	return u
}
