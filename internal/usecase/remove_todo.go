package usecase

import (
	"context"

	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

// RemoveTodo creates usecase interactor.
func RemoveTodo(deps interface {
	TodoMutator() todo.Mutator
},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in todo.Identity, out *todo.Result) (err error) {
		*out, err = deps.TodoMutator().Mutate(ctx, todo.RemoveTodo{ID: in.ID})

		return err
	})

	u.SetTitle("Remove Todo")
	u.SetDescription("Remove todo, removing unknown ID is a no-op.")
	u.SetExpectedErrors(status.InvalidArgument, status.Unavailable)
	u.SetTags("Todos")

	return u
}
