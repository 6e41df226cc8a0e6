package usecase

import (
	"context"

	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

// CompleteAllTodos creates usecase interactor.
func CompleteAllTodos(deps interface {
	TodoMutator() todo.Mutator
},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, _ struct{}, out *todo.Result) (err error) {
		*out, err = deps.TodoMutator().Mutate(ctx, todo.CompleteAllTodos{})

		return err
	})

	u.SetTitle("Complete All Todos")
	u.SetDescription("Complete every todo, or reopen every todo if all of them are already completed.")
	u.SetExpectedErrors(status.Unavailable)
	u.SetTags("Todos")

	return u
}
