package usecase

import (
	"context"
	"fmt"

	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

// FindTodo creates usecase interactor.
func FindTodo(deps interface {
	TodoFinder() todo.Finder
},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in todo.Identity, out *todo.Todo) error {
		todos, err := deps.TodoFinder().Todos(ctx)
		if err != nil {
			return err
		}

		for _, t := range todos {
			if t.ID == in.ID {
				*out = t

				return nil
			}
		}

		return fmt.Errorf("%w: todo %d", status.NotFound, in.ID)
	})

	u.SetTitle("Find Todo")
	u.SetDescription("Find todo by ID.")
	u.SetExpectedErrors(status.NotFound, status.InvalidArgument, status.Unavailable)
	u.SetTags("Todos")

	return u
}
