package usecase

import (
	"context"
	"fmt"

	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

// ExecOperation creates usecase interactor.
func ExecOperation(deps interface {
	TodoFinder() todo.Finder
	TodoMutator() todo.Mutator
},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in todo.Operation, out *todo.Result) error {
		if in.OperationName == todo.OperationTodos {
			todos, err := deps.TodoFinder().Todos(ctx)
			if err != nil {
				return err
			}

			out.Todos = todos

			return nil
		}

		m, err := todo.ParseMutation(in.OperationName, in.Variables)
		if err != nil {
			return fmt.Errorf("%w: %w", status.InvalidArgument, err)
		}

		*out, err = deps.TodoMutator().Mutate(ctx, m)

		return err
	})

	u.SetTitle("Execute Operation")
	u.SetDescription("Execute named query (todos) or mutation (addTodo, toggleTodo, completeAllTodos, removeTodo).")
	u.SetExpectedErrors(status.InvalidArgument, status.Unavailable)
	u.SetTags("Operations")

	return u
}
