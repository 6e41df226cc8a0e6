package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/swaggest/rest"
	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

type todoList []todo.Todo

// ETag implements rest.ETagged.
func (l todoList) ETag() string {
	return collectionETag(l)
}

func collectionETag(todos []todo.Todo) string {
	if todos == nil {
		todos = []todo.Todo{}
	}

	b, err := json.Marshal(todos)
	if err != nil {
		return ""
	}

	return `"` + strconv.FormatUint(xxhash.Sum64(b), 36) + `"`
}

// FindTodos creates usecase interactor.
func FindTodos(deps interface {
	TodoFinder() todo.Finder
},
) usecase.Interactor {
	type findTodosInput struct {
		Filter      todo.Filter `query:"filter" description:"Completion filter, all todos pass by default."`
		IfNoneMatch string      `header:"If-None-Match" description:"Collection version received earlier."`
	}

	u := usecase.NewInteractor(func(ctx context.Context, in findTodosInput, out *todoList) error {
		todos, err := deps.TodoFinder().Todos(ctx)
		if err != nil {
			return err
		}

		*out = in.Filter.Apply(todos)

		if in.IfNoneMatch != "" && (in.IfNoneMatch == "*" || in.IfNoneMatch == out.ETag()) {
			return rest.HTTPCodeAsError(http.StatusNotModified)
		}

		return nil
	})

	u.SetTitle("Find Todos")
	u.SetDescription("Find todos matching the filter, in order of creation.")
	u.SetExpectedErrors(status.InvalidArgument, status.Unavailable)
	u.SetTags("Todos")

	return u
}
