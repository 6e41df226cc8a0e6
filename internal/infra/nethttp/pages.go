package nethttp

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/todomvc/internal/infra/service"
	"github.com/swaggest/todomvc/internal/view"
)

func mountPages(r chi.Router, l *service.Locator) {
	r.Get("/", pageHandler(l))
	r.Get("/active", pageHandler(l))
	r.Get("/completed", pageHandler(l))

	r.Post("/todos", addTodoHandler(l))
	r.Post("/todos/toggle-all", mutationHandler(l, func(*http.Request) (todo.Mutation, bool) {
		return todo.CompleteAllTodos{}, true
	}))
	r.Post("/todos/{id}/toggle", mutationHandler(l, func(r *http.Request) (todo.Mutation, bool) {
		id, ok := pathID(r)

		return todo.ToggleTodo{ID: id}, ok
	}))
	r.Post("/todos/{id}/remove", mutationHandler(l, func(r *http.Request) (todo.Mutation, bool) {
		id, ok := pathID(r)

		return todo.RemoveTodo{ID: id}, ok
	}))

	// Unknown routes render all todos.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)

			return
		}

		pageHandler(l)(w, r)
	})
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))

	return id, err == nil
}

func pageHandler(l *service.Locator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		todos, err := l.TodoFinder().Todos(ctx)
		if err != nil {
			l.CtxdLogger.Error(ctx, "failed to query todos", "error", err)
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

			return
		}

		buf := bytes.NewBuffer(nil)

		if err := view.NewPage(todos, todo.FilterFromPath(r.URL.Path)).Render(buf); err != nil {
			l.CtxdLogger.Error(ctx, "failed to render page", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		_, _ = w.Write(buf.Bytes())
	}
}

// redirectBack responds with 303 to a known route from return form value.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, todo.FilterFromPath(r.PostFormValue("return")).Path(), http.StatusSeeOther)
}

func addTodoHandler(l *service.Locator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := view.Header{}
		h.Change(r.PostFormValue("text"))

		if _, _, err := h.KeyPress(r.Context(), view.KeyEnter, l.TodoMutator()); err != nil {
			l.CtxdLogger.Warn(r.Context(), "failed to add todo", "error", err)
		}

		redirectBack(w, r)
	}
}

func mutationHandler(l *service.Locator, parse func(r *http.Request) (todo.Mutation, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if m, ok := parse(r); ok {
			if _, err := l.TodoMutator().Mutate(ctx, m); err != nil {
				l.CtxdLogger.Warn(ctx, "mutation failed", "operation", m.Name(), "error", err)
			}
		}

		redirectBack(w, r)
	}
}
