// Package nethttp provides HTTP handlers of todo service.
package nethttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/rest/nethttp"
	"github.com/swaggest/rest/response/gzip"
	"github.com/swaggest/rest/web"
	swgui "github.com/swaggest/swgui/v5emb"
	"github.com/swaggest/todomvc/internal/infra/log"
	"github.com/swaggest/todomvc/internal/infra/schema"
	"github.com/swaggest/todomvc/internal/infra/service"
	"github.com/swaggest/todomvc/internal/usecase"
)

// NewRouter creates HTTP router.
func NewRouter(l *service.Locator) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer,
		middleware.GetHead,
		log.HTTPMiddleware(l.CtxdLogger),
	)

	api := newAPI(l)

	r.Handle("/api/*", api)
	r.Handle("/docs", api)
	r.Handle("/docs/*", api)

	// Websocket connections are hijacked, so they bypass response compression.
	r.Get("/api/todos/live", liveHandler(l))

	mountPages(r, l)

	return r
}

func newAPI(l *service.Locator) *web.Service {
	s := web.NewService(openapi3.NewReflector())

	schema.SetupOpenAPI(s.OpenAPISchema())

	corsOptions := cors.Options{
		AllowedOrigins: l.Config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "If-None-Match"},
		ExposedHeaders: []string{"Etag"},
	}

	if len(corsOptions.AllowedOrigins) == 0 {
		corsOptions.AllowedOrigins = []string{"*"}
	}

	s.Wrap(
		nethttp.UseCaseMiddlewares(log.UseCaseMiddleware(l.CtxdLogger)),
		cors.New(corsOptions).Handler,
		gzip.Middleware,
	)

	s.Get("/api/todos", usecase.FindTodos(l))
	s.Post("/api/todos", usecase.AddTodo(l), nethttp.SuccessStatus(http.StatusCreated))
	s.Post("/api/todos/complete-all", usecase.CompleteAllTodos(l))
	s.Get("/api/todos/{id}", usecase.FindTodo(l))
	s.Post("/api/todos/{id}/toggle", usecase.ToggleTodo(l))
	s.Delete("/api/todos/{id}", usecase.RemoveTodo(l))
	s.Post("/api/operations", usecase.ExecOperation(l))

	// Swagger UI endpoint at /docs.
	s.Docs("/docs", swgui.New)

	return s
}
