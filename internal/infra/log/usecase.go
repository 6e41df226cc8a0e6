package log

import (
	"context"
	"errors"
	"net/http"

	"github.com/bool64/ctxd"
	"github.com/swaggest/rest"
	"github.com/swaggest/usecase"
)

// UseCaseMiddleware creates logging use case middleware.
func UseCaseMiddleware(logger ctxd.Logger) usecase.Middleware {
	return usecase.MiddlewareFunc(func(next usecase.Interactor) usecase.Interactor {
		var (
			hasName usecase.HasName
			name    = "unknown"
		)

		if usecase.As(next, &hasName) {
			name = hasName.Name()
		}

		return usecase.Interact(func(ctx context.Context, input, output any) error {
			ctx = ctxd.AddFields(ctx, "usecase", name)

			err := next.Interact(ctx, input, output)
			if err != nil && !errors.Is(err, rest.HTTPCodeAsError(http.StatusNotModified)) {
				logger.Warn(ctx, "usecase failed", "input", input, "error", err)
			}

			return err
		})
	})
}
