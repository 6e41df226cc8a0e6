package log

import (
	"net/http"

	"github.com/bool64/ctxd"
	"github.com/felixge/httpsnoop"
)

// HTTPMiddleware logs handled requests.
func HTTPMiddleware(logger ctxd.Logger) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxd.AddFields(r.Context(), "method", r.Method, "url", r.URL.String())

			m := httpsnoop.CaptureMetrics(handler, w, r.WithContext(ctx))

			logger.Debug(ctx, "handled", "status", m.Code, "duration", m.Duration.String(), "bytes", m.Written)
		})
	}
}
