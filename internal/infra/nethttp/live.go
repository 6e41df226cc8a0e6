package nethttp

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/swaggest/todomvc/internal/infra/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// liveHandler pushes todo collection to websocket client after every change.
func liveHandler(l *service.Locator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrader has already responded with error.
			l.CtxdLogger.Warn(r.Context(), "websocket upgrade failed", "error", err)

			return
		}

		defer func() {
			_ = conn.Close()
		}()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// Reading detects closed connection, incoming messages are ignored.
		go func() {
			defer cancel()

			for {
				if _, _, err := conn.NextReader(); err != nil {
					return
				}
			}
		}()

		todos, err := l.TodoWatcher().Watch(ctx)
		if err != nil {
			l.CtxdLogger.Warn(ctx, "failed to watch todos", "error", err)

			return
		}

		for t := range todos {
			if err := conn.WriteJSON(t); err != nil {
				l.CtxdLogger.Debug(ctx, "live feed write failed", "error", err)

				return
			}
		}
	}
}
