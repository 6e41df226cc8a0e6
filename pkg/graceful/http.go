package graceful

import (
	"context"
	"net/http"
)

// WaitToShutdownHTTP waits for shutdown signal and stops server, pending requests are given Timeout to finish.
func (s *Shutdown) WaitToShutdownHTTP(server *http.Server, subscriber string) error {
	shutdown, done := s.ShutdownSignal(subscriber)
	defer close(done)

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
	defer cancel()

	return server.Shutdown(ctx)
}
