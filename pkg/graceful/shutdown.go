// Package graceful coordinates process termination between named subscribers.
package graceful

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultTimeout is a default Timeout to wait for subscribers.
const DefaultTimeout = 10 * time.Second

// Shutdown broadcasts a single shutdown signal and waits for subscribers to finish.
//
// Zero value is ready to use.
type Shutdown struct {
	Timeout time.Duration

	mu          sync.Mutex
	subscribers map[string]chan struct{}
	order       []string
	signal      chan struct{}
	closed      bool
	notifying   bool
}

func (s *Shutdown) signalLocked() chan struct{} {
	if s.signal == nil {
		s.signal = make(chan struct{})
	}

	return s.signal
}

// Close broadcasts shutdown signal, it is safe to call multiple times.
func (s *Shutdown) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sig := s.signalLocked()

	if !s.closed {
		s.closed = true
		close(sig)
	}
}

// Wait blocks until shutdown signal and then until every subscriber is done or Timeout is exceeded.
func (s *Shutdown) Wait() error {
	s.mu.Lock()
	sig := s.signalLocked()
	s.mu.Unlock()

	<-sig

	return s.waitSubscribers()
}

// EnableGracefulShutdown closes Shutdown on SIGTERM or SIGINT.
func (s *Shutdown) EnableGracefulShutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notifying {
		return
	}

	s.notifying = true
	sig := s.signalLocked()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		defer signal.Stop(exit)

		select {
		case <-exit:
			s.Close()
		case <-sig:
		}
	}()
}

func (s *Shutdown) timeout() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Timeout == 0 {
		return DefaultTimeout
	}

	return s.Timeout
}

func (s *Shutdown) waitSubscribers() error {
	s.mu.Lock()
	order := append([]string(nil), s.order...)
	subscribers := make(map[string]chan struct{}, len(s.subscribers))

	for name, done := range s.subscribers {
		subscribers[name] = done
	}
	s.mu.Unlock()

	deadline := time.NewTimer(s.timeout())
	defer deadline.Stop()

	for _, subscriber := range order {
		select {
		case <-subscribers[subscriber]:
		case <-deadline.C:
			return fmt.Errorf("shutdown deadline exceeded while waiting for %s", subscriber)
		}
	}

	return nil
}

// ShutdownSignal returns a channel that is closed on shutdown and a confirmation channel
// that subscriber closes once it has finished.
//
// Same subscriber name receives same confirmation channel.
func (s *Shutdown) ShutdownSignal(subscriber string) (shutdown <-chan struct{}, done chan<- struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subscribers == nil {
		s.subscribers = make(map[string]chan struct{})
	}

	if d, ok := s.subscribers[subscriber]; ok {
		return s.signalLocked(), d
	}

	d := make(chan struct{})
	s.subscribers[subscriber] = d
	s.order = append(s.order, subscriber)

	return s.signalLocked(), d
}
