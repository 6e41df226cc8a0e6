package service

import (
	"github.com/bool64/ctxd"
	"github.com/swaggest/todomvc/pkg/graceful"
)

// Locator defines application services.
type Locator struct {
	graceful.Shutdown

	Config     Config
	CtxdLogger ctxd.Logger

	TodoFinderProvider
	TodoMutatorProvider
	TodoWatcherProvider
}
