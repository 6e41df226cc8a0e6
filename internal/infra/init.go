package infra

import (
	"context"
	"fmt"
	"os"

	"github.com/swaggest/todomvc/internal/infra/dispatcher"
	"github.com/swaggest/todomvc/internal/infra/log"
	"github.com/swaggest/todomvc/internal/infra/persist"
	"github.com/swaggest/todomvc/internal/infra/remote"
	"github.com/swaggest/todomvc/internal/infra/repository"
	"github.com/swaggest/todomvc/internal/infra/service"
)

// NewServiceLocator initializes application resources.
func NewServiceLocator(cfg service.Config) (*service.Locator, error) {
	l := service.Locator{}
	l.Config = cfg
	l.Timeout = cfg.ShutdownTimeout
	l.CtxdLogger = log.New(cfg.Config, os.Stderr)

	if cfg.DataSource == service.DataSourceRemote {
		if cfg.RemoteURL == "" {
			return nil, fmt.Errorf("missing REMOTE_URL for %s data source", service.DataSourceRemote)
		}

		c := remote.NewClient(cfg.RemoteURL)
		c.Logger = l.CtxdLogger

		l.TodoFinderProvider = c
		l.TodoMutatorProvider = c
		l.TodoWatcherProvider = c

		return &l, nil
	}

	store := repository.NewTodo()

	d := dispatcher.New(store)
	d.Logger = l.CtxdLogger

	l.TodoFinderProvider = d
	l.TodoMutatorProvider = d
	l.TodoWatcherProvider = d

	if err := setupPersistence(&l, cfg, store); err != nil {
		return nil, err
	}

	return &l, nil
}

func setupPersistence(l *service.Locator, cfg service.Config, store *repository.Todo) error {
	ctx := context.Background()

	var (
		storage persist.Storage
		closer  = func() {}
	)

	switch cfg.Storage {
	case "", service.StorageNone:
		return nil
	case service.StorageMemory:
		storage = &persist.Memory{}
	case service.StorageSQLite:
		s, err := persist.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}

		storage = s
		closer = func() {
			if err := s.Close(); err != nil {
				l.CtxdLogger.Error(ctx, "failed to close sqlite", "error", err)
			}
		}
	case service.StoragePostgres:
		s, err := persist.OpenPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			return err
		}

		storage = s
		closer = s.Close
	default:
		return fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	p := persist.NewPersistor(store, storage)
	p.Logger = l.CtxdLogger
	p.Debounce = cfg.PersistDebounce

	if cfg.StorageKey != "" {
		p.Key = cfg.StorageKey
	}

	if cfg.StoragePurge {
		if err := p.Purge(ctx); err != nil {
			l.CtxdLogger.Warn(ctx, "state not yet durable", "error", err)
		}
	} else if err := p.Restore(ctx); err != nil {
		l.CtxdLogger.Warn(ctx, "failed to restore store, starting empty", "error", err)
	}

	shutdown, done := l.ShutdownSignal("persist")
	flushed := make(chan struct{})

	p.Start(shutdown, flushed)

	go func() {
		<-flushed
		closer()
		close(done)
	}()

	return nil
}
