package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bool64/ctxd"
	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/todomvc/internal/infra/repository"
)

// DefaultKey is the storage key of todo store snapshot.
const DefaultKey = "todomvc-cache"

// Persistor restores todo store from storage and writes it back after changes.
//
// Storage failures leave the state not yet durable, they are logged and never stop the store.
type Persistor struct {
	Key      string
	Debounce time.Duration
	Logger   ctxd.Logger

	storage Storage
	store   *repository.Todo
}

// NewPersistor creates persistor of store.
func NewPersistor(store *repository.Todo, storage Storage) *Persistor {
	return &Persistor{
		Key:     DefaultKey,
		Logger:  ctxd.NoOpLogger{},
		storage: storage,
		store:   store,
	}
}

// Restore loads stored snapshot into store, missing item leaves the store untouched.
func (p *Persistor) Restore(ctx context.Context) error {
	value, found, err := p.storage.GetItem(ctx, p.Key)
	if err != nil {
		return ctxd.WrapError(ctx, err, "get stored snapshot", "key", p.Key)
	}

	if !found {
		return nil
	}

	var s todo.Snapshot

	if err := json.Unmarshal(value, &s); err != nil {
		return ctxd.WrapError(ctx, err, "decode stored snapshot", "key", p.Key)
	}

	// Counter must stay ahead of restored ids.
	for _, t := range s.Todos {
		if t.ID >= s.NextID {
			s.NextID = t.ID + 1
		}
	}

	p.store.Write(s)
	p.Logger.Info(ctx, "store restored", "key", p.Key, "count", len(s.Todos))

	return nil
}

// Purge removes stored snapshot.
func (p *Persistor) Purge(ctx context.Context) error {
	if err := p.storage.RemoveItem(ctx, p.Key); err != nil {
		return ctxd.WrapError(ctx, err, "remove stored snapshot", "key", p.Key)
	}

	return nil
}

// Flush writes current snapshot to storage.
func (p *Persistor) Flush(ctx context.Context) error {
	value, err := json.Marshal(p.store.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := p.storage.SetItem(ctx, p.Key, value); err != nil {
		return ctxd.WrapError(ctx, err, "set stored snapshot", "key", p.Key)
	}

	return nil
}

// Start writes snapshot after store changes until shutdown is closed.
//
// Pending changes are flushed before done is closed.
func (p *Persistor) Start(shutdown <-chan struct{}, done chan<- struct{}) {
	sub := p.store.Subscribe()

	go func() {
		defer close(done)
		defer sub.Close()

		var (
			timer   *time.Timer
			flushed <-chan time.Time
			dirty   bool
		)

		flush := func() {
			dirty = false
			ctx := context.Background()

			if err := p.Flush(ctx); err != nil {
				p.Logger.Warn(ctx, "state not yet durable", "error", err)
			}
		}

		for {
			select {
			case <-sub.C():
				dirty = true

				if p.Debounce <= 0 {
					flush()

					continue
				}

				if timer == nil {
					timer = time.NewTimer(p.Debounce)
					flushed = timer.C
				}
			case <-flushed:
				timer, flushed = nil, nil

				flush()
			case <-shutdown:
				if timer != nil {
					timer.Stop()
				}

				select {
				case <-sub.C():
					dirty = true
				default:
				}

				if dirty {
					flush()
				}

				return
			}
		}
	}()
}
