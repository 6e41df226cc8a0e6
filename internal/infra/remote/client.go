// Package remote provides todo collection backed by another todomvc instance.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bool64/ctxd"
	"github.com/gorilla/websocket"
	"github.com/swaggest/todomvc/internal/domain/todo"
	"github.com/swaggest/usecase/status"
)

// Client executes operations over HTTP.
//
// Failed requests are not retried.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Dialer     *websocket.Dialer
	Logger     ctxd.Logger
}

var (
	_ todo.Finder  = &Client{}
	_ todo.Mutator = &Client{}
	_ todo.Watcher = &Client{}
)

// NewClient creates client of todomvc instance at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
		Dialer:     websocket.DefaultDialer,
		Logger:     ctxd.NoOpLogger{},
	}
}

// TodoFinder is a service provider.
func (c *Client) TodoFinder() todo.Finder {
	return c
}

// TodoMutator is a service provider.
func (c *Client) TodoMutator() todo.Mutator {
	return c
}

// TodoWatcher is a service provider.
func (c *Client) TodoWatcher() todo.Watcher {
	return c
}

// Todos queries current collection.
func (c *Client) Todos(ctx context.Context) ([]todo.Todo, error) {
	res, err := c.exec(ctx, todo.Operation{OperationName: todo.OperationTodos})
	if err != nil {
		return nil, err
	}

	return res.Todos, nil
}

// Mutate sends mutation.
func (c *Client) Mutate(ctx context.Context, m todo.Mutation) (todo.Result, error) {
	return c.exec(ctx, todo.Operation{OperationName: m.Name(), Variables: m.Variables()})
}

func (c *Client) exec(ctx context.Context, op todo.Operation) (todo.Result, error) {
	var res todo.Result

	body, err := json.Marshal(op)
	if err != nil {
		return res, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/operations", bytes.NewReader(body))
	if err != nil {
		return res, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return res, ctxd.WrapError(ctx, fmt.Errorf("%w: %w", status.Unavailable, err),
			"operation failed", "operation", op.OperationName)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.Logger.Warn(ctx, "failed to close response body", "error", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, fmt.Errorf("%w: read response: %w", status.Unavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return res, responseError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("%w: decode response: %w", status.Unavailable, err)
	}

	if res.Todos == nil {
		res.Todos = []todo.Todo{}
	}

	return res, nil
}

func responseError(code int, data []byte) error {
	var e struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}

	if err := json.Unmarshal(data, &e); err != nil || e.Error == "" {
		return fmt.Errorf("%w: unexpected response status %d", status.Unavailable, code)
	}

	if code < http.StatusInternalServerError {
		return fmt.Errorf("%w: %s", status.InvalidArgument, e.Error)
	}

	return fmt.Errorf("%w: %s", status.Unavailable, e.Error)
}

// Watch subscribes to live collection feed.
//
// Values received faster than consumed are coalesced to the latest one.
func (c *Client) Watch(ctx context.Context) (<-chan []todo.Todo, error) {
	u := c.BaseURL + "/api/todos/live"

	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}

	conn, resp, err := c.Dialer.DialContext(ctx, u, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	if err != nil {
		return nil, ctxd.WrapError(ctx, fmt.Errorf("%w: %w", status.Unavailable, err), "dial live feed", "url", u)
	}

	out := make(chan []todo.Todo, 1)
	closed := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
		case <-closed:
		}

		_ = conn.Close()
	}()

	go func() {
		defer close(out)
		defer close(closed)

		for {
			var todos []todo.Todo

			if err := conn.ReadJSON(&todos); err != nil {
				if ctx.Err() == nil {
					c.Logger.Warn(ctx, "live feed closed", "error", err)
				}

				return
			}

			if todos == nil {
				todos = []todo.Todo{}
			}

			// Latest value wins.
			select {
			case <-out:
			default:
			}

			out <- todos
		}
	}()

	return out, nil
}
