package nethttp_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggest/todomvc/internal/domain/todo"
)

func Test_live(t *testing.T) {
	l, srv := newServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/todos/live", nil)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	defer func() {
		assert.NoError(t, conn.Close())
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var todos []todo.Todo

	require.NoError(t, conn.ReadJSON(&todos))
	assert.Empty(t, todos)

	_, err = l.TodoMutator().Mutate(context.Background(), todo.AddTodo{Text: "Do the laundry"})
	require.NoError(t, err)

	require.NoError(t, conn.ReadJSON(&todos))
	assert.Equal(t, []todo.Todo{{ID: 0, Text: "Do the laundry"}}, todos)
}
