package persist_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggest/todomvc/internal/infra/persist"
)

func testStorage(t *testing.T, s persist.Storage) {
	t.Helper()

	ctx := context.Background()

	_, found, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetItem(ctx, "k", []byte(`{"a":1}`)))
	require.NoError(t, s.SetItem(ctx, "k", []byte(`{"a":2}`)))

	v, found, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"a":2}`, string(v))

	require.NoError(t, s.RemoveItem(ctx, "k"))
	require.NoError(t, s.RemoveItem(ctx, "k"))

	_, found, err = s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory(t *testing.T) {
	testStorage(t, &persist.Memory{})
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todomvc.sqlite3")

	s, err := persist.OpenSQLite(ctx, path)
	require.NoError(t, err)

	testStorage(t, s)

	require.NoError(t, s.SetItem(ctx, "kept", []byte("value")))
	require.NoError(t, s.Close())

	// Value survives reopening.
	s, err = persist.OpenSQLite(ctx, path)
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, s.Close())
	}()

	v, found, err := s.GetItem(ctx, "kept")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "value", string(v))
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_URL is not set")
	}

	s, err := persist.OpenPostgres(context.Background(), dsn)
	require.NoError(t, err)

	defer s.Close()

	testStorage(t, s)
}
