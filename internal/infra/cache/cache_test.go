package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggest/todomvc/internal/infra/cache"
)

func TestCache_ReadWrite(t *testing.T) {
	c := cache.New[[]int]()

	v, ok := c.Read("k")
	assert.False(t, ok)
	assert.Nil(t, v)

	c.Write("k", []int{1, 2})

	v, ok = c.Read("k")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	_, ok = c.Read("other")
	assert.False(t, ok)
}

func TestCache_Subscribe(t *testing.T) {
	c := cache.New[int]()

	s := c.Subscribe("k")
	other := c.Subscribe("other")

	assert.Equal(t, 1, c.Subscribers("k"))

	c.Write("k", 1)
	assert.Equal(t, 1, <-s.C())

	// Slow subscriber sees the latest value only.
	c.Write("k", 2)
	c.Write("k", 3)
	assert.Equal(t, 3, <-s.C())

	select {
	case v := <-other.C():
		t.Fatalf("unexpected value for other key: %d", v)
	default:
	}

	s.Close()
	s.Close()

	_, open := <-s.C()
	assert.False(t, open)
	assert.Equal(t, 0, c.Subscribers("k"))

	// Writes after close do not block.
	c.Write("k", 4)
	other.Close()
}

func TestCache_concurrentWrites(t *testing.T) {
	c := cache.New[int]()
	s := c.Subscribe("k")

	defer s.Close()

	wg := sync.WaitGroup{}

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			c.Write("k", i)
		}(i)
	}

	wg.Wait()

	last, ok := c.Read("k")
	require.True(t, ok)
	assert.Equal(t, last, <-s.C())
}
