package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetDel(t *testing.T) {
	t.Parallel()

	r := New()
	require.Equal(t, 0, r.Len())

	id := r.Put("first")
	v, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, r.Len())

	r.Del(id)
	_, ok = r.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestDelUnknownIsNoop(t *testing.T) {
	t.Parallel()

	r := New()
	r.Del(42)
	assert.Equal(t, 0, r.Len())
}

func TestIDsAreNotReused(t *testing.T) {
	t.Parallel()

	r := New()
	a := r.Put("a")
	r.Del(a)
	b := r.Put("b")
	assert.NotEqual(t, a, b)
}

func TestConcurrentPutDel(t *testing.T) {
	t.Parallel()

	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := r.Put(j)
				r.Del(id)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, r.Len())
}
