package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSetGetDelete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("fridge:1", record{Name: "milk", Count: 2}))

	var got record
	require.NoError(t, store.Get("fridge:1", &got))
	assert.Equal(t, record{Name: "milk", Count: 2}, got)

	require.NoError(t, store.Delete("fridge:1"))

	err := store.Get("fridge:1", &got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "fridge:1")
}

func TestGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	var got record
	err := store.Get("recipe:42:nope", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByPrefix(t *testing.T) {
	store := newTestStore(t)

	for _, key := range []string{"recipe:1:a", "recipe:1:b", "recipe:2:a", "fridge:1"} {
		require.NoError(t, store.Set(key, record{Name: key}))
	}

	keys, err := store.List("recipe:1:")
	require.NoError(t, err)
	assert.Equal(t, []string{"recipe:1:a", "recipe:1:b"}, keys)

	keys, err = store.List("stats:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
