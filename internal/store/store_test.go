package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"nexx/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetAndGet(t *testing.T) {
	s, err := store.New(t.TempDir(), "nexx")
	require.NoError(t, err)

	type record struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	ok := s.Set("products", []record{{Name: "Filter", Price: 1200}})
	assert.True(t, ok)

	var got []record
	assert.True(t, s.Get("products", &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "Filter", got[0].Name)
	assert.Equal(t, 1200.0, got[0].Price)
}

func TestStore_GetMissingKey(t *testing.T) {
	s, err := store.New(t.TempDir(), "nexx")
	require.NoError(t, err)

	var got []string
	assert.False(t, s.Get("never_written", &got), "missing key reads as uninitialized")
	assert.Nil(t, got)
}

func TestStore_GetCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	s, err := store.New(dir, "nexx")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "nexx_cart.json"), []byte("{not json"), 0o644))

	var got []string
	assert.False(t, s.Get("cart", &got), "corrupt document reads as uninitialized")
}

func TestStore_SetReplacesPreviousValue(t *testing.T) {
	s, err := store.New(t.TempDir(), "nexx")
	require.NoError(t, err)

	assert.True(t, s.Set("counter", 1))
	assert.True(t, s.Set("counter", 2))

	var got int
	assert.True(t, s.Get("counter", &got))
	assert.Equal(t, 2, got)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s, err := store.New(t.TempDir(), "nexx")
	require.NoError(t, err)

	assert.True(t, s.Set("session", "abc"))
	assert.True(t, s.Delete("session"))
	assert.True(t, s.Delete("session"), "deleting a missing key succeeds")

	var got string
	assert.False(t, s.Get("session", &got))
}

func TestStore_PrefixIsolation(t *testing.T) {
	dir := t.TempDir()
	a, err := store.New(dir, "alpha")
	require.NoError(t, err)
	b, err := store.New(dir, "beta")
	require.NoError(t, err)

	assert.True(t, a.Set("users", []string{"one"}))

	var got []string
	assert.False(t, b.Get("users", &got), "stores with different prefixes do not share keys")
}
