package boltstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/backend/boltstore"
)

func TestGetMissingKey(t *testing.T) {
	store, err := boltstore.Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer store.Close()

	v, err := store.Get("tasks")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestPutGetRoundTrip(t *testing.T) {
	store, err := boltstore.Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("tasks", []byte(`{"version":1}`)))

	v, err := store.Get("tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1}`), v)
}

func TestPutOverwrites(t *testing.T) {
	store, err := boltstore.Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("tasks", []byte("first")))
	require.NoError(t, store.Put("tasks", []byte("second")))

	v, err := store.Get("tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), v)
}

func TestValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")

	store, err := boltstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Put("tasks", []byte("durable")))
	require.NoError(t, store.Close())

	reopened, err := boltstore.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get("tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), v)
}
