package docstore

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	payload := []byte("%PDF-1.4 fake document")
	require.NoError(t, store.Put(ctx, "sessions/s1/items/i1", bytes.NewReader(payload), int64(len(payload)), "application/pdf"))

	got, err := store.Get(ctx, "sessions/s1/items/i1")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Returned slice is a copy; mutating it must not affect the store.
	got[0] = 'X'
	again, err := store.Get(ctx, "sessions/s1/items/i1")
	require.NoError(t, err)
	assert.Equal(t, payload, again)

	require.NoError(t, store.Delete(ctx, "sessions/s1/items/i1"))
	_, err = store.Get(ctx, "sessions/s1/items/i1")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemoryStore_DeleteMissingKeyIsNoop(t *testing.T) {
	store := NewMemoryStore()

	assert.NoError(t, store.Delete(context.Background(), "nope"))
}
