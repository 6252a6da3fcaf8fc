package inmem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	data, err := store.Get(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, 0, store.Len(), "get does not create")

	payload := []byte(`{"view":"home"}`)
	require.NoError(t, store.Put(ctx, "a", payload))
	payload[2] = 'X'

	data, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `{"view":"home"}`, string(data))

	require.NoError(t, store.Delete(ctx, "a"))
	data, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Put(ctx, "old", []byte("{}")))
	require.NoError(t, store.Put(ctx, "read", []byte("{}")))

	now = now.Add(2 * time.Hour)
	require.NoError(t, store.Put(ctx, "fresh", []byte("{}")))
	_, err := store.Get(ctx, "read")
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	n, err := store.Sweep(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, store.Len())

	data, _ := store.Get(ctx, "old")
	assert.Nil(t, data)
	data, _ = store.Get(ctx, "read")
	assert.NotNil(t, data)
}
