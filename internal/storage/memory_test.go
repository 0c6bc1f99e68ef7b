package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "dev-1", KeyToken)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "dev-1", KeyToken, "abc"))
	require.NoError(t, m.Set(ctx, "dev-1", KeyNickname, "kim"))

	v, err := m.Get(ctx, "dev-1", KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	t.Run("devices are isolated", func(t *testing.T) {
		_, err := m.Get(ctx, "dev-2", KeyToken)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	require.NoError(t, m.Remove(ctx, "dev-1", SessionKeys...))
	_, err = m.Get(ctx, "dev-1", KeyNickname)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_RemoveUnknownDevice(t *testing.T) {
	m := NewMemory()
	assert.NoError(t, m.Remove(context.Background(), "nobody", KeyCart))
}
