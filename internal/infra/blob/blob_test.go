package blob_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davantedent/clinic-scheduler/internal/infra/blob"
	"github.com/davantedent/clinic-scheduler/internal/store"
)

func TestMemoryBlob(t *testing.T) {
	ctx := context.Background()
	b := blob.NewMemoryBlob()

	_, err := b.Get(ctx)
	assert.ErrorIs(t, err, store.ErrNoData)

	require.NoError(t, b.Set(ctx, `[{"id":"1"}]`, 0))

	got, err := b.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, got)
}

func TestFileBlob(t *testing.T) {
	ctx := context.Background()
	b := blob.NewFileBlob(filepath.Join(t.TempDir(), "citas.json"))

	_, err := b.Get(ctx)
	assert.ErrorIs(t, err, store.ErrNoData)

	require.NoError(t, b.Set(ctx, "first", 0))
	require.NoError(t, b.Set(ctx, "second", 0))

	got, err := b.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}
