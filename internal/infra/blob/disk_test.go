package blob_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zach0583-rgb/ThatZachGuy/internal/infra/blob"
)

func TestDiskStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := blob.NewDiskStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	n, err := store.Save(ctx, "abc.png", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	data, err := os.ReadFile(filepath.Join(dir, "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Delete(ctx, "abc.png"))
	_, err = os.Stat(filepath.Join(dir, "abc.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStore_DeleteMissingIsNotAnError(t *testing.T) {
	store, err := blob.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-existed.bin"))
}

func TestDiskStore_SaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := blob.NewDiskStore(dir)
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "../escape.txt", strings.NewReader("x"))
	require.NoError(t, err)

	// The blob lands inside the store directory, never outside it.
	_, statErr := os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := blob.NewDiskStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
