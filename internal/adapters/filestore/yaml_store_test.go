package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscripts/guion/internal/domain"
)

func TestYAMLStore_MissingFile(t *testing.T) {
	store := NewYAMLStore(filepath.Join(t.TempDir(), "prefs.yaml"))

	value, found, err := store.GetString(context.Background(), "theme")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestYAMLStore_SetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	store := NewYAMLStore(path)
	ctx := context.Background()

	require.NoError(t, store.SetString(ctx, "theme", `"dark"`))
	require.NoError(t, store.SetString(ctx, "agent", `{"identifier":"x"}`))

	value, found, err := store.GetString(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `"dark"`, value)

	// A fresh instance reads the same file
	reopened := NewYAMLStore(path)
	value, found, err = reopened.GetString(ctx, "agent")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"identifier":"x"}`, value)

	require.NoError(t, store.Delete(ctx, "agent"))
	require.NoError(t, store.Delete(ctx, "agent"))
	_, found, err = store.GetString(ctx, "agent")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestYAMLStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store := NewYAMLStore(filepath.Join(dir, "prefs.yaml"))

	require.NoError(t, store.SetString(context.Background(), "theme", "light"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prefs.yaml", entries[0].Name())
}

func TestYAMLStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0644))
	store := NewYAMLStore(path)

	_, _, err := store.GetString(context.Background(), "theme")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
