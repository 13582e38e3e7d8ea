package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscripts/guion/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store := newTestStore(t)

	var theme string
	found, err := store.Get(context.Background(), domain.KeyTheme, &theme)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, theme)
}

func TestSQLiteStore_SetGetStructuredValue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	agent := domain.AgentPreference{Identifier: "12345678k", DisplayName: "Ana"}
	require.NoError(t, store.Set(ctx, domain.KeyAgent, agent))

	var got domain.AgentPreference
	found, err := store.Get(ctx, domain.KeyAgent, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, agent, got)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.KeyTheme, domain.ThemeDark))
	require.NoError(t, store.Set(ctx, domain.KeyTheme, domain.ThemeLight))

	var theme domain.Theme
	found, err := store.Get(ctx, domain.KeyTheme, &theme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestSQLiteStore_DeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.KeyAgent, domain.AgentPreference{Identifier: "x", DisplayName: "x"}))
	require.NoError(t, store.Delete(ctx, domain.KeyAgent))
	require.NoError(t, store.Delete(ctx, domain.KeyAgent))

	var got domain.AgentPreference
	found, err := store.Get(ctx, domain.KeyAgent, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewSQLiteStoreForPath(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, domain.KeyTheme, domain.ThemeDark))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStoreForPath(dir)
	require.NoError(t, err)
	defer reopened.Close()

	var theme domain.Theme
	found, err := reopened.Get(ctx, domain.KeyTheme, &theme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestUnavailableStore(t *testing.T) {
	store := NewUnavailableStore(errors.New("disk full"))
	ctx := context.Background()

	_, err := store.Get(ctx, "k", new(string))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "disk full")
	assert.ErrorIs(t, store.Set(ctx, "k", "v"), domain.ErrStoreUnavailable)
	assert.ErrorIs(t, store.Delete(ctx, "k"), domain.ErrStoreUnavailable)
}

func TestWithRetry_WrapsLastBusyError(t *testing.T) {
	calls := 0
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	err := withRetry(func() error {
		calls++
		return busy
	}, 2)

	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "after 2 retries")
	var sqliteErr sqlite3.Error
	require.ErrorAs(t, err, &sqliteErr)
	assert.Equal(t, sqlite3.ErrBusy, sqliteErr.Code)
}

func TestWithRetry_OtherErrorsFailFast(t *testing.T) {
	calls := 0
	boom := errors.New("constraint failed")

	err := withRetry(func() error {
		calls++
		return boom
	}, maxRetries)

	assert.Equal(t, 1, calls)
	assert.Same(t, boom, err)
}
