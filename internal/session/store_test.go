package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session")
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := newStorePath(t)

	store := New(path)
	require.NoError(t, store.Load())
	require.Empty(t, store.Token())
	require.NoError(t, store.SetToken("T1"))

	// A fresh store over the same file sees the persisted credential.
	reloaded := New(path)
	require.NoError(t, reloaded.Load())
	require.Equal(t, "T1", reloaded.Token())
}

func TestClearIsIdempotent(t *testing.T) {
	path := newStorePath(t)
	store := New(path)
	require.NoError(t, store.Load())

	store.Clear()
	store.Clear()
	require.Empty(t, store.Token())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestClearRemovesPersistedToken(t *testing.T) {
	path := newStorePath(t)
	store := New(path)
	require.NoError(t, store.SetToken("T1"))

	store.Clear()

	reloaded := New(path)
	require.NoError(t, reloaded.Load())
	require.Empty(t, reloaded.Token())
}

func TestSubscribersSeeNewTokenBeforeSetReturns(t *testing.T) {
	store := New(newStorePath(t))

	var observed []string
	store.Subscribe(func(token string) {
		// Token() must already report the published value (no torn reads).
		require.Equal(t, token, store.Token())
		observed = append(observed, token)
	})

	require.NoError(t, store.SetToken("T1"))
	require.Equal(t, []string{"T1"}, observed)

	require.NoError(t, store.SetToken("T2"))
	store.Clear()
	require.Equal(t, []string{"T1", "T2", ""}, observed)
}

func TestSetTokenOverwritesPrevious(t *testing.T) {
	path := newStorePath(t)
	store := New(path)
	require.NoError(t, store.SetToken("T1"))
	require.NoError(t, store.SetToken("T2"))
	require.Equal(t, "T2", store.Token())

	reloaded := New(path)
	require.NoError(t, reloaded.Load())
	require.Equal(t, "T2", reloaded.Token())
}
