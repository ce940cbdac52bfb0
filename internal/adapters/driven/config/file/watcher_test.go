package file

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	reloaded := make(chan struct{}, 1)
	watcher, err := NewWatcher(store, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer watcher.Close()

	// Rewrite the config file out from under the store.
	content := "search_limit = true\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload config")
	}

	assert.True(t, store.GetBool("search_limit"))
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "original"))

	reloaded := make(chan struct{}, 1)
	watcher, err := NewWatcher(store, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer watcher.Close()

	other := tmpDir + "/unrelated.txt"
	require.NoError(t, os.WriteFile(other, []byte("noise"), 0600))

	select {
	case <-reloaded:
		t.Fatal("watcher reloaded for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	assert.Equal(t, "original", store.GetString("key"))
}

func TestWatcher_Close(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	watcher, err := NewWatcher(store, nil)
	require.NoError(t, err)

	assert.NoError(t, watcher.Close())
}
