package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Old.mq5"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("b"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.mq5"), 0o755))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "Old.mq5"), old, old))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "New.mq5"), []byte("c"), 0o644))

	entries, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "New.mq5", entries[0].Name)
	assert.Equal(t, "Old.mq5", entries[1].Name)
}

func TestScanMissingDirIsEmpty(t *testing.T) {
	entries, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWatcherSignalsOnSave(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "EA.mq5"), []byte("int x;"), 0o644))

	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("no change event after writing a .mq5 file")
	}
}
