package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDefaultName(t *testing.T) {
	dir := t.TempDir()
	path, err := Save("void OnTick(){}", dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultFilename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "void OnTick(){}\n", string(data))
}

func TestSaveAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := Save("int x;", dir, "Breakout")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Breakout.mq5"), path)
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	path, err := Save("int x;", dir, "EA.mq5")
	require.NoError(t, err)
	assert.FileExists(t, path)
}
