package gitops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_UniqueDirectories(t *testing.T) {
	root := t.TempDir()

	first, err := Acquire(root)
	require.NoError(t, err)
	second, err := Acquire(root)
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	assert.DirExists(t, first.Path)
	assert.Equal(t, root, filepath.Dir(first.Path))
}

func TestRelease_RemovesContents(t *testing.T) {
	ws, err := Acquire(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(ws.Path, "leftover"), []byte("x"), 0o600))

	require.NoError(t, ws.Release())

	assert.NoDirExists(t, ws.Path)
}
