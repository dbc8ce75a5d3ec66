package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	files := []string{
		"b.hcl",
		"a.yaml",
		"notes.txt",
		filepath.Join("nested", "c.YML"),
		filepath.Join("nested", "deeper", "d.hcl"),
	}
	for _, f := range files {
		full := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}

	// --- Act ---
	found, err := FindFilesByExtension(root, ".hcl", ".yaml", ".yml")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.yaml"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.YML"),
		filepath.Join(root, "nested", "deeper", "d.hcl"),
	}, found)
}

func TestFindFilesByExtension_Errors(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir()) })
	assert.Panics(t, func() { HasExtension("a.hcl", "") })
}
