// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFiles creates every file of files below root. Keys are slash
// separated relative paths; missing parent directories are created.
// It returns root for chaining.
func WriteFiles(t *testing.T, root string, files map[string]string) string {
	t.Helper()

	for name, content := range files {
		filePath := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return root
}

// ReadFile returns the content of path, failing the test when it cannot be
// read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

// RequireAbsent fails the test when path exists.
func RequireAbsent(t *testing.T, path string) {
	t.Helper()

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, "expected %s not to exist", path)
}
