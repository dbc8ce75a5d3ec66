// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files
// ending with one of the given extensions. Matching is case-insensitive and
// results come back in lexical walk order.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && HasExtension(d.Name(), extensions...) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// HasExtension reports whether name ends with one of extensions.
func HasExtension(name string, extensions ...string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if ext == "" {
			panic("extension must not be empty")
		}
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
