// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths.
// A missing root is treated as "no files" so callers can probe optional paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}
	return find(rootPath, func(name string) bool {
		return strings.HasSuffix(name, extension)
	})
}

// FindFilesByName recursively searches the given root path for all files whose
// base name equals one of the provided names, in walk order.
func FindFilesByName(rootPath string, names ...string) ([]string, error) {
	if len(names) == 0 {
		panic("at least one file name is required")
	}
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}
	return find(rootPath, func(name string) bool {
		_, ok := wanted[name]
		return ok
	})
}

func find(rootPath string, match func(name string) bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && match(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return files, nil
}
