package fsops

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DefaultExclude lists directory and file names skipped during a walk.
var DefaultExclude = []string{".git", "node_modules", ".DS_Store"}

// Walker enumerates regular files below a root directory.
type Walker struct {
	exclude map[string]bool
}

// NewWalker returns a Walker that skips entries whose base name is listed
// in exclude. Excluded directories are not descended into.
func NewWalker(exclude []string) *Walker {
	w := &Walker{exclude: make(map[string]bool, len(exclude))}
	for _, name := range exclude {
		w.exclude[name] = true
	}
	return w
}

// Walk returns every regular file under root, recursively, sorted
// lexicographically. Symlinks and special files are skipped. Any error
// reading root or a directory below it fails the whole walk.
func (w *Walker) Walk(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path != root && w.exclude[d.Name()] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Walk enumerates root with DefaultExclude.
func Walk(root string) ([]string, error) {
	return NewWalker(DefaultExclude).Walk(root)
}
