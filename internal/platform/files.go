package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrExists is returned by CreateDir when the directory is already present.
var ErrExists = errors.New("already exists")

// OSFileSystem performs real filesystem operations.
type OSFileSystem struct{}

// CreateDir creates path and any missing parents. Unlike os.MkdirAll it
// reports ErrExists when path is already there, so re-runs are visible.
func (OSFileSystem) CreateDir(path string) error {
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s: %w and is not a directory", path, ErrExists)
		}
		return fmt.Errorf("%s: %w", path, ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.MkdirAll(path, 0755)
}

// Create creates or truncates the named file.
func (OSFileSystem) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}
