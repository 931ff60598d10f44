package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CreateTempFile exclusively creates name inside dir. The returned cleanup
// closes and removes the file; it is safe to call more than once.
func CreateTempFile(dir, name string) (*os.File, func(), error) {
	if name != filepath.Base(name) {
		return nil, nil, fmt.Errorf("temp file name %q must not contain a path", name)
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			_ = f.Close()
			_ = os.Remove(path)
		})
	}
	return f, cleanup, nil
}
