// internal/storage/archive/localfs.go
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jstrand/tradelog/internal/core"
)

// LocalFS stores screenshots under a base directory on the local filesystem.
type LocalFS struct {
	basePath string
}

// NewLocalFS creates the base directory if needed and returns the store.
func NewLocalFS(basePath string) (*LocalFS, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating base path: %w", err)
	}
	return &LocalFS{basePath: basePath}, nil
}

func (l *LocalFS) fullPath(key string) string {
	return filepath.Join(l.basePath, filepath.FromSlash(key))
}

func (l *LocalFS) Write(ctx context.Context, key string, data []byte) error {
	path := l.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return core.WrapError(core.ErrArchiveFailed, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return core.WrapError(core.ErrArchiveFailed, err)
	}
	return nil
}

func (l *LocalFS) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(l.fullPath(key))
	if os.IsNotExist(err) {
		return nil, core.ErrImageNotFound
	}
	if err != nil {
		return nil, core.WrapError(core.ErrArchiveFailed, err)
	}
	return data, nil
}

func (l *LocalFS) Delete(ctx context.Context, key string) error {
	if err := os.Remove(l.fullPath(key)); err != nil && !os.IsNotExist(err) {
		return core.WrapError(core.ErrArchiveFailed, err)
	}
	return nil
}

func (l *LocalFS) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(l.fullPath(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
