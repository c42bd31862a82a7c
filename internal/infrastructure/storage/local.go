package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// LocalStore writes ticket files to a directory on disk. Intended for
// development and tests; the access URL is served from BaseURL.
type LocalStore struct {
	fs      afero.Fs
	dir     string
	baseURL string
}

// NewLocalStore creates a disk-backed blob store rooted at dir.
func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{fs: afero.NewOsFs(), dir: dir, baseURL: baseURL}
}

// NewLocalStoreWithFs creates a LocalStore over an explicit filesystem.
func NewLocalStoreWithFs(fs afero.Fs, dir, baseURL string) *LocalStore {
	return &LocalStore{fs: fs, dir: dir, baseURL: baseURL}
}

// Put writes the blob to dir/name and returns the name plus a URL under BaseURL.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte, contentType string) (*PutResult, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, name)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return nil, fmt.Errorf("storage: failed to write %s: %w", path, err)
	}

	return &PutResult{
		Name: name,
		URL:  s.baseURL + "/" + name,
	}, nil
}
