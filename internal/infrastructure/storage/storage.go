package storage

import "context"

// PutResult describes where a stored blob ended up.
type PutResult struct {
	Name string
	URL  string
}

// BlobStore accepts a named binary blob and returns the assigned name and a
// retrievable access URL. Each ticket gets a fresh, uniquely named file, so
// implementations never need to handle overwrite contention.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (*PutResult, error)
}
