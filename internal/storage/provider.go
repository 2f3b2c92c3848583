// Package storage defines the interface for artifact blob stores.
// This abstraction keeps the generator independent of where artifacts land
// (the local public directory, a Google Cloud Storage bucket, or memory).
package storage

import (
	"context"
	"io"
)

// BlobStore writes an artifact under path and returns a URI for it.
// Implementations must fully replace any prior content at path.
type BlobStore interface {
	PutObject(ctx context.Context, path string, contentType string, data io.Reader) (string, error)
}

// NoOpStore is a store that performs no operations.
// It is useful for dry runs where artifacts are generated but not saved.
type NoOpStore struct{}

// PutObject for NoOpStore does nothing and returns an empty URI.
func (NoOpStore) PutObject(_ context.Context, _ string, _ string, _ io.Reader) (string, error) {
	return "", nil
}
