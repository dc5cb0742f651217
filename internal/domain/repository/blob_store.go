package repository

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Get when no value has ever been written
// under the key. Callers treat it as empty state, not a failure.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore persists one opaque value per named key. The booking store uses a
// single fixed key holding the serialized appointment list; backends are
// interchangeable (file, redis, postgres).
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
