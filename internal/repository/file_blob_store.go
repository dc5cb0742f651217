package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	domainRepo "medibook/internal/domain/repository"
)

type fileBlobStore struct {
	dir string
}

// NewFileBlobStore persists each key as a JSON file under dir. This is the
// default backend: no external service, one file per named blob.
func NewFileBlobStore(dir string) (domainRepo.BlobStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &fileBlobStore{dir: dir}, nil
}

func (s *fileBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainRepo.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

func (s *fileBlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

func (s *fileBlobStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
