package repository

import (
	"context"
	"fmt"

	domainRepo "medibook/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "medibook:blob:"

type redisBlobStore struct {
	client *redis.Client
}

// NewRedisBlobStore persists each key as a Redis string. Values never expire;
// the booking store overwrites the full blob on every mutation.
func NewRedisBlobStore(client *redis.Client) domainRepo.BlobStore {
	return &redisBlobStore{client: client}
}

func (s *redisBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domainRepo.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s from redis: %w", key, err)
	}
	return data, nil
}

func (s *redisBlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write blob %s to redis: %w", key, err)
	}
	return nil
}
