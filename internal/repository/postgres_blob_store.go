package repository

import (
	"context"
	"errors"
	"fmt"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresBlobStore struct {
	db *gorm.DB
}

// NewPostgresBlobStore persists each key as one row in appointment_blobs.
// Put is an upsert, so the write-through overwrite maps to a single statement.
func NewPostgresBlobStore(db *gorm.DB) domainRepo.BlobStore {
	return &postgresBlobStore{db: db}
}

func (s *postgresBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var blob entity.AppointmentBlob
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRepo.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s from postgres: %w", key, err)
	}
	return blob.Data, nil
}

func (s *postgresBlobStore) Put(ctx context.Context, key string, data []byte) error {
	blob := entity.AppointmentBlob{Key: key, Data: data}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("failed to write blob %s to postgres: %w", key, err)
	}
	return nil
}
