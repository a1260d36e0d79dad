//go:generate mockery --name StorageRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageRepository は storage_buckets / storage_permissions テーブルへのアクセスを提供します。
type StorageRepository interface {
	CreateBucket(ctx context.Context, db *gorm.DB, bucket *model.StorageBucket) error
	FindBucketByID(ctx context.Context, db *gorm.DB, bucketID uuid.UUID) (*model.StorageBucket, error)
	ListBuckets(ctx context.Context, db *gorm.DB) ([]*model.StorageBucket, error)
	DeleteBucket(ctx context.Context, tx *gorm.DB, bucketID uuid.UUID) error
	FindPermission(ctx context.Context, db *gorm.DB, bucketID, userID uuid.UUID) (*model.StoragePermission, error)
	ListPermissions(ctx context.Context, db *gorm.DB, bucketID uuid.UUID) ([]*model.StoragePermission, error)
	UpsertPermission(ctx context.Context, db *gorm.DB, perm *model.StoragePermission) error
}

type gormStorageRepository struct{}

func NewGormStorageRepository() StorageRepository {
	return &gormStorageRepository{}
}

func (r *gormStorageRepository) CreateBucket(ctx context.Context, db *gorm.DB, bucket *model.StorageBucket) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(bucket)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create bucket",
				"error", result.Error,
				"name", bucket.Name,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating bucket in DB",
			"error", result.Error,
			"name", bucket.Name,
		)
		return fmt.Errorf("gormStorageRepository.CreateBucket: %w", result.Error)
	}
	return nil
}

func (r *gormStorageRepository) FindBucketByID(ctx context.Context, db *gorm.DB, bucketID uuid.UUID) (*model.StorageBucket, error) {
	logger := middleware.GetLogger(ctx)
	var bucket model.StorageBucket
	result := db.WithContext(ctx).Where("bucket_id = ?", bucketID).First(&bucket)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding bucket by ID in DB",
			"error", result.Error,
			"bucket_id", bucketID.String(),
		)
		return nil, fmt.Errorf("gormStorageRepository.FindBucketByID: %w", result.Error)
	}
	return &bucket, nil
}

func (r *gormStorageRepository) ListBuckets(ctx context.Context, db *gorm.DB) ([]*model.StorageBucket, error) {
	logger := middleware.GetLogger(ctx)
	var buckets []*model.StorageBucket
	result := db.WithContext(ctx).Order("name ASC").Find(&buckets)
	if result.Error != nil {
		logger.Error("Error listing buckets in DB", "error", result.Error)
		return nil, fmt.Errorf("gormStorageRepository.ListBuckets: %w", result.Error)
	}
	return buckets, nil
}

// DeleteBucket はバケット行と、その権限行をまとめて削除します。
func (r *gormStorageRepository) DeleteBucket(ctx context.Context, tx *gorm.DB, bucketID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if result := tx.WithContext(ctx).Where("bucket_id = ?", bucketID).Delete(&model.StoragePermission{}); result.Error != nil {
		logger.Error("Error deleting bucket permissions in DB",
			"error", result.Error,
			"bucket_id", bucketID.String(),
		)
		return fmt.Errorf("gormStorageRepository.DeleteBucket: %w", result.Error)
	}

	result := tx.WithContext(ctx).Where("bucket_id = ?", bucketID).Delete(&model.StorageBucket{})
	if result.Error != nil {
		logger.Error("Error deleting bucket in DB",
			"error", result.Error,
			"bucket_id", bucketID.String(),
		)
		return fmt.Errorf("gormStorageRepository.DeleteBucket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormStorageRepository) FindPermission(ctx context.Context, db *gorm.DB, bucketID, userID uuid.UUID) (*model.StoragePermission, error) {
	logger := middleware.GetLogger(ctx)
	var perm model.StoragePermission
	result := db.WithContext(ctx).Where("bucket_id = ? AND user_id = ?", bucketID, userID).First(&perm)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding storage permission in DB",
			"error", result.Error,
			"bucket_id", bucketID.String(),
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormStorageRepository.FindPermission: %w", result.Error)
	}
	return &perm, nil
}

func (r *gormStorageRepository) ListPermissions(ctx context.Context, db *gorm.DB, bucketID uuid.UUID) ([]*model.StoragePermission, error) {
	logger := middleware.GetLogger(ctx)
	var perms []*model.StoragePermission
	result := db.WithContext(ctx).Where("bucket_id = ?", bucketID).Find(&perms)
	if result.Error != nil {
		logger.Error("Error listing storage permissions in DB",
			"error", result.Error,
			"bucket_id", bucketID.String(),
		)
		return nil, fmt.Errorf("gormStorageRepository.ListPermissions: %w", result.Error)
	}
	return perms, nil
}

func (r *gormStorageRepository) UpsertPermission(ctx context.Context, db *gorm.DB, perm *model.StoragePermission) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bucket_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
	}).Create(perm)
	if result.Error != nil {
		logger.Error("Error upserting storage permission in DB",
			"error", result.Error,
			"bucket_id", perm.BucketID.String(),
			"user_id", perm.UserID.String(),
		)
		return fmt.Errorf("gormStorageRepository.UpsertPermission: %w", result.Error)
	}
	return nil
}
