//go:generate mockery --name StorageService --output ./mocks --outpkg mocks --case=underscore
// internal/service/storage_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StorageService はバケットのメタデータ管理、ユーザーごとの権限管理、
// MinIO/S3 へのオブジェクト操作のプロキシを提供します。
//
// 権限レベル: 0=なし / 1=参照 / 2=参照+アップロード / 3=全操作。
// root と admin はレベル判定をバイパスする。
type StorageService interface {
	CreateBucket(ctx context.Context, userID *uuid.UUID, req *model.CreateBucketRequest) (*model.StorageBucket, error)
	ListBuckets(ctx context.Context) ([]*model.StorageBucket, error)
	DeleteBucket(ctx context.Context, userID *uuid.UUID, bucketID uuid.UUID) error
	ListPermissions(ctx context.Context, bucketID uuid.UUID) ([]*model.StoragePermission, error)
	GrantPermission(ctx context.Context, grantedBy *uuid.UUID, bucketID uuid.UUID, req *model.GrantPermissionRequest) (*model.StoragePermission, error)
	ListObjects(ctx context.Context, userID uuid.UUID, role string, bucketID uuid.UUID, prefix string) ([]*model.StorageObject, error)
	UploadObject(ctx context.Context, userID uuid.UUID, role string, bucketID uuid.UUID, key string, reader io.Reader, size int64, contentType string) error
	DeleteObject(ctx context.Context, userID uuid.UUID, role string, bucketID uuid.UUID, key string) error
}

type storageService struct {
	db          *gorm.DB
	storageRepo repository.StorageRepository
	store       ObjectStore
	audit       AuditService
}

func NewStorageService(db *gorm.DB, storageRepo repository.StorageRepository, store ObjectStore, audit AuditService) StorageService {
	return &storageService{
		db:          db,
		storageRepo: storageRepo,
		store:       store,
		audit:       audit,
	}
}

func (s *storageService) CreateBucket(ctx context.Context, userID *uuid.UUID, req *model.CreateBucketRequest) (*model.StorageBucket, error) {
	logger := middleware.GetLogger(ctx)

	bucket := &model.StorageBucket{
		BucketID:    uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.storageRepo.CreateBucket(ctx, s.db, bucket); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Error creating bucket row", "error", err)
		return nil, model.ErrInternalServer
	}

	// ストレージ側の実体も作る。失敗したらメタデータ行を残さない
	if err := s.store.EnsureBucket(ctx, bucket.Name); err != nil {
		logger.Error("Error ensuring bucket in object store", "error", err, "bucket", bucket.Name)
		if delErr := s.storageRepo.DeleteBucket(ctx, s.db, bucket.BucketID); delErr != nil {
			logger.Error("Failed to roll back bucket row", "error", delErr, "bucket_id", bucket.BucketID.String())
		}
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionCreate, "storage_bucket", bucket.BucketID.String(), bucket.Name)
	return bucket, nil
}

func (s *storageService) ListBuckets(ctx context.Context) ([]*model.StorageBucket, error) {
	logger := middleware.GetLogger(ctx)
	buckets, err := s.storageRepo.ListBuckets(ctx, s.db)
	if err != nil {
		logger.Error("Error listing buckets", "error", err)
		return nil, model.ErrInternalServer
	}
	return buckets, nil
}

func (s *storageService) DeleteBucket(ctx context.Context, userID *uuid.UUID, bucketID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	bucket, err := s.storageRepo.FindBucketByID(ctx, s.db, bucketID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.storageRepo.DeleteBucket(ctx, tx, bucketID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting bucket row", "error", err, "bucket_id", bucketID.String())
		return model.ErrInternalServer
	}

	// オブジェクトストア側の削除は best-effort (中身が残っていると失敗する)
	if err := s.store.RemoveBucket(ctx, bucket.Name); err != nil {
		logger.Warn("Failed to remove bucket from object store", "error", err, "bucket", bucket.Name)
	}

	s.audit.Record(ctx, userID, model.AuditActionDelete, "storage_bucket", bucketID.String(), bucket.Name)
	return nil
}

func (s *storageService) ListPermissions(ctx context.Context, bucketID uuid.UUID) ([]*model.StoragePermission, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.storageRepo.FindBucketByID(ctx, s.db, bucketID); err != nil {
		return nil, err
	}
	perms, err := s.storageRepo.ListPermissions(ctx, s.db, bucketID)
	if err != nil {
		logger.Error("Error listing bucket permissions", "error", err, "bucket_id", bucketID.String())
		return nil, model.ErrInternalServer
	}
	return perms, nil
}

func (s *storageService) GrantPermission(ctx context.Context, grantedBy *uuid.UUID, bucketID uuid.UUID, req *model.GrantPermissionRequest) (*model.StoragePermission, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.storageRepo.FindBucketByID(ctx, s.db, bucketID); err != nil {
		return nil, err
	}

	perm := &model.StoragePermission{
		PermissionID: uuid.New(),
		BucketID:     bucketID,
		UserID:       req.UserID,
		Level:        req.Level,
	}
	if err := s.storageRepo.UpsertPermission(ctx, s.db, perm); err != nil {
		logger.Error("Error granting bucket permission", "error", err, "bucket_id", bucketID.String())
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, grantedBy, model.AuditActionUpdate, "storage_permission", bucketID.String(),
		fmt.Sprintf("user=%s level=%d", req.UserID, req.Level))
	return perm, nil
}

// permissionLevel はユーザーのバケットに対する権限レベルを返します。
// root/admin は常に最上位。権限行が無ければ 0 (権限なし)。
func (s *storageService) permissionLevel(ctx context.Context, userID uuid.UUID, role string, bucketID uuid.UUID) (int, error) {
	if role == model.RoleRoot || role == model.RoleAdmin {
		return model.StoragePermFull, nil
	}
	perm, err := s.storageRepo.FindPermission(ctx, s.db, bucketID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.StoragePermNone, nil
		}
		return model.StoragePermNone, err
	}
	return perm.Level, nil
}

func (s *storageService) requireLevel(ctx context.Context, userID uuid.UUID, role string, bucketID uuid.UUID, required int) (*model.StorageBucket, error) {
	logger := middleware.GetLogger(ctx)

	bucket, err := s.storageRepo.FindBucketByID(ctx, s.db, bucketID)
	if err != nil {
		return nil, err
	}

	level, err := s.permissionLevel(ctx, userID, role, bucketID)
	if err != nil {
		logger.Error("Error resolving bucket permission", "error", err, "bucket_id", bucketID.String())
		return nil, model.ErrInternalServer
	}
	if level < required {
		logger.Warn("Bucket access denied",
			"bucket_id", bucketID.String(),
			"user_id", userID.String(),
			"level", level,
			"required", required,
		)
		return nil, model.ErrForbidden
	}
	return bucket, nil
}

func (s *storageService) ListObjects(ctx context.Context, userID uuid.UUID, role string, bucketID uuid.UUID, prefix string) ([]*model.StorageObject, error) {
	logger := middleware.GetLogger(ctx)

	bucket, err := s.requireLevel(ctx, userID, role, bucketID, model.StoragePermView)
	if err != nil {
		return nil, err
	}

	objects, err := s.store.ListObjects(ctx, bucket.Name, prefix)
	if err != nil {
		logger.Error("Error listing objects", "error", err, "bucket", bucket.Name)
		return nil, model.ErrInternalServer
	}
	return objects, nil
}

func (s *storageService) UploadObject(ctx context.Context, userID uuid.UUID, role string, bucketID uuid.UUID, key string, reader io.Reader, size int64, contentType string) error {
	logger := middleware.GetLogger(ctx)

	if key == "" {
		return model.NewAppError("INVALID_KEY", "オブジェクトキーが空です", "key", model.ErrInvalidInput)
	}

	bucket, err := s.requireLevel(ctx, userID, role, bucketID, model.StoragePermUpload)
	if err != nil {
		return err
	}

	if err := s.store.PutObject(ctx, bucket.Name, key, reader, size, contentType); err != nil {
		logger.Error("Error uploading object", "error", err, "bucket", bucket.Name, "key", key)
		return model.ErrInternalServer
	}

	s.audit.Record(ctx, &userID, model.AuditActionUpload, "storage_object", bucketID.String(), key)
	return nil
}

func (s *storageService) DeleteObject(ctx context.Context, userID uuid.UUID, role string, bucketID uuid.UUID, key string) error {
	logger := middleware.GetLogger(ctx)

	if key == "" {
		return model.NewAppError("INVALID_KEY", "オブジェクトキーが空です", "key", model.ErrInvalidInput)
	}

	bucket, err := s.requireLevel(ctx, userID, role, bucketID, model.StoragePermFull)
	if err != nil {
		return err
	}

	if err := s.store.RemoveObject(ctx, bucket.Name, key); err != nil {
		logger.Error("Error deleting object", "error", err, "bucket", bucket.Name, "key", key)
		return model.ErrInternalServer
	}

	s.audit.Record(ctx, &userID, model.AuditActionDelete, "storage_object", bucketID.String(), key)
	return nil
}
