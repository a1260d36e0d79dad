//go:generate mockery --name ObjectStore --output ./mocks --outpkg mocks --case=underscore
// internal/service/object_store.go
package service

import (
	"context"
	"io"

	"glossary_console/internal/config"
	"glossary_console/internal/model"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore は MinIO/S3 への操作を抽象化します。テストではモックに差し替える。
type ObjectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	ListObjects(ctx context.Context, bucket, prefix string) ([]*model.StorageObject, error)
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error
	RemoveObject(ctx context.Context, bucket, key string) error
	RemoveBucket(ctx context.Context, bucket string) error
}

type minioObjectStore struct {
	client *minio.Client
}

// NewMinioObjectStore は設定からMinIOクライアントを生成します。
func NewMinioObjectStore(cfg *config.MinioConfig) (ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, err
	}
	return &minioObjectStore{client: client}, nil
}

func (s *minioObjectStore) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}

func (s *minioObjectStore) ListObjects(ctx context.Context, bucket, prefix string) ([]*model.StorageObject, error) {
	objects := []*model.StorageObject{}
	for info := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, info.Err
		}
		objects = append(objects, &model.StorageObject{
			Key:          info.Key,
			Size:         info.Size,
			ContentType:  info.ContentType,
			LastModified: info.LastModified,
		})
	}
	return objects, nil
}

func (s *minioObjectStore) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *minioObjectStore) RemoveObject(ctx context.Context, bucket, key string) error {
	return s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

func (s *minioObjectStore) RemoveBucket(ctx context.Context, bucket string) error {
	return s.client.RemoveBucket(ctx, bucket)
}
