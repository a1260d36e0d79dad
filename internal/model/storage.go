// internal/model/storage.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// バケットに対する権限レベル。数値が大きいほど強い。
const (
	StoragePermNone   = 0 // 権限なし
	StoragePermView   = 1 // 一覧・参照のみ
	StoragePermUpload = 2 // 参照 + アップロード
	StoragePermFull   = 3 // 参照 + アップロード + 削除
)

// StorageBucket はオブジェクトストレージのバケットのメタデータ行です。
// 実体は MinIO/S3 側にあり、ここでは権限管理の単位として登録する。
type StorageBucket struct {
	BucketID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"bucket_id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (StorageBucket) TableName() string {
	return "storage_buckets"
}

// StoragePermission はユーザーごとのバケット権限です。(bucket_id, user_id) で一意。
type StoragePermission struct {
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"permission_id"`
	BucketID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bucket_user" json:"bucket_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bucket_user" json:"user_id"`
	Level        int       `gorm:"not null;default:0" json:"level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (StoragePermission) TableName() string {
	return "storage_permissions"
}

// バケット登録リクエストDTO
type CreateBucketRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=63"`
	Description string `json:"description" validate:"max=500"`
}

// 権限付与リクエストDTO
type GrantPermissionRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Level  int       `json:"level" validate:"gte=0,lte=3"`
}

// StorageObject は一覧APIで返すオブジェクト情報です。
type StorageObject struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}
