// internal/model/broadcast.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// お知らせの重要度
const (
	BroadcastLevelInfo     = "info"
	BroadcastLevelWarning  = "warning"
	BroadcastLevelCritical = "critical"
)

// DismissalReshowInterval は「閉じる」操作後に同じお知らせを再表示するまでの時間。
const DismissalReshowInterval = 24 * time.Hour

// Broadcast は全ユーザー向けのお知らせを表します。
type Broadcast struct {
	BroadcastID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"broadcast_id"`
	Title       string         `gorm:"not null" json:"title"`
	Body        string         `gorm:"not null" json:"body"`
	Level       string         `gorm:"type:varchar(20);not null;default:info" json:"level"`
	StartsAt    time.Time      `gorm:"not null;index" json:"starts_at"`
	EndsAt      time.Time      `gorm:"not null;index" json:"ends_at"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	Notify      bool           `gorm:"default:false" json:"notify"`
	CreatedBy   *uuid.UUID     `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedBy   *uuid.UUID     `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Broadcast) TableName() string {
	return "broadcasts"
}

// BroadcastDismissal はユーザーごとの「閉じる」操作の記録です。
// (broadcast_id, user_id) で一意。DismissedAt は閉じるたびに上書きされる。
type BroadcastDismissal struct {
	DismissalID uuid.UUID `gorm:"type:uuid;primaryKey" json:"dismissal_id"`
	BroadcastID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_broadcast_user" json:"broadcast_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_broadcast_user" json:"user_id"`
	DismissedAt time.Time `gorm:"not null" json:"dismissed_at"`
}

func (BroadcastDismissal) TableName() string {
	return "broadcast_dismissals"
}

// お知らせ作成リクエストDTO
type CreateBroadcastRequest struct {
	Title    string    `json:"title" validate:"required,min=1,max=200"`
	Body     string    `json:"body" validate:"required,min=1,max=5000"`
	Level    string    `json:"level" validate:"omitempty,oneof=info warning critical"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	Notify   bool      `json:"notify"`
}

// お知らせ更新リクエストDTO
type UpdateBroadcastRequest struct {
	Title    *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Body     *string    `json:"body,omitempty" validate:"omitempty,min=1,max=5000"`
	Level    *string    `json:"level,omitempty" validate:"omitempty,oneof=info warning critical"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
}
