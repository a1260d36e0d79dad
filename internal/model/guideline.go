// internal/model/guideline.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guideline は利用ガイドラインのコンテンツ（Markdown）です。slug で参照される。
type Guideline struct {
	GuidelineID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"guideline_id"`
	Slug        string         `gorm:"unique;not null" json:"slug"`
	Title       string         `gorm:"not null" json:"title"`
	Body        string         `gorm:"not null" json:"body"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedBy   *uuid.UUID     `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedBy   *uuid.UUID     `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Guideline) TableName() string {
	return "guidelines"
}

// ガイドライン作成リクエストDTO
type CreateGuidelineRequest struct {
	Slug      string `json:"slug" validate:"required,min=1,max=100"`
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Body      string `json:"body" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

// ガイドライン更新リクエストDTO
type UpdateGuidelineRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Body      *string `json:"body,omitempty" validate:"omitempty,min=1"`
	SortOrder *int    `json:"sort_order,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}
