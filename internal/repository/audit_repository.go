//go:generate mockery --name AuditLogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"

	"gorm.io/gorm"
)

// AuditLogRepository は audit_logs テーブルへのアクセスを提供します。追記と検索のみ。
type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, entry *model.AuditLog) error
	List(ctx context.Context, db *gorm.DB, filter *model.AuditLogFilter) ([]*model.AuditLog, int64, error)
}

type gormAuditLogRepository struct{}

func NewGormAuditLogRepository() AuditLogRepository {
	return &gormAuditLogRepository{}
}

func (r *gormAuditLogRepository) Create(ctx context.Context, db *gorm.DB, entry *model.AuditLog) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		logger.Error("Error creating audit log in DB",
			"error", result.Error,
			"action", entry.Action,
			"resource", entry.Resource,
		)
		return fmt.Errorf("gormAuditLogRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAuditLogRepository) List(ctx context.Context, db *gorm.DB, filter *model.AuditLogFilter) ([]*model.AuditLog, int64, error) {
	logger := middleware.GetLogger(ctx)

	query := db.WithContext(ctx).Model(&model.AuditLog{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Resource != "" {
		query = query.Where("resource = ?", filter.Resource)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var total int64
	if result := query.Count(&total); result.Error != nil {
		logger.Error("Error counting audit logs in DB", "error", result.Error)
		return nil, 0, fmt.Errorf("gormAuditLogRepository.List: %w", result.Error)
	}

	var logs []*model.AuditLog
	result := query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&logs)
	if result.Error != nil {
		logger.Error("Error listing audit logs in DB", "error", result.Error)
		return nil, 0, fmt.Errorf("gormAuditLogRepository.List: %w", result.Error)
	}
	return logs, total, nil
}
