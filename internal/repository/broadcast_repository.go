//go:generate mockery --name BroadcastRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BroadcastRepository は broadcasts / broadcast_dismissals テーブルへのアクセスを提供します。
type BroadcastRepository interface {
	Create(ctx context.Context, tx *gorm.DB, broadcast *model.Broadcast) error
	FindByID(ctx context.Context, db *gorm.DB, broadcastID uuid.UUID) (*model.Broadcast, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Broadcast, error)
	ListActiveForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) ([]*model.Broadcast, error)
	Update(ctx context.Context, tx *gorm.DB, broadcastID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, broadcastID uuid.UUID) error
	UpsertDismissal(ctx context.Context, db *gorm.DB, dismissal *model.BroadcastDismissal) error
}

type gormBroadcastRepository struct{}

func NewGormBroadcastRepository() BroadcastRepository {
	return &gormBroadcastRepository{}
}

func (r *gormBroadcastRepository) Create(ctx context.Context, tx *gorm.DB, broadcast *model.Broadcast) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(broadcast)
	if result.Error != nil {
		logger.Error("Error creating broadcast in DB",
			"error", result.Error,
			"title", broadcast.Title,
		)
		return fmt.Errorf("gormBroadcastRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormBroadcastRepository) FindByID(ctx context.Context, db *gorm.DB, broadcastID uuid.UUID) (*model.Broadcast, error) {
	logger := middleware.GetLogger(ctx)
	var broadcast model.Broadcast
	result := db.WithContext(ctx).Where("broadcast_id = ?", broadcastID).First(&broadcast)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding broadcast by ID in DB",
			"error", result.Error,
			"broadcast_id", broadcastID.String(),
		)
		return nil, fmt.Errorf("gormBroadcastRepository.FindByID: %w", result.Error)
	}
	return &broadcast, nil
}

func (r *gormBroadcastRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Broadcast, error) {
	logger := middleware.GetLogger(ctx)
	var broadcasts []*model.Broadcast
	result := db.WithContext(ctx).Order("starts_at DESC").Find(&broadcasts)
	if result.Error != nil {
		logger.Error("Error listing broadcasts in DB", "error", result.Error)
		return nil, fmt.Errorf("gormBroadcastRepository.List: %w", result.Error)
	}
	return broadcasts, nil
}

// ListActiveForUser は指定ユーザーに表示すべきお知らせを返します。
// 条件: 有効 AND 掲載期間内 AND (一度も閉じていない OR 閉じてから24時間経過)。
func (r *gormBroadcastRepository) ListActiveForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) ([]*model.Broadcast, error) {
	logger := middleware.GetLogger(ctx)
	var broadcasts []*model.Broadcast
	reshowBefore := now.Add(-model.DismissalReshowInterval)
	result := db.WithContext(ctx).
		Joins(
			"LEFT JOIN broadcast_dismissals d ON d.broadcast_id = broadcasts.broadcast_id AND d.user_id = ?",
			userID,
		).
		Where("broadcasts.is_active = ?", true).
		Where("broadcasts.starts_at <= ? AND broadcasts.ends_at > ?", now, now).
		Where("d.dismissal_id IS NULL OR d.dismissed_at <= ?", reshowBefore).
		Order("broadcasts.starts_at DESC").
		Find(&broadcasts)
	if result.Error != nil {
		logger.Error("Error listing active broadcasts in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormBroadcastRepository.ListActiveForUser: %w", result.Error)
	}
	return broadcasts, nil
}

func (r *gormBroadcastRepository) Update(ctx context.Context, tx *gorm.DB, broadcastID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Broadcast{}).Where("broadcast_id = ?", broadcastID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating broadcast in DB",
			"error", result.Error,
			"broadcast_id", broadcastID.String(),
		)
		return fmt.Errorf("gormBroadcastRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormBroadcastRepository) Delete(ctx context.Context, tx *gorm.DB, broadcastID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("broadcast_id = ?", broadcastID).Delete(&model.Broadcast{})
	if result.Error != nil {
		logger.Error("Error deleting broadcast in DB",
			"error", result.Error,
			"broadcast_id", broadcastID.String(),
		)
		return fmt.Errorf("gormBroadcastRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// UpsertDismissal は「閉じる」操作を記録します。既存レコードがあれば時刻を上書きする。
func (r *gormBroadcastRepository) UpsertDismissal(ctx context.Context, db *gorm.DB, dismissal *model.BroadcastDismissal) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "broadcast_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"dismissed_at"}),
	}).Create(dismissal)
	if result.Error != nil {
		logger.Error("Error upserting broadcast dismissal in DB",
			"error", result.Error,
			"broadcast_id", dismissal.BroadcastID.String(),
			"user_id", dismissal.UserID.String(),
		)
		return fmt.Errorf("gormBroadcastRepository.UpsertDismissal: %w", result.Error)
	}
	return nil
}
