//go:generate mockery --name GlossaryKeywordRepository --output ./mocks --outpkg mocks --case=underscore
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
)

// GlossaryKeywordRepository は glossary_keywords テーブルへのアクセスを提供します。
type GlossaryKeywordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, keyword *model.GlossaryKeyword) error
	CreateBatch(ctx context.Context, tx *gorm.DB, keywords []*model.GlossaryKeyword) error
	FindByID(ctx context.Context, db *gorm.DB, keywordID uuid.UUID) (*model.GlossaryKeyword, error)
	FindByTaskAndName(ctx context.Context, db *gorm.DB, taskID uuid.UUID, name string) (*model.GlossaryKeyword, error)
	ListByTask(ctx context.Context, db *gorm.DB, taskID uuid.UUID, activeOnly bool) ([]*model.GlossaryKeyword, error)
	ListAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]*model.GlossaryKeyword, error)
	Update(ctx context.Context, tx *gorm.DB, keywordID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, keywordID uuid.UUID) error
	DeleteByTask(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error
	SearchByName(ctx context.Context, db *gorm.DB, query string) ([]*model.GlossaryKeyword, error)
	CheckNameExists(ctx context.Context, db *gorm.DB, taskID uuid.UUID, name string, excludeKeywordID *uuid.UUID) (bool, error)
}

type gormGlossaryKeywordRepository struct{}

func NewGormGlossaryKeywordRepository() GlossaryKeywordRepository {
	return &gormGlossaryKeywordRepository{}
}

func (r *gormGlossaryKeywordRepository) Create(ctx context.Context, tx *gorm.DB, keyword *model.GlossaryKeyword) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(keyword)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create keyword",
				"error", result.Error,
				"task_id", keyword.TaskID.String(),
				"name", keyword.Name,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating keyword in DB",
			"error", result.Error,
			"task_id", keyword.TaskID.String(),
			"name", keyword.Name,
		)
		return fmt.Errorf("gormGlossaryKeywordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormGlossaryKeywordRepository) CreateBatch(ctx context.Context, tx *gorm.DB, keywords []*model.GlossaryKeyword) error {
	logger := middleware.GetLogger(ctx)
	if len(keywords) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(keywords)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on batch create keywords", "error", result.Error)
			return model.ErrConflict
		}
		logger.Error("Error batch creating keywords in DB",
			"error", result.Error,
			"count", len(keywords),
		)
		return fmt.Errorf("gormGlossaryKeywordRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormGlossaryKeywordRepository) FindByID(ctx context.Context, db *gorm.DB, keywordID uuid.UUID) (*model.GlossaryKeyword, error) {
	logger := middleware.GetLogger(ctx)
	var keyword model.GlossaryKeyword
	result := db.WithContext(ctx).Where("keyword_id = ?", keywordID).First(&keyword)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding keyword by ID in DB",
			"error", result.Error,
			"keyword_id", keywordID.String(),
		)
		return nil, fmt.Errorf("gormGlossaryKeywordRepository.FindByID: %w", result.Error)
	}
	return &keyword, nil
}

// FindByTaskAndName はタスク内のキーワードを名前で検索します。
// タスク名の検索 (FindByName) と異なり大文字小文字を区別する。
// この非対称は旧実装の挙動をそのまま踏襲したもの。
func (r *gormGlossaryKeywordRepository) FindByTaskAndName(ctx context.Context, db *gorm.DB, taskID uuid.UUID, name string) (*model.GlossaryKeyword, error) {
	logger := middleware.GetLogger(ctx)
	var keyword model.GlossaryKeyword
	result := db.WithContext(ctx).Where("task_id = ? AND name = ?", taskID, name).First(&keyword)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding keyword by task and name in DB",
			"error", result.Error,
			"task_id", taskID.String(),
			"name", name,
		)
		return nil, fmt.Errorf("gormGlossaryKeywordRepository.FindByTaskAndName: %w", result.Error)
	}
	return &keyword, nil
}

func (r *gormGlossaryKeywordRepository) ListByTask(ctx context.Context, db *gorm.DB, taskID uuid.UUID, activeOnly bool) ([]*model.GlossaryKeyword, error) {
	logger := middleware.GetLogger(ctx)
	var keywords []*model.GlossaryKeyword
	query := db.WithContext(ctx).Where("task_id = ?", taskID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	result := query.Order("sort_order ASC, name ASC").Find(&keywords)
	if result.Error != nil {
		logger.Error("Error listing keywords by task in DB",
			"error", result.Error,
			"task_id", taskID.String(),
		)
		return nil, fmt.Errorf("gormGlossaryKeywordRepository.ListByTask: %w", result.Error)
	}
	return keywords, nil
}

func (r *gormGlossaryKeywordRepository) ListAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]*model.GlossaryKeyword, error) {
	logger := middleware.GetLogger(ctx)
	var keywords []*model.GlossaryKeyword
	query := db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	result := query.Order("sort_order ASC, name ASC").Find(&keywords)
	if result.Error != nil {
		logger.Error("Error listing all keywords in DB", "error", result.Error)
		return nil, fmt.Errorf("gormGlossaryKeywordRepository.ListAll: %w", result.Error)
	}
	return keywords, nil
}

func (r *gormGlossaryKeywordRepository) Update(ctx context.Context, tx *gorm.DB, keywordID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.GlossaryKeyword{}).Where("keyword_id = ?", keywordID).Updates(updates)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		logger.Error("Error updating keyword in DB",
			"error", result.Error,
			"keyword_id", keywordID.String(),
		)
		return fmt.Errorf("gormGlossaryKeywordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormGlossaryKeywordRepository) Delete(ctx context.Context, tx *gorm.DB, keywordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("keyword_id = ?", keywordID).Delete(&model.GlossaryKeyword{})
	if result.Error != nil {
		logger.Error("Error deleting keyword in DB",
			"error", result.Error,
			"keyword_id", keywordID.String(),
		)
		return fmt.Errorf("gormGlossaryKeywordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteByTask はタスク削除時のカスケード用です。該当キーワードが0件でもエラーにしない。
func (r *gormGlossaryKeywordRepository) DeleteByTask(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("task_id = ?", taskID).Delete(&model.GlossaryKeyword{})
	if result.Error != nil {
		logger.Error("Error deleting keywords by task in DB",
			"error", result.Error,
			"task_id", taskID.String(),
		)
		return fmt.Errorf("gormGlossaryKeywordRepository.DeleteByTask: %w", result.Error)
	}
	return nil
}

func (r *gormGlossaryKeywordRepository) SearchByName(ctx context.Context, db *gorm.DB, query string) ([]*model.GlossaryKeyword, error) {
	logger := middleware.GetLogger(ctx)
	var keywords []*model.GlossaryKeyword
	result := db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Order("sort_order ASC, name ASC").
		Find(&keywords)
	if result.Error != nil {
		logger.Error("Error searching keywords in DB",
			"error", result.Error,
			"query", query,
		)
		return nil, fmt.Errorf("gormGlossaryKeywordRepository.SearchByName: %w", result.Error)
	}
	return keywords, nil
}

func (r *gormGlossaryKeywordRepository) CheckNameExists(ctx context.Context, db *gorm.DB, taskID uuid.UUID, name string, excludeKeywordID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.GlossaryKeyword{}).
		Where("task_id = ? AND LOWER(name) = LOWER(?)", taskID, name)
	if excludeKeywordID != nil {
		query = query.Where("keyword_id != ?", *excludeKeywordID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking keyword name existence in DB",
			"error", result.Error,
			"task_id", taskID.String(),
			"name", name,
		)
		return false, fmt.Errorf("gormGlossaryKeywordRepository.CheckNameExists: %w", result.Error)
	}
	return count > 0, nil
}
