//go:generate mockery --name GuidelineRepository --output ./mocks --outpkg mocks --case=underscore
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

// GuidelineRepository は guidelines テーブルへのアクセスを提供します。
type GuidelineRepository interface {
	Create(ctx context.Context, db *gorm.DB, guideline *model.Guideline) error
	FindByID(ctx context.Context, db *gorm.DB, guidelineID uuid.UUID) (*model.Guideline, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Guideline, error)
	List(ctx context.Context, db *gorm.DB, activeOnly bool) ([]*model.Guideline, error)
	Update(ctx context.Context, db *gorm.DB, guidelineID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, guidelineID uuid.UUID) error
}

type gormGuidelineRepository struct{}

func NewGormGuidelineRepository() GuidelineRepository {
	return &gormGuidelineRepository{}
}

func (r *gormGuidelineRepository) Create(ctx context.Context, db *gorm.DB, guideline *model.Guideline) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(guideline)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create guideline",
				"error", result.Error,
				"slug", guideline.Slug,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating guideline in DB",
			"error", result.Error,
			"slug", guideline.Slug,
		)
		return fmt.Errorf("gormGuidelineRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormGuidelineRepository) FindByID(ctx context.Context, db *gorm.DB, guidelineID uuid.UUID) (*model.Guideline, error) {
	logger := middleware.GetLogger(ctx)
	var guideline model.Guideline
	result := db.WithContext(ctx).Where("guideline_id = ?", guidelineID).First(&guideline)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding guideline by ID in DB",
			"error", result.Error,
			"guideline_id", guidelineID.String(),
		)
		return nil, fmt.Errorf("gormGuidelineRepository.FindByID: %w", result.Error)
	}
	return &guideline, nil
}

func (r *gormGuidelineRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Guideline, error) {
	logger := middleware.GetLogger(ctx)
	var guideline model.Guideline
	result := db.WithContext(ctx).Where("slug = ?", slug).First(&guideline)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding guideline by slug in DB",
			"error", result.Error,
			"slug", slug,
		)
		return nil, fmt.Errorf("gormGuidelineRepository.FindBySlug: %w", result.Error)
	}
	return &guideline, nil
}

func (r *gormGuidelineRepository) List(ctx context.Context, db *gorm.DB, activeOnly bool) ([]*model.Guideline, error) {
	logger := middleware.GetLogger(ctx)
	var guidelines []*model.Guideline
	query := db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	result := query.Order("sort_order ASC, slug ASC").Find(&guidelines)
	if result.Error != nil {
		logger.Error("Error listing guidelines in DB", "error", result.Error)
		return nil, fmt.Errorf("gormGuidelineRepository.List: %w", result.Error)
	}
	return guidelines, nil
}

func (r *gormGuidelineRepository) Update(ctx context.Context, db *gorm.DB, guidelineID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Guideline{}).Where("guideline_id = ?", guidelineID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating guideline in DB",
			"error", result.Error,
			"guideline_id", guidelineID.String(),
		)
		return fmt.Errorf("gormGuidelineRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormGuidelineRepository) Delete(ctx context.Context, db *gorm.DB, guidelineID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("guideline_id = ?", guidelineID).Delete(&model.Guideline{})
	if result.Error != nil {
		logger.Error("Error deleting guideline in DB",
			"error", result.Error,
			"guideline_id", guidelineID.String(),
		)
		return fmt.Errorf("gormGuidelineRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
