//go:generate mockery --name GlossaryTaskRepository --output ./mocks --outpkg mocks --case=underscore
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

// GlossaryTaskRepository は glossary_tasks テーブルへのアクセスを提供します。
// トランザクション境界はサービス層が握るため、各メソッドは *gorm.DB を受け取る。
type GlossaryTaskRepository interface {
	Create(ctx context.Context, tx *gorm.DB, task *model.GlossaryTask) error
	CreateBatch(ctx context.Context, tx *gorm.DB, tasks []*model.GlossaryTask) error
	FindByID(ctx context.Context, db *gorm.DB, taskID uuid.UUID) (*model.GlossaryTask, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.GlossaryTask, error)
	List(ctx context.Context, db *gorm.DB, activeOnly bool) ([]*model.GlossaryTask, error)
	ListWithActiveKeywords(ctx context.Context, db *gorm.DB) ([]*model.GlossaryTask, error)
	Update(ctx context.Context, tx *gorm.DB, taskID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error
	SearchByName(ctx context.Context, db *gorm.DB, query string) ([]*model.GlossaryTask, error)
	CheckNameExists(ctx context.Context, db *gorm.DB, name string, excludeTaskID *uuid.UUID) (bool, error)
}

type gormGlossaryTaskRepository struct{}

func NewGormGlossaryTaskRepository() GlossaryTaskRepository {
	return &gormGlossaryTaskRepository{}
}

func (r *gormGlossaryTaskRepository) Create(ctx context.Context, tx *gorm.DB, task *model.GlossaryTask) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(task)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create task",
				"error", result.Error,
				"name", task.Name,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating task in DB",
			"error", result.Error,
			"name", task.Name,
		)
		return fmt.Errorf("gormGlossaryTaskRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormGlossaryTaskRepository) CreateBatch(ctx context.Context, tx *gorm.DB, tasks []*model.GlossaryTask) error {
	logger := middleware.GetLogger(ctx)
	if len(tasks) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(tasks)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on batch create tasks", "error", result.Error)
			return model.ErrConflict
		}
		logger.Error("Error batch creating tasks in DB",
			"error", result.Error,
			"count", len(tasks),
		)
		return fmt.Errorf("gormGlossaryTaskRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormGlossaryTaskRepository) FindByID(ctx context.Context, db *gorm.DB, taskID uuid.UUID) (*model.GlossaryTask, error) {
	logger := middleware.GetLogger(ctx)
	var task model.GlossaryTask
	result := db.WithContext(ctx).Where("task_id = ?", taskID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding task by ID in DB",
			"error", result.Error,
			"task_id", taskID.String(),
		)
		return nil, fmt.Errorf("gormGlossaryTaskRepository.FindByID: %w", result.Error)
	}
	return &task, nil
}

// FindByName はタスク名で検索します。大文字小文字は区別しない。
func (r *gormGlossaryTaskRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.GlossaryTask, error) {
	logger := middleware.GetLogger(ctx)
	var task model.GlossaryTask
	result := db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Task not found by name", "name", name)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding task by name in DB",
			"error", result.Error,
			"name", name,
		)
		return nil, fmt.Errorf("gormGlossaryTaskRepository.FindByName: %w", result.Error)
	}
	return &task, nil
}

func (r *gormGlossaryTaskRepository) List(ctx context.Context, db *gorm.DB, activeOnly bool) ([]*model.GlossaryTask, error) {
	logger := middleware.GetLogger(ctx)
	var tasks []*model.GlossaryTask
	query := db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	result := query.Order("sort_order ASC, name ASC").Find(&tasks)
	if result.Error != nil {
		logger.Error("Error listing tasks in DB", "error", result.Error)
		return nil, fmt.Errorf("gormGlossaryTaskRepository.List: %w", result.Error)
	}
	return tasks, nil
}

// ListWithActiveKeywords は有効なタスクと、その有効なキーワードをまとめて取得します (ツリーAPI用)。
func (r *gormGlossaryTaskRepository) ListWithActiveKeywords(ctx context.Context, db *gorm.DB) ([]*model.GlossaryTask, error) {
	logger := middleware.GetLogger(ctx)
	var tasks []*model.GlossaryTask
	result := db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Keywords", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order ASC, name ASC")
		}).
		Order("sort_order ASC, name ASC").
		Find(&tasks)
	if result.Error != nil {
		logger.Error("Error listing tasks with keywords in DB", "error", result.Error)
		return nil, fmt.Errorf("gormGlossaryTaskRepository.ListWithActiveKeywords: %w", result.Error)
	}
	return tasks, nil
}

func (r *gormGlossaryTaskRepository) Update(ctx context.Context, tx *gorm.DB, taskID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.GlossaryTask{}).Where("task_id = ?", taskID).Updates(updates)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		logger.Error("Error updating task in DB",
			"error", result.Error,
			"task_id", taskID.String(),
		)
		return fmt.Errorf("gormGlossaryTaskRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormGlossaryTaskRepository) Delete(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("task_id = ?", taskID).Delete(&model.GlossaryTask{})
	if result.Error != nil {
		logger.Error("Error deleting task in DB",
			"error", result.Error,
			"task_id", taskID.String(),
		)
		return fmt.Errorf("gormGlossaryTaskRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// SearchByName は名前の部分一致検索です。大文字小文字は区別しない。
func (r *gormGlossaryTaskRepository) SearchByName(ctx context.Context, db *gorm.DB, query string) ([]*model.GlossaryTask, error) {
	logger := middleware.GetLogger(ctx)
	var tasks []*model.GlossaryTask
	result := db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Order("sort_order ASC, name ASC").
		Find(&tasks)
	if result.Error != nil {
		logger.Error("Error searching tasks in DB",
			"error", result.Error,
			"query", query,
		)
		return nil, fmt.Errorf("gormGlossaryTaskRepository.SearchByName: %w", result.Error)
	}
	return tasks, nil
}

func (r *gormGlossaryTaskRepository) CheckNameExists(ctx context.Context, db *gorm.DB, name string, excludeTaskID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.GlossaryTask{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeTaskID != nil {
		query = query.Where("task_id != ?", *excludeTaskID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking task name existence in DB",
			"error", result.Error,
			"name", name,
		)
		return false, fmt.Errorf("gormGlossaryTaskRepository.CheckNameExists: %w", result.Error)
	}
	return count > 0, nil
}
