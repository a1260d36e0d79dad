//go:generate mockery --name GuidelineService --output ./mocks --outpkg mocks --case=underscore
// internal/service/guideline_service.go
package service

import (
	"context"
	"errors"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuidelineService は利用ガイドライン (Markdown) のCRUDを提供します。
type GuidelineService interface {
	Create(ctx context.Context, userID *uuid.UUID, req *model.CreateGuidelineRequest) (*model.Guideline, error)
	GetBySlug(ctx context.Context, slug string) (*model.Guideline, error)
	List(ctx context.Context, activeOnly bool) ([]*model.Guideline, error)
	Update(ctx context.Context, userID *uuid.UUID, slug string, req *model.UpdateGuidelineRequest) (*model.Guideline, error)
	Delete(ctx context.Context, userID *uuid.UUID, slug string) error
}

type guidelineService struct {
	db            *gorm.DB
	guidelineRepo repository.GuidelineRepository
	audit         AuditService
}

func NewGuidelineService(db *gorm.DB, guidelineRepo repository.GuidelineRepository, audit AuditService) GuidelineService {
	return &guidelineService{
		db:            db,
		guidelineRepo: guidelineRepo,
		audit:         audit,
	}
}

func (s *guidelineService) Create(ctx context.Context, userID *uuid.UUID, req *model.CreateGuidelineRequest) (*model.Guideline, error) {
	logger := middleware.GetLogger(ctx)

	guideline := &model.Guideline{
		GuidelineID: uuid.New(),
		Slug:        req.Slug,
		Title:       req.Title,
		Body:        req.Body,
		SortOrder:   req.SortOrder,
		IsActive:    true,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}
	if err := s.guidelineRepo.Create(ctx, s.db, guideline); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Error creating guideline", "error", err, "slug", req.Slug)
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionCreate, "guideline", guideline.Slug, guideline.Title)
	return guideline, nil
}

func (s *guidelineService) GetBySlug(ctx context.Context, slug string) (*model.Guideline, error) {
	guideline, err := s.guidelineRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	return guideline, nil
}

func (s *guidelineService) List(ctx context.Context, activeOnly bool) ([]*model.Guideline, error) {
	logger := middleware.GetLogger(ctx)
	guidelines, err := s.guidelineRepo.List(ctx, s.db, activeOnly)
	if err != nil {
		logger.Error("Error listing guidelines", "error", err)
		return nil, model.ErrInternalServer
	}
	return guidelines, nil
}

func (s *guidelineService) Update(ctx context.Context, userID *uuid.UUID, slug string, req *model.UpdateGuidelineRequest) (*model.Guideline, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.Guideline

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		guideline, err := s.guidelineRepo.FindBySlug(ctx, tx, slug)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Body != nil {
			updates["body"] = *req.Body
		}
		if req.SortOrder != nil {
			updates["sort_order"] = *req.SortOrder
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		if len(updates) > 0 {
			if userID != nil {
				updates["updated_by"] = *userID
			}
			if err := s.guidelineRepo.Update(ctx, tx, guideline.GuidelineID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return err
				}
				logger.Error("Error updating guideline", "error", err, "slug", slug)
				return model.ErrInternalServer
			}
		}

		updated, err = s.guidelineRepo.FindByID(ctx, tx, guideline.GuidelineID)
		if err != nil {
			logger.Error("Error fetching updated guideline", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for guideline update", "error", err)
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionUpdate, "guideline", slug, updated.Title)
	return updated, nil
}

func (s *guidelineService) Delete(ctx context.Context, userID *uuid.UUID, slug string) error {
	logger := middleware.GetLogger(ctx)

	guideline, err := s.guidelineRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return err
	}
	if err := s.guidelineRepo.Delete(ctx, s.db, guideline.GuidelineID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting guideline", "error", err, "slug", slug)
		return model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionDelete, "guideline", slug, "")
	return nil
}
