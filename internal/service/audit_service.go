//go:generate mockery --name AuditService --output ./mocks --outpkg mocks --case=underscore
// internal/service/audit_service.go
package service

import (
	"context"
	"time"

	"glossary_console/internal/config"
	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditService は監査ログの追記と参照を提供します。追記専用。
type AuditService interface {
	// Record はログを1件追記します。失敗は呼び出し元のリクエストを失敗させない
	// （best-effort）ため、エラーはログに残すだけで返しません。
	Record(ctx context.Context, userID *uuid.UUID, action, resource, resourceID, detail string)
	// Append はAPI経由の明示的な追記です。こちらは失敗をエラーとして返す。
	Append(ctx context.Context, userID *uuid.UUID, req *model.CreateAuditLogRequest) (*model.AuditLog, error)
	List(ctx context.Context, filter *model.AuditLogFilter) (*model.AuditLogList, error)
}

type auditService struct {
	db        *gorm.DB
	auditRepo repository.AuditLogRepository
	cfg       *config.Config
}

func NewAuditService(db *gorm.DB, auditRepo repository.AuditLogRepository, cfg *config.Config) AuditService {
	return &auditService{
		db:        db,
		auditRepo: auditRepo,
		cfg:       cfg,
	}
}

func (s *auditService) Record(ctx context.Context, userID *uuid.UUID, action, resource, resourceID, detail string) {
	logger := middleware.GetLogger(ctx)
	entry := &model.AuditLog{
		LogID:      uuid.New(),
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}
	if err := s.auditRepo.Create(ctx, s.db, entry); err != nil {
		// 監査ログの書き込み失敗で元のリクエストを落とさない
		logger.Error("Failed to record audit log entry",
			"error", err,
			"action", action,
			"resource", resource,
		)
	}
}

func (s *auditService) Append(ctx context.Context, userID *uuid.UUID, req *model.CreateAuditLogRequest) (*model.AuditLog, error) {
	logger := middleware.GetLogger(ctx)
	entry := &model.AuditLog{
		LogID:      uuid.New(),
		UserID:     userID,
		Action:     req.Action,
		Resource:   req.Resource,
		ResourceID: req.ResourceID,
		Detail:     req.Detail,
		CreatedAt:  time.Now(),
	}
	if err := s.auditRepo.Create(ctx, s.db, entry); err != nil {
		logger.Error("Failed to append audit log entry", "error", err)
		return nil, model.ErrInternalServer
	}
	return entry, nil
}

func (s *auditService) List(ctx context.Context, filter *model.AuditLogFilter) (*model.AuditLogList, error) {
	logger := middleware.GetLogger(ctx)

	maxLimit := s.cfg.App.AuditLogMaxLimit
	if maxLimit <= 0 {
		maxLimit = config.DefaultAuditLogMaxLimit
	}
	// limit はデフォルト50、上限100に丸める
	if filter.Limit <= 0 {
		filter.Limit = config.DefaultAuditLogLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	logs, total, err := s.auditRepo.List(ctx, s.db, filter)
	if err != nil {
		logger.Error("Failed to list audit logs", "error", err)
		return nil, model.ErrInternalServer
	}
	return &model.AuditLogList{
		Logs:   logs,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}
