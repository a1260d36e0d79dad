//go:generate mockery --name BroadcastService --output ./mocks --outpkg mocks --case=underscore
// internal/service/broadcast_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glossary_console/internal/config"
	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/realtime"
	"glossary_console/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BroadcastService は全ユーザー向けお知らせの管理と配信を提供します。
type BroadcastService interface {
	Create(ctx context.Context, userID *uuid.UUID, req *model.CreateBroadcastRequest) (*model.Broadcast, error)
	Get(ctx context.Context, broadcastID uuid.UUID) (*model.Broadcast, error)
	List(ctx context.Context) ([]*model.Broadcast, error)
	// ListActive は「現在表示すべき」お知らせを返します:
	// 有効 AND 表示期間内 AND (未クローズ OR クローズから24時間以上経過)。
	ListActive(ctx context.Context, userID uuid.UUID) ([]*model.Broadcast, error)
	Update(ctx context.Context, userID *uuid.UUID, broadcastID uuid.UUID, req *model.UpdateBroadcastRequest) (*model.Broadcast, error)
	Delete(ctx context.Context, userID *uuid.UUID, broadcastID uuid.UUID) error
	BatchDelete(ctx context.Context, userID *uuid.UUID, ids []uuid.UUID) (*model.BatchDeleteResult, error)
	// Dismiss は「閉じる」操作を記録します。24時間後に再表示される。
	Dismiss(ctx context.Context, broadcastID, userID uuid.UUID) error
}

// Notifier は作成されたお知らせを接続中のクライアントへプッシュ配信します。
type Notifier interface {
	Publish(n realtime.Notification)
}

type broadcastService struct {
	db            *gorm.DB
	broadcastRepo repository.BroadcastRepository
	mailer        Mailer
	notifier      Notifier
	audit         AuditService
	cfg           *config.Config
}

// NewBroadcastService を生成します。notifier は nil 可 (リアルタイム配信なし)。
func NewBroadcastService(db *gorm.DB, broadcastRepo repository.BroadcastRepository, mailer Mailer, notifier Notifier, audit AuditService, cfg *config.Config) BroadcastService {
	return &broadcastService{
		db:            db,
		broadcastRepo: broadcastRepo,
		mailer:        mailer,
		notifier:      notifier,
		audit:         audit,
		cfg:           cfg,
	}
}

func (s *broadcastService) Create(ctx context.Context, userID *uuid.UUID, req *model.CreateBroadcastRequest) (*model.Broadcast, error) {
	logger := middleware.GetLogger(ctx)

	level := req.Level
	if level == "" {
		level = model.BroadcastLevelInfo
	}

	broadcast := &model.Broadcast{
		BroadcastID: uuid.New(),
		Title:       req.Title,
		Body:        req.Body,
		Level:       level,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		IsActive:    true,
		Notify:      req.Notify,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}

	if err := s.broadcastRepo.Create(ctx, s.db, broadcast); err != nil {
		logger.Error("Error creating broadcast", "error", err)
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionCreate, "broadcast", broadcast.BroadcastID.String(), broadcast.Title)

	// notify=true なら設定された宛先にメールで通知する。
	// 送信失敗でお知らせ作成自体は失敗させない。
	if broadcast.Notify {
		s.notifyRecipients(ctx, broadcast)
	}

	// 接続中のクライアントにはレベルを問わずプッシュ配信する
	if s.notifier != nil {
		s.notifier.Publish(realtime.Notification{
			Type:    "broadcast:" + broadcast.Level,
			Title:   broadcast.Title,
			Message: broadcast.Body,
			Data:    map[string]string{"broadcast_id": broadcast.BroadcastID.String()},
		})
	}

	return broadcast, nil
}

func (s *broadcastService) notifyRecipients(ctx context.Context, broadcast *model.Broadcast) {
	logger := middleware.GetLogger(ctx)
	subject := fmt.Sprintf("[%s] お知らせ: %s", config.AppName, broadcast.Title)
	for _, to := range s.cfg.Mailer.BroadcastRecipients {
		if err := s.mailer.Send(ctx, to, subject, broadcast.Body); err != nil {
			logger.Error("Failed to send broadcast notification", "error", err, "to", to)
		}
	}
}

func (s *broadcastService) Get(ctx context.Context, broadcastID uuid.UUID) (*model.Broadcast, error) {
	broadcast, err := s.broadcastRepo.FindByID(ctx, s.db, broadcastID)
	if err != nil {
		return nil, err
	}
	return broadcast, nil
}

func (s *broadcastService) List(ctx context.Context) ([]*model.Broadcast, error) {
	logger := middleware.GetLogger(ctx)
	broadcasts, err := s.broadcastRepo.List(ctx, s.db)
	if err != nil {
		logger.Error("Error listing broadcasts", "error", err)
		return nil, model.ErrInternalServer
	}
	return broadcasts, nil
}

func (s *broadcastService) ListActive(ctx context.Context, userID uuid.UUID) ([]*model.Broadcast, error) {
	logger := middleware.GetLogger(ctx)
	broadcasts, err := s.broadcastRepo.ListActiveForUser(ctx, s.db, userID, time.Now())
	if err != nil {
		logger.Error("Error listing active broadcasts", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}
	return broadcasts, nil
}

func (s *broadcastService) Update(ctx context.Context, userID *uuid.UUID, broadcastID uuid.UUID, req *model.UpdateBroadcastRequest) (*model.Broadcast, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.Broadcast

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.broadcastRepo.FindByID(ctx, tx, broadcastID)
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
		if req.Level != nil {
			updates["level"] = *req.Level
		}
		if req.StartsAt != nil {
			updates["starts_at"] = *req.StartsAt
		}
		if req.EndsAt != nil {
			updates["ends_at"] = *req.EndsAt
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		// 期間の逆転は更新後の組で検査する
		startsAt := current.StartsAt
		if req.StartsAt != nil {
			startsAt = *req.StartsAt
		}
		endsAt := current.EndsAt
		if req.EndsAt != nil {
			endsAt = *req.EndsAt
		}
		if !endsAt.After(startsAt) {
			return model.NewAppError("INVALID_PERIOD", "表示終了は表示開始より後である必要があります", "ends_at", model.ErrInvalidInput)
		}

		if len(updates) > 0 {
			if userID != nil {
				updates["updated_by"] = *userID
			}
			if err := s.broadcastRepo.Update(ctx, tx, broadcastID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return err
				}
				logger.Error("Error updating broadcast", "error", err)
				return model.ErrInternalServer
			}
		}

		updated, err = s.broadcastRepo.FindByID(ctx, tx, broadcastID)
		if err != nil {
			logger.Error("Error fetching updated broadcast", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.Is(err, model.ErrNotFound) || errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for broadcast update", "error", err)
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionUpdate, "broadcast", broadcastID.String(), updated.Title)
	return updated, nil
}

func (s *broadcastService) Delete(ctx context.Context, userID *uuid.UUID, broadcastID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := s.broadcastRepo.Delete(ctx, s.db, broadcastID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting broadcast", "error", err, "broadcast_id", broadcastID.String())
		return model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionDelete, "broadcast", broadcastID.String(), "")
	return nil
}

func (s *broadcastService) BatchDelete(ctx context.Context, userID *uuid.UUID, ids []uuid.UUID) (*model.BatchDeleteResult, error) {
	result := &model.BatchDeleteResult{
		Items: make([]model.BatchDeleteItemResult, 0, len(ids)),
	}
	for _, id := range ids {
		item := model.BatchDeleteItemResult{ID: id}
		if err := s.Delete(ctx, userID, id); err != nil {
			item.OK = false
			item.Error = err.Error()
			result.Failed++
		} else {
			item.OK = true
			result.Deleted++
		}
		result.Items = append(result.Items, item)
	}
	s.audit.Record(ctx, userID, model.AuditActionBatchDelete, "broadcast", "", fmt.Sprintf("deleted=%d failed=%d", result.Deleted, result.Failed))
	return result, nil
}

func (s *broadcastService) Dismiss(ctx context.Context, broadcastID, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if _, err := s.broadcastRepo.FindByID(ctx, s.db, broadcastID); err != nil {
		return err
	}

	dismissal := &model.BroadcastDismissal{
		DismissalID: uuid.New(),
		BroadcastID: broadcastID,
		UserID:      userID,
		DismissedAt: time.Now(),
	}
	if err := s.broadcastRepo.UpsertDismissal(ctx, s.db, dismissal); err != nil {
		logger.Error("Error upserting broadcast dismissal", "error", err, "broadcast_id", broadcastID.String())
		return model.ErrInternalServer
	}
	return nil
}
