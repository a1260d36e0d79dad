// internal/service/broadcast_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"glossary_console/internal/model"
	"glossary_console/internal/realtime"
	"glossary_console/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingMailer は送信内容を記録するスタブ。失敗も差し込める。
type recordingMailer struct {
	sent []string // 宛先のリスト
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent = append(m.sent, to)
	return m.err
}

// recordingNotifier は配信された通知を記録するスタブ。
type recordingNotifier struct {
	published []realtime.Notification
}

func (n *recordingNotifier) Publish(notification realtime.Notification) {
	n.published = append(n.published, notification)
}

func Test_broadcastService_Create(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	userID := uuid.New()

	now := time.Now()
	req := &model.CreateBroadcastRequest{
		Title:    "メンテナンスのお知らせ",
		Body:     "本文",
		StartsAt: now,
		EndsAt:   now.Add(24 * time.Hour),
	}

	t.Run("正常系: レベル省略時は info、notify=false ならメールなし", func(t *testing.T) {
		mockRepo := new(mocks.BroadcastRepository)
		mailer := &recordingMailer{}
		cfg := testGlossaryConfig()
		cfg.Mailer.BroadcastRecipients = []string{"all@example.com"}
		broadcastService := NewBroadcastService(db, mockRepo, mailer, nil, noopAudit{}, cfg)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Broadcast")).
			Run(func(args mock.Arguments) {
				b := args.Get(2).(*model.Broadcast)
				assert.Equal(t, model.BroadcastLevelInfo, b.Level)
				assert.True(t, b.IsActive)
			}).Return(nil).Once()

		broadcast, err := broadcastService.Create(ctx, &userID, req)

		require.NoError(t, err)
		require.NotNil(t, broadcast)
		assert.Empty(t, mailer.sent)
		mockRepo.AssertExpectations(t)
	})

	t.Run("正常系: notify=true なら設定された宛先全員にメール", func(t *testing.T) {
		mockRepo := new(mocks.BroadcastRepository)
		mailer := &recordingMailer{}
		cfg := testGlossaryConfig()
		cfg.Mailer.BroadcastRecipients = []string{"a@example.com", "b@example.com"}
		broadcastService := NewBroadcastService(db, mockRepo, mailer, nil, noopAudit{}, cfg)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Broadcast")).
			Return(nil).Once()

		notifyReq := *req
		notifyReq.Notify = true
		broadcast, err := broadcastService.Create(ctx, &userID, &notifyReq)

		require.NoError(t, err)
		require.NotNil(t, broadcast)
		assert.Equal(t, []string{"a@example.com", "b@example.com"}, mailer.sent)
	})

	t.Run("正常系: メール送信失敗でもお知らせ作成は成功", func(t *testing.T) {
		mockRepo := new(mocks.BroadcastRepository)
		mailer := &recordingMailer{err: assert.AnError}
		cfg := testGlossaryConfig()
		cfg.Mailer.BroadcastRecipients = []string{"a@example.com"}
		broadcastService := NewBroadcastService(db, mockRepo, mailer, nil, noopAudit{}, cfg)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Broadcast")).
			Return(nil).Once()

		notifyReq := *req
		notifyReq.Notify = true
		broadcast, err := broadcastService.Create(ctx, &userID, &notifyReq)

		require.NoError(t, err)
		require.NotNil(t, broadcast)
	})

	t.Run("正常系: 接続中クライアントへのプッシュ配信", func(t *testing.T) {
		mockRepo := new(mocks.BroadcastRepository)
		notifier := &recordingNotifier{}
		broadcastService := NewBroadcastService(db, mockRepo, &recordingMailer{}, notifier, noopAudit{}, testGlossaryConfig())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Broadcast")).
			Return(nil).Once()

		broadcast, err := broadcastService.Create(ctx, &userID, req)

		require.NoError(t, err)
		require.NotNil(t, broadcast)
		require.Len(t, notifier.published, 1)
		n := notifier.published[0]
		assert.Equal(t, "broadcast:info", n.Type)
		assert.Equal(t, req.Title, n.Title)
		assert.Equal(t, req.Body, n.Message)
		assert.Equal(t, map[string]string{"broadcast_id": broadcast.BroadcastID.String()}, n.Data)
	})
}

func Test_broadcastService_Update_PeriodInversion(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	userID := uuid.New()
	broadcastID := uuid.New()

	now := time.Now()
	current := &model.Broadcast{
		BroadcastID: broadcastID,
		Title:       "お知らせ",
		StartsAt:    now,
		EndsAt:      now.Add(24 * time.Hour),
		IsActive:    true,
	}

	t.Run("異常系: 更新後の組で終了が開始より前になる", func(t *testing.T) {
		mockRepo := new(mocks.BroadcastRepository)
		broadcastService := NewBroadcastService(db, mockRepo, &recordingMailer{}, nil, noopAudit{}, testGlossaryConfig())

		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), broadcastID).
			Return(current, nil).Once()

		// ends_at だけを開始より前に動かす
		badEnd := now.Add(-time.Hour)
		updated, err := broadcastService.Update(ctx, &userID, broadcastID, &model.UpdateBroadcastRequest{EndsAt: &badEnd})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: 期間が正しければ更新される", func(t *testing.T) {
		mockRepo := new(mocks.BroadcastRepository)
		broadcastService := NewBroadcastService(db, mockRepo, &recordingMailer{}, nil, noopAudit{}, testGlossaryConfig())

		newEnd := now.Add(48 * time.Hour)
		after := *current
		after.EndsAt = newEnd

		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), broadcastID).
			Return(current, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), broadcastID, mock.AnythingOfType("map[string]interface {}")).
			Return(nil).Once()
		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), broadcastID).
			Return(&after, nil).Once()

		updated, err := broadcastService.Update(ctx, &userID, broadcastID, &model.UpdateBroadcastRequest{EndsAt: &newEnd})

		require.NoError(t, err)
		assert.Equal(t, newEnd.Unix(), updated.EndsAt.Unix())
		mockRepo.AssertExpectations(t)
	})
}

func Test_broadcastService_Dismiss(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	broadcastID := uuid.New()
	userID := uuid.New()

	t.Run("正常系: 却下が記録される", func(t *testing.T) {
		mockRepo := new(mocks.BroadcastRepository)
		broadcastService := NewBroadcastService(db, mockRepo, &recordingMailer{}, nil, noopAudit{}, testGlossaryConfig())

		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), broadcastID).
			Return(&model.Broadcast{BroadcastID: broadcastID}, nil).Once()
		mockRepo.On("UpsertDismissal", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.BroadcastDismissal")).
			Run(func(args mock.Arguments) {
				d := args.Get(2).(*model.BroadcastDismissal)
				assert.Equal(t, broadcastID, d.BroadcastID)
				assert.Equal(t, userID, d.UserID)
				assert.WithinDuration(t, time.Now(), d.DismissedAt, 5*time.Second)
			}).Return(nil).Once()

		err := broadcastService.Dismiss(ctx, broadcastID, userID)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないお知らせ", func(t *testing.T) {
		mockRepo := new(mocks.BroadcastRepository)
		broadcastService := NewBroadcastService(db, mockRepo, &recordingMailer{}, nil, noopAudit{}, testGlossaryConfig())

		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), broadcastID).
			Return(nil, model.ErrNotFound).Once()

		err := broadcastService.Dismiss(ctx, broadcastID, userID)

		assert.ErrorIs(t, err, model.ErrNotFound)
		mockRepo.AssertNotCalled(t, "UpsertDismissal", mock.Anything, mock.Anything, mock.Anything)
	})
}
