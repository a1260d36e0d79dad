// internal/service/audit_service_test.go
package service

import (
	"context"
	"testing"

	"glossary_console/internal/model"
	"glossary_console/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_auditService_List_LimitClamp(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "limit未指定はデフォルト50", limit: 0, wantLimit: 50},
		{name: "負のlimitもデフォルト50", limit: -5, wantLimit: 50},
		{name: "上限100を超えたら100に丸める", limit: 500, wantLimit: 100},
		{name: "範囲内はそのまま", limit: 20, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuditRepo := new(mocks.AuditLogRepository)
			auditService := NewAuditService(db, mockAuditRepo, testGlossaryConfig())

			mockAuditRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(f *model.AuditLogFilter) bool {
				return f.Limit == tt.wantLimit
			})).Return([]*model.AuditLog{}, int64(0), nil).Once()

			list, err := auditService.List(ctx, &model.AuditLogFilter{Limit: tt.limit})

			require.NoError(t, err)
			require.NotNil(t, list)
			assert.Equal(t, tt.wantLimit, list.Limit)
			mockAuditRepo.AssertExpectations(t)
		})
	}
}

func Test_auditService_Record_BestEffort(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	mockAuditRepo := new(mocks.AuditLogRepository)
	auditService := NewAuditService(db, mockAuditRepo, testGlossaryConfig())

	userID := uuid.New()

	// 書き込み失敗してもパニックもエラーも起きない (best-effort)
	mockAuditRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.AuditLog")).
		Return(assert.AnError).Once()

	auditService.Record(ctx, &userID, model.AuditActionCreate, "glossary_task", "id", "detail")

	mockAuditRepo.AssertExpectations(t)
}

func Test_auditService_Append(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	mockAuditRepo := new(mocks.AuditLogRepository)
	auditService := NewAuditService(db, mockAuditRepo, testGlossaryConfig())

	userID := uuid.New()

	mockAuditRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.AuditLog")).
		Run(func(args mock.Arguments) {
			entry := args.Get(2).(*model.AuditLog)
			assert.Equal(t, "export", entry.Action)
			assert.Equal(t, "glossary", entry.Resource)
			require.NotNil(t, entry.UserID)
			assert.Equal(t, userID, *entry.UserID)
			assert.NotEqual(t, uuid.Nil, entry.LogID)
		}).Return(nil).Once()

	entry, err := auditService.Append(ctx, &userID, &model.CreateAuditLogRequest{
		Action:   "export",
		Resource: "glossary",
	})

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "export", entry.Action)
	mockAuditRepo.AssertExpectations(t)
}
