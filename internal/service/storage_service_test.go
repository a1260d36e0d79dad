// internal/service/storage_service_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"glossary_console/internal/model"
	repomocks "glossary_console/internal/repository/mocks"
	svcmocks "glossary_console/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Test 権限レベル (0=なし / 1=参照 / 2=参照+アップロード / 3=全操作) ---
func Test_storageService_PermissionLadder(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()

	bucketID := uuid.New()
	bucket := &model.StorageBucket{BucketID: bucketID, Name: "reports"}
	userID := uuid.New()

	// member ユーザーの各権限レベルでの操作可否
	tests := []struct {
		name       string
		level      int
		hasPermRow bool
		canList    bool
		canUpload  bool
		canDelete  bool
	}{
		{name: "権限行なし (レベル0)", hasPermRow: false, canList: false, canUpload: false, canDelete: false},
		{name: "レベル1: 参照のみ", level: model.StoragePermView, hasPermRow: true, canList: true},
		{name: "レベル2: 参照+アップロード", level: model.StoragePermUpload, hasPermRow: true, canList: true, canUpload: true},
		{name: "レベル3: 全操作", level: model.StoragePermFull, hasPermRow: true, canList: true, canUpload: true, canDelete: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorageRepo := new(repomocks.StorageRepository)
			mockStore := new(svcmocks.ObjectStore)
			storageService := NewStorageService(db, mockStorageRepo, mockStore, noopAudit{})

			mockStorageRepo.On("FindBucketByID", ctx, mock.AnythingOfType("*gorm.DB"), bucketID).
				Return(bucket, nil)
			if tt.hasPermRow {
				mockStorageRepo.On("FindPermission", ctx, mock.AnythingOfType("*gorm.DB"), bucketID, userID).
					Return(&model.StoragePermission{BucketID: bucketID, UserID: userID, Level: tt.level}, nil)
			} else {
				mockStorageRepo.On("FindPermission", ctx, mock.AnythingOfType("*gorm.DB"), bucketID, userID).
					Return(nil, model.ErrNotFound)
			}
			mockStore.On("ListObjects", ctx, "reports", "").
				Return([]*model.StorageObject{}, nil).Maybe()
			mockStore.On("PutObject", ctx, "reports", "a.txt", mock.Anything, int64(3), "text/plain").
				Return(nil).Maybe()
			mockStore.On("RemoveObject", ctx, "reports", "a.txt").
				Return(nil).Maybe()

			_, listErr := storageService.ListObjects(ctx, userID, model.RoleMember, bucketID, "")
			uploadErr := storageService.UploadObject(ctx, userID, model.RoleMember, bucketID, "a.txt", strings.NewReader("abc"), 3, "text/plain")
			deleteErr := storageService.DeleteObject(ctx, userID, model.RoleMember, bucketID, "a.txt")

			if tt.canList {
				assert.NoError(t, listErr)
			} else {
				assert.ErrorIs(t, listErr, model.ErrForbidden)
			}
			if tt.canUpload {
				assert.NoError(t, uploadErr)
			} else {
				assert.ErrorIs(t, uploadErr, model.ErrForbidden)
			}
			if tt.canDelete {
				assert.NoError(t, deleteErr)
			} else {
				assert.ErrorIs(t, deleteErr, model.ErrForbidden)
			}
		})
	}
}

// root と admin は権限行が無くても全操作できる
func Test_storageService_AdminBypass(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()

	bucketID := uuid.New()
	bucket := &model.StorageBucket{BucketID: bucketID, Name: "reports"}
	userID := uuid.New()

	for _, role := range []string{model.RoleRoot, model.RoleAdmin} {
		t.Run(role, func(t *testing.T) {
			mockStorageRepo := new(repomocks.StorageRepository)
			mockStore := new(svcmocks.ObjectStore)
			storageService := NewStorageService(db, mockStorageRepo, mockStore, noopAudit{})

			mockStorageRepo.On("FindBucketByID", ctx, mock.AnythingOfType("*gorm.DB"), bucketID).
				Return(bucket, nil)
			mockStore.On("RemoveObject", ctx, "reports", "a.txt").Return(nil).Once()

			err := storageService.DeleteObject(ctx, userID, role, bucketID, "a.txt")

			require.NoError(t, err)
			// レベル判定バイパスなので権限行は引かない
			mockStorageRepo.AssertNotCalled(t, "FindPermission", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			mockStore.AssertExpectations(t)
		})
	}
}

func Test_storageService_UploadObject_EmptyKey(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	mockStorageRepo := new(repomocks.StorageRepository)
	mockStore := new(svcmocks.ObjectStore)
	storageService := NewStorageService(db, mockStorageRepo, mockStore, noopAudit{})

	err := storageService.UploadObject(ctx, uuid.New(), model.RoleAdmin, uuid.New(), "", strings.NewReader(""), 0, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	// キー検証は権限チェックより前
	mockStorageRepo.AssertNotCalled(t, "FindBucketByID", mock.Anything, mock.Anything, mock.Anything)
}

func Test_storageService_CreateBucket(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	userID := uuid.New()

	t.Run("正常系: メタデータ行とストアの実体を両方作る", func(t *testing.T) {
		mockStorageRepo := new(repomocks.StorageRepository)
		mockStore := new(svcmocks.ObjectStore)
		storageService := NewStorageService(db, mockStorageRepo, mockStore, noopAudit{})

		mockStorageRepo.On("CreateBucket", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StorageBucket")).
			Return(nil).Once()
		mockStore.On("EnsureBucket", ctx, "reports").Return(nil).Once()

		bucket, err := storageService.CreateBucket(ctx, &userID, &model.CreateBucketRequest{Name: "reports"})

		require.NoError(t, err)
		require.NotNil(t, bucket)
		assert.Equal(t, "reports", bucket.Name)
		mockStorageRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("異常系: ストア側の作成失敗でメタデータ行を巻き戻す", func(t *testing.T) {
		mockStorageRepo := new(repomocks.StorageRepository)
		mockStore := new(svcmocks.ObjectStore)
		storageService := NewStorageService(db, mockStorageRepo, mockStore, noopAudit{})

		mockStorageRepo.On("CreateBucket", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StorageBucket")).
			Return(nil).Once()
		mockStore.On("EnsureBucket", ctx, "reports").Return(assert.AnError).Once()
		mockStorageRepo.On("DeleteBucket", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uuid.UUID")).
			Return(nil).Once()

		bucket, err := storageService.CreateBucket(ctx, &userID, &model.CreateBucketRequest{Name: "reports"})

		require.Error(t, err)
		assert.Nil(t, bucket)
		mockStorageRepo.AssertExpectations(t)
	})

	t.Run("異常系: 同名バケットは409", func(t *testing.T) {
		mockStorageRepo := new(repomocks.StorageRepository)
		mockStore := new(svcmocks.ObjectStore)
		storageService := NewStorageService(db, mockStorageRepo, mockStore, noopAudit{})

		mockStorageRepo.On("CreateBucket", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StorageBucket")).
			Return(model.ErrConflict).Once()

		bucket, err := storageService.CreateBucket(ctx, &userID, &model.CreateBucketRequest{Name: "reports"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, bucket)
		mockStore.AssertNotCalled(t, "EnsureBucket", mock.Anything, mock.Anything)
	})
}

func Test_storageService_GrantPermission(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()

	bucketID := uuid.New()
	grantedBy := uuid.New()
	targetUser := uuid.New()

	t.Run("正常系: 権限の付与 (upsert)", func(t *testing.T) {
		mockStorageRepo := new(repomocks.StorageRepository)
		mockStore := new(svcmocks.ObjectStore)
		storageService := NewStorageService(db, mockStorageRepo, mockStore, noopAudit{})

		mockStorageRepo.On("FindBucketByID", ctx, mock.AnythingOfType("*gorm.DB"), bucketID).
			Return(&model.StorageBucket{BucketID: bucketID, Name: "reports"}, nil).Once()
		mockStorageRepo.On("UpsertPermission", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StoragePermission")).
			Run(func(args mock.Arguments) {
				perm := args.Get(2).(*model.StoragePermission)
				assert.Equal(t, targetUser, perm.UserID)
				assert.Equal(t, model.StoragePermUpload, perm.Level)
			}).Return(nil).Once()

		perm, err := storageService.GrantPermission(ctx, &grantedBy, bucketID, &model.GrantPermissionRequest{
			UserID: targetUser,
			Level:  model.StoragePermUpload,
		})

		require.NoError(t, err)
		require.NotNil(t, perm)
		assert.Equal(t, model.StoragePermUpload, perm.Level)
		mockStorageRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないバケット", func(t *testing.T) {
		mockStorageRepo := new(repomocks.StorageRepository)
		mockStore := new(svcmocks.ObjectStore)
		storageService := NewStorageService(db, mockStorageRepo, mockStore, noopAudit{})

		mockStorageRepo.On("FindBucketByID", ctx, mock.AnythingOfType("*gorm.DB"), bucketID).
			Return(nil, model.ErrNotFound).Once()

		perm, err := storageService.GrantPermission(ctx, &grantedBy, bucketID, &model.GrantPermissionRequest{
			UserID: targetUser,
			Level:  model.StoragePermView,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, perm)
	})
}
