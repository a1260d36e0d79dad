// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"glossary_console/internal/config"
	"glossary_console/internal/model"
	"glossary_console/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	cfg := testGlossaryConfig()
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "glossary-console"
	return cfg
}

func hashPassword(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

// --- Test Login (rootユーザー専用のパスワード認証) ---
func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()

	rootUser := func(t *testing.T) *model.User {
		return &model.User{
			UserID:       uuid.New(),
			Email:        "root@example.com",
			Name:         "Root",
			Role:         model.RoleRoot,
			PasswordHash: hashPassword(t, "correct-password"),
			IsActive:     true,
		}
	}

	tests := []struct {
		name      string
		req       *model.LoginRequest
		setupMock func(t *testing.T, userRepo *mocks.UserRepository)
		wantErr   error
		wantToken bool
	}{
		{
			name: "正常系: 正しいパスワードでトークン発行",
			req:  &model.LoginRequest{Email: "root@example.com", Password: "correct-password"},
			setupMock: func(t *testing.T, userRepo *mocks.UserRepository) {
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "root@example.com").
					Return(rootUser(t), nil).Once()
			},
			wantErr:   nil,
			wantToken: true,
		},
		{
			name: "異常系: 存在しないユーザー",
			req:  &model.LoginRequest{Email: "nobody@example.com", Password: "x"},
			setupMock: func(t *testing.T, userRepo *mocks.UserRepository) {
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "nobody@example.com").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrUnauthorized,
		},
		{
			name: "異常系: パスワード不一致",
			req:  &model.LoginRequest{Email: "root@example.com", Password: "wrong-password"},
			setupMock: func(t *testing.T, userRepo *mocks.UserRepository) {
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "root@example.com").
					Return(rootUser(t), nil).Once()
			},
			wantErr: model.ErrUnauthorized,
		},
		{
			name: "異常系: root以外はパスワードログイン不可",
			req:  &model.LoginRequest{Email: "member@example.com", Password: "correct-password"},
			setupMock: func(t *testing.T, userRepo *mocks.UserRepository) {
				member := &model.User{
					UserID:       uuid.New(),
					Email:        "member@example.com",
					Role:         model.RoleMember,
					PasswordHash: hashPassword(t, "correct-password"),
					IsActive:     true,
				}
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "member@example.com").
					Return(member, nil).Once()
			},
			wantErr: model.ErrUnauthorized,
		},
		{
			name: "異常系: 無効化されたアカウント",
			req:  &model.LoginRequest{Email: "root@example.com", Password: "correct-password"},
			setupMock: func(t *testing.T, userRepo *mocks.UserRepository) {
				inactive := rootUser(t)
				inactive.IsActive = false
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "root@example.com").
					Return(inactive, nil).Once()
			},
			wantErr: model.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mocks.UserRepository)
			authService := NewAuthService(db, mockUserRepo, noopAudit{}, testAuthConfig())
			tt.setupMock(t, mockUserRepo)

			resp, err := authService.Login(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
			}
			if tt.wantToken {
				assert.NotEmpty(t, resp.AccessToken)

				// 発行されたトークンにロールとsubjectが入っていること
				claims := &model.JWTCustomClaims{}
				parsed, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
					return []byte("test-secret"), nil
				})
				require.NoError(t, err)
				assert.True(t, parsed.Valid)
				assert.Equal(t, model.RoleRoot, claims.Role)
				assert.Equal(t, resp.User.UserID.String(), claims.Subject)
			}
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func Test_authService_AzureLoginURL(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	mockUserRepo := new(mocks.UserRepository)
	cfg := testAuthConfig()
	cfg.AzureAD.ClientID = "client-id"
	cfg.AzureAD.TenantID = "tenant-id"
	cfg.AzureAD.RedirectURL = "http://localhost:3000/auth/azure/callback"
	authService := NewAuthService(db, mockUserRepo, noopAudit{}, cfg)

	resp, err := authService.AzureLoginURL(ctx)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.State)
	assert.Contains(t, resp.AuthURL, "tenant-id")
	assert.Contains(t, resp.AuthURL, "client_id=client-id")
	assert.Contains(t, resp.AuthURL, "state="+resp.State)

	// state は呼び出しごとに異なる
	resp2, err := authService.AzureLoginURL(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, resp.State, resp2.State)
}

func Test_authService_AzureCallback_MissingCode(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(db, mockUserRepo, noopAudit{}, testAuthConfig())

	resp, err := authService.AzureCallback(ctx, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Nil(t, resp)
}

// --- Test upsertAzureUser (OID一致 → メール一致 → 新規作成の順) ---
func Test_authService_UpsertAzureUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()

	profile := &model.AzureProfile{
		OID:         "azure-oid-1",
		DisplayName: "Taro Yamada",
		Mail:        "taro@example.com",
	}

	t.Run("OIDで既存ユーザーが見つかる", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewAuthService(db, mockUserRepo, noopAudit{}, testAuthConfig()).(*authService)

		existing := &model.User{UserID: uuid.New(), Email: "taro@example.com", Name: "Taro Yamada", Role: model.RoleMember, IsActive: true}
		mockUserRepo.On("FindByAzureOID", ctx, mock.AnythingOfType("*gorm.DB"), "azure-oid-1").
			Return(existing, nil).Once()

		user, err := svc.upsertAzureUser(ctx, profile)

		require.NoError(t, err)
		assert.Equal(t, existing.UserID, user.UserID)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("メール一致の事前登録ユーザーにOIDを紐付ける", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewAuthService(db, mockUserRepo, noopAudit{}, testAuthConfig()).(*authService)

		preRegistered := &model.User{UserID: uuid.New(), Email: "taro@example.com", Name: "Taro Yamada", Role: model.RoleAdmin, IsActive: true}
		mockUserRepo.On("FindByAzureOID", ctx, mock.AnythingOfType("*gorm.DB"), "azure-oid-1").
			Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "taro@example.com").
			Return(preRegistered, nil).Once()
		mockUserRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), preRegistered.UserID, mock.MatchedBy(func(updates map[string]interface{}) bool {
			oid, ok := updates["azure_oid"]
			return ok && oid == "azure-oid-1"
		})).Return(nil).Once()

		user, err := svc.upsertAzureUser(ctx, profile)

		require.NoError(t, err)
		// 事前登録時のロールが保持される
		assert.Equal(t, model.RoleAdmin, user.Role)
		require.NotNil(t, user.AzureOID)
		assert.Equal(t, "azure-oid-1", *user.AzureOID)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("未登録なら member として新規作成", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewAuthService(db, mockUserRepo, noopAudit{}, testAuthConfig()).(*authService)

		mockUserRepo.On("FindByAzureOID", ctx, mock.AnythingOfType("*gorm.DB"), "azure-oid-1").
			Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "taro@example.com").
			Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				u := args.Get(2).(*model.User)
				assert.Equal(t, "taro@example.com", u.Email)
				assert.Equal(t, model.RoleMember, u.Role)
				assert.True(t, u.IsActive)
			}).Return(nil).Once()

		user, err := svc.upsertAzureUser(ctx, profile)

		require.NoError(t, err)
		assert.Equal(t, model.RoleMember, user.Role)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("プロファイルにメールが無ければ入力エラー", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewAuthService(db, mockUserRepo, noopAudit{}, testAuthConfig()).(*authService)

		noEmail := &model.AzureProfile{OID: "azure-oid-2", DisplayName: "No Mail"}
		mockUserRepo.On("FindByAzureOID", ctx, mock.AnythingOfType("*gorm.DB"), "azure-oid-2").
			Return(nil, model.ErrNotFound).Once()

		user, err := svc.upsertAzureUser(ctx, noEmail)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, user)
	})
}

func Test_authService_GetMe(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBGlossary()
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(db, mockUserRepo, noopAudit{}, testAuthConfig())

	userID := uuid.New()
	mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return(&model.User{UserID: userID, Email: "me@example.com"}, nil).Once()

	user, err := authService.GetMe(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "me@example.com", user.Email)
}
