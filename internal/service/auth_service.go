//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
// internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"glossary_console/internal/config"
	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
	"gorm.io/gorm"
)

// AuthService は root ログインと Azure AD OAuth、セッションユーザー取得を提供します。
type AuthService interface {
	// Login は root ユーザーのメール+パスワード認証です。
	// 一般ユーザーは Azure AD 経由のみ。
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	// AzureLoginURL は Azure AD の同意画面URLと state を返します。
	AzureLoginURL(ctx context.Context) (*model.AzureLoginResponse, error)
	// AzureCallback は認可コードを交換し、Graph /me のプロファイルで
	// ユーザーを upsert してトークンを発行します。
	AzureCallback(ctx context.Context, code string) (*model.LoginResponse, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	audit    AuditService
	cfg      *config.Config
	oauth    *oauth2.Config
	// Graph API 呼び出し用。テストで差し替えられるようフィールドに持つ
	httpClient *http.Client
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, audit AuditService, cfg *config.Config) AuthService {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.AzureAD.ClientID,
		ClientSecret: cfg.AzureAD.ClientSecret,
		RedirectURL:  cfg.AzureAD.RedirectURL,
		Scopes:       []string{"openid", "profile", "email", "User.Read"},
		Endpoint:     microsoft.AzureADEndpoint(cfg.AzureAD.TenantID),
	}
	return &authService{
		db:         db,
		userRepo:   userRepo,
		audit:      audit,
		cfg:        cfg,
		oauth:      oauthCfg,
		httpClient: nil, // nil のときは oauth2 のトークン付きクライアントを使う
	}
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	// パスワード認証は root ユーザー専用
	if user.Role != model.RoleRoot || user.PasswordHash == nil {
		logger.Warn("Login failed: password login not allowed for user", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
	}

	if !user.IsActive {
		logger.Warn("Login failed: account not active", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "アカウントが無効化されています。", "", model.ErrForbidden)
	}

	signedToken, err := s.signToken(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	s.audit.Record(ctx, &user.UserID, model.AuditActionLogin, "user", user.UserID.String(), "root login")
	return &model.LoginResponse{AccessToken: signedToken, User: user}, nil
}

func (s *authService) AzureLoginURL(ctx context.Context) (*model.AzureLoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		logger.Error("Failed to generate state nonce", "error", err)
		return nil, model.ErrInternalServer
	}
	state := hex.EncodeToString(buf)

	return &model.AzureLoginResponse{
		AuthURL: s.oauth.AuthCodeURL(state),
		State:   state,
	}, nil
}

func (s *authService) AzureCallback(ctx context.Context, code string) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	if code == "" {
		return nil, model.NewAppError("MISSING_CODE", "認可コードがありません。", "code", model.ErrInvalidInput)
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		logger.Warn("Azure AD code exchange failed", "error", err)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Azure AD 認証に失敗しました。", "", model.ErrUnauthorized)
	}

	profile, err := s.fetchAzureProfile(ctx, token)
	if err != nil {
		logger.Error("Failed to fetch Azure AD profile", "error", err)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "プロファイルの取得に失敗しました。", "", model.ErrUnauthorized)
	}

	user, err := s.upsertAzureUser(ctx, profile)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		logger.Warn("Azure login rejected: account not active", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "アカウントが無効化されています。", "", model.ErrForbidden)
	}

	signedToken, err := s.signToken(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Azure login successful", "user_id", user.UserID)
	s.audit.Record(ctx, &user.UserID, model.AuditActionLogin, "user", user.UserID.String(), "azure login")
	return &model.LoginResponse{AccessToken: signedToken, User: user}, nil
}

func (s *authService) fetchAzureProfile(ctx context.Context, token *oauth2.Token) (*model.AzureProfile, error) {
	client := s.httpClient
	if client == nil {
		client = s.oauth.Client(ctx, token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.AzureAD.GraphBaseURL+"/me", nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("graph /me returned status %d", resp.StatusCode)
	}

	var profile model.AzureProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	if profile.OID == "" {
		return nil, errors.New("graph /me response has no id")
	}
	return &profile, nil
}

// upsertAzureUser は AzureOID で既存ユーザーを探し、無ければメールで探して
// OID を紐付け、それでも無ければ member として新規作成します。
func (s *authService) upsertAzureUser(ctx context.Context, profile *model.AzureProfile) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	var result *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByAzureOID(ctx, tx, profile.OID)
		if err == nil {
			// 表示名の変更に追従する
			if user.Name != profile.DisplayName && profile.DisplayName != "" {
				if err := s.userRepo.Update(ctx, tx, user.UserID, map[string]interface{}{"name": profile.DisplayName}); err != nil {
					logger.Warn("Failed to refresh user name from Azure profile", "error", err)
				} else {
					user.Name = profile.DisplayName
				}
			}
			result = user
			return nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding user by Azure OID", "error", err)
			return model.ErrInternalServer
		}

		email := profile.Email()
		if email == "" {
			return model.NewAppError("MISSING_EMAIL", "Azure AD プロファイルにメールアドレスがありません。", "", model.ErrInvalidInput)
		}

		user, err = s.userRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			// 事前登録済みユーザーにOIDを紐付ける
			oid := profile.OID
			if err := s.userRepo.Update(ctx, tx, user.UserID, map[string]interface{}{"azure_oid": oid}); err != nil {
				logger.Error("Failed to link Azure OID to existing user", "error", err)
				return model.ErrInternalServer
			}
			user.AzureOID = &oid
			result = user
			return nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding user by email", "error", err)
			return model.ErrInternalServer
		}

		oid := profile.OID
		newUser := &model.User{
			UserID:   uuid.New(),
			Email:    email,
			Name:     profile.DisplayName,
			Role:     model.RoleMember,
			AzureOID: &oid,
			IsActive: true,
		}
		if err := s.userRepo.Create(ctx, tx, newUser); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.ErrConflict
			}
			logger.Error("Failed to create user from Azure profile", "error", err)
			return model.ErrInternalServer
		}
		result = newUser
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.Is(err, model.ErrConflict) || errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for Azure user upsert", "error", err)
		return nil, model.ErrInternalServer
	}
	return result, nil
}

func (s *authService) GetMe(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) signToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &model.JWTCustomClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			Subject:   user.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
