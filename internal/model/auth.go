// internal/model/auth.go
package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest は root ログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
type JWTCustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AzureLoginResponse は Azure AD 同意画面URLを返すレスポンス
type AzureLoginResponse struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}

// AzureProfile は Microsoft Graph /me から取得するプロファイルの最小セット
type AzureProfile struct {
	OID         string `json:"id"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
	// 学校/組織アカウントでは mail が空のことがあるため UPN も保持する
	UserPrincipalName string `json:"userPrincipalName"`
}

func (p *AzureProfile) Email() string {
	if p.Mail != "" {
		return p.Mail
	}
	return p.UserPrincipalName
}
