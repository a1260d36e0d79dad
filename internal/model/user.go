// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ユーザーのロール
const (
	RoleRoot   = "root"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// 認証プロバイダ
const (
	AuthProviderRoot  = "root"
	AuthProviderAzure = "azure"
)

// User は管理コンソールの利用者を表します。
// root ユーザーのみ PasswordHash を持ち、Azure AD 経由のユーザーは AzureOID で紐付く。
type User struct {
	UserID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email        string         `gorm:"unique;not null" json:"email"`
	Name         string         `gorm:"not null" json:"name"`
	Role         string         `gorm:"type:varchar(20);not null;default:member" json:"role"`
	PasswordHash *string        `gorm:"default:null" json:"-"`
	AzureOID     *string        `gorm:"uniqueIndex;default:null" json:"-"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UserRoleKey ContextKey = "userRole"
)
