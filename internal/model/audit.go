// internal/model/audit.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog は監査ログの1エントリです。追記専用で、更新・削除APIは存在しない。
type AuditLog struct {
	LogID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"log_id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(50);not null;index" json:"resource"`
	ResourceID string     `gorm:"type:varchar(100)" json:"resource_id"`
	Detail     string     `json:"detail"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// 監査ログのアクション名
const (
	AuditActionCreate      = "create"
	AuditActionUpdate      = "update"
	AuditActionDelete      = "delete"
	AuditActionBulkImport  = "bulk_import"
	AuditActionBatchDelete = "batch_delete"
	AuditActionLogin       = "login"
	AuditActionUpload      = "upload"
)

// CreateAuditLogRequest は監査ログ追記APIのリクエストボディ
type CreateAuditLogRequest struct {
	Action     string `json:"action" validate:"required,max=50"`
	Resource   string `json:"resource" validate:"required,max=50"`
	ResourceID string `json:"resource_id" validate:"max=100"`
	Detail     string `json:"detail" validate:"max=2000"`
}

// AuditLogFilter は監査ログ一覧の絞り込み条件です。
// Limit はデフォルト50、上限100に丸められる。
type AuditLogFilter struct {
	UserID   *uuid.UUID
	Action   string
	Resource string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// AuditLogList は監査ログ一覧APIのレスポンス
type AuditLogList struct {
	Logs   []*AuditLog `json:"logs"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
