// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "GlossaryConsole"
	AppVersion = "1.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort         = ":8080"
	DefaultLogLevel           = "info"
	DefaultImportChunkSize    = 100
	DefaultAuditLogLimit      = 50
	DefaultAuditLogMaxLimit   = 100
	DefaultJWTExpirationHours = 12
	DefaultGraphBaseURL       = "https://graph.microsoft.com/v1.0"
)
