// internal/model/glossary.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GlossaryTask は用語集タスク（プロンプトの雛形）を表します。
// Name は大文字小文字を区別せず一意 (lower(name) の関数インデックス)。
// ContextTemplate はリテラル "{keyword}" プレースホルダを含む想定（強制はしない）。
type GlossaryTask struct {
	TaskID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"task_id"`
	Name            string         `gorm:"not null;index:idx_glossary_tasks_lower_name,expression:lower(name),unique" json:"name"`
	Description     string         `json:"description"`
	InstructionEN   string         `gorm:"not null" json:"instruction_en"`
	InstructionJA   string         `json:"instruction_ja"`
	InstructionVI   string         `json:"instruction_vi"`
	ContextTemplate string         `gorm:"not null" json:"context_template"`
	SortOrder       int            `gorm:"default:0" json:"sort_order"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	CreatedBy       *uuid.UUID     `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedBy       *uuid.UUID     `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Keywords []GlossaryKeyword `gorm:"foreignKey:TaskID;references:TaskID" json:"keywords,omitempty"`
}

func (GlossaryTask) TableName() string {
	return "glossary_tasks"
}

// Instruction は指定言語の指示文を返します。未設定の場合は英語にフォールバックします。
func (t *GlossaryTask) Instruction(lang string) string {
	switch lang {
	case "ja":
		if t.InstructionJA != "" {
			return t.InstructionJA
		}
	case "vi":
		if t.InstructionVI != "" {
			return t.InstructionVI
		}
	}
	return t.InstructionEN
}

// GlossaryKeyword はタスクに属するキーワードを表します。
// Name はタスク内で大文字小文字を区別せず一意。
type GlossaryKeyword struct {
	KeywordID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"keyword_id"`
	TaskID      uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_glossary_keywords_task_lower_name,priority:1" json:"task_id"`
	Name        string         `gorm:"not null;uniqueIndex:idx_glossary_keywords_task_lower_name,expression:lower(name),priority:2" json:"name"`
	EnKeyword   string         `json:"en_keyword"`
	Description string         `json:"description"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedBy   *uuid.UUID     `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedBy   *uuid.UUID     `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GlossaryKeyword) TableName() string {
	return "glossary_keywords"
}

// --- リクエストDTO ---

// タスク作成リクエストDTO
type CreateTaskRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Description     string `json:"description" validate:"max=1000"`
	InstructionEN   string `json:"instruction_en" validate:"required"`
	InstructionJA   string `json:"instruction_ja"`
	InstructionVI   string `json:"instruction_vi"`
	ContextTemplate string `json:"context_template" validate:"required"`
	SortOrder       int    `json:"sort_order"`
	IsActive        *bool  `json:"is_active"`
}

// タスク更新リクエストDTO (部分更新、nilのフィールドは変更しない)
type UpdateTaskRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	InstructionEN   *string `json:"instruction_en,omitempty" validate:"omitempty,min=1"`
	InstructionJA   *string `json:"instruction_ja,omitempty"`
	InstructionVI   *string `json:"instruction_vi,omitempty"`
	ContextTemplate *string `json:"context_template,omitempty" validate:"omitempty,min=1"`
	SortOrder       *int    `json:"sort_order,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// キーワード作成リクエストDTO
type CreateKeywordRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	EnKeyword   string `json:"en_keyword" validate:"max=200"`
	Description string `json:"description" validate:"max=1000"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// キーワード更新リクエストDTO
type UpdateKeywordRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	EnKeyword   *string `json:"en_keyword,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// SearchResult は検索APIのレスポンスです。タスクとキーワードの2配列をそのまま返す。
type SearchResult struct {
	Tasks    []*GlossaryTask    `json:"tasks"`
	Keywords []*GlossaryKeyword `json:"keywords"`
}

// GeneratePromptRequest はプロンプト生成APIのリクエストボディ
type GeneratePromptRequest struct {
	TaskID     uuid.UUID   `json:"task_id" validate:"required"`
	KeywordIDs []uuid.UUID `json:"keyword_ids" validate:"required,min=1"`
	Lang       string      `json:"lang" validate:"omitempty,oneof=en ja vi"`
}

// GeneratePromptResponse はプロンプト生成APIのレスポンス
type GeneratePromptResponse struct {
	Prompt string `json:"prompt"`
}

// PreviewPromptRequest はプレビュー合成APIのリクエストボディ。
// フロントの Prompt Builder が使っていた引用規則 (言語別) をサーバ側に寄せたもの。
type PreviewPromptRequest struct {
	TaskID     uuid.UUID   `json:"task_id" validate:"required"`
	KeywordIDs []uuid.UUID `json:"keyword_ids" validate:"required,min=1"`
	Lang       string      `json:"lang" validate:"required,oneof=en ja vi"`
	Context    string      `json:"context"`
}

// BatchDeleteRequest は一括削除APIのリクエストボディ
type BatchDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1,max=500"`
}

// BatchDeleteItemResult は一括削除の項目ごとの結果
type BatchDeleteItemResult struct {
	ID    uuid.UUID `json:"id"`
	OK    bool      `json:"ok"`
	Error string    `json:"error,omitempty"`
}

// BatchDeleteResult は一括削除APIのレスポンス
type BatchDeleteResult struct {
	Deleted int                     `json:"deleted"`
	Failed  int                     `json:"failed"`
	Items   []BatchDeleteItemResult `json:"items"`
}
