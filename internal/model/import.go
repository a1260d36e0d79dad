// internal/model/import.go
package model

// BulkImportRow はスプレッドシートからパースされた1行分のデータです。
// 永続化はされない。必須セルの欠けた行はクライアント側で除外されてから送られてくる。
type BulkImportRow struct {
	TaskName           string `json:"task_name"`
	InstructionEN      string `json:"task_instruction_en"`
	InstructionJA      string `json:"task_instruction_ja"`
	InstructionVI      string `json:"task_instruction_vi"`
	ContextTemplate    string `json:"context_template"`
	Keyword            string `json:"keyword"`
	KeywordDescription string `json:"keyword_description"`
}

// BulkImportRequest は一括インポートAPIのリクエストボディ
type BulkImportRequest struct {
	Rows []BulkImportRow `json:"rows" validate:"required,min=1,max=10000"`
}

// BulkImportResult は一括インポートの結果です。
// チャンク方式のインポートでは errors が非空でも HTTP 200 を返すため、
// 呼び出し側はステータスコードではなく success / errors を見て部分失敗を検知する。
type BulkImportResult struct {
	Success      bool     `json:"success"`
	TasksCreated int      `json:"tasks_created"`
	Created      int      `json:"created"`
	Skipped      int      `json:"skipped"`
	Errors       []string `json:"errors"`
}

// TaskImportRow はタスクのみインポートの1行
type TaskImportRow struct {
	Name            string `json:"task_name"`
	Description     string `json:"description"`
	InstructionEN   string `json:"task_instruction_en"`
	InstructionJA   string `json:"task_instruction_ja"`
	InstructionVI   string `json:"task_instruction_vi"`
	ContextTemplate string `json:"context_template"`
}

// TaskImportRequest はタスクのみ一括インポートのリクエストボディ
type TaskImportRequest struct {
	Rows []TaskImportRow `json:"rows" validate:"required,min=1,max=10000"`
}

// KeywordImportRow はキーワードのみインポートの1行
type KeywordImportRow struct {
	Name        string `json:"keyword"`
	EnKeyword   string `json:"en_keyword"`
	Description string `json:"keyword_description"`
}

// KeywordImportRequest はキーワードのみ一括インポートのリクエストボディ
type KeywordImportRequest struct {
	Rows []KeywordImportRow `json:"rows" validate:"required,min=1,max=10000"`
}

// TreeTask はタスクと有効キーワードをネストして返すツリーAPIのノード
type TreeTask struct {
	Task     *GlossaryTask      `json:"task"`
	Keywords []*GlossaryKeyword `json:"keywords"`
}
