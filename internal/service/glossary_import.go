// internal/service/glossary_import.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BulkImport はタスクとキーワードの混在シートの一括インポートです (形式A)。
// 全行を1トランザクションで処理し、1件でも失敗したら全体をロールバックする。
//
// 行は TaskName (trim後) でグループ化され、初出順が保たれる。タスクが既に
// 存在する場合 (大文字小文字を区別しない) はそれを使い、存在しなければ
// グループ先頭行の指示文/テンプレートで作成する (first-row-wins)。
// タスク名空欄の行、キーワード空欄の行、タスク内に既存の同名キーワードは
// skipped に数える。
func (s *glossaryService) BulkImport(ctx context.Context, userID *uuid.UUID, req *model.BulkImportRequest) (*model.BulkImportResult, error) {
	logger := middleware.GetLogger(ctx)

	// 初出順を保ったグループ化
	type taskGroup struct {
		name string
		rows []model.BulkImportRow
	}
	result := &model.BulkImportResult{Success: true, Errors: []string{}}

	groupIndex := make(map[string]*taskGroup)
	var groups []*taskGroup
	for _, row := range req.Rows {
		name := strings.TrimSpace(row.TaskName)
		if name == "" {
			// タスク名空欄の行もカウントに含める
			result.Skipped++
			continue
		}
		key := strings.ToLower(name)
		g, ok := groupIndex[key]
		if !ok {
			g = &taskGroup{name: name}
			groupIndex[key] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, row)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, g := range groups {
			// タスク検索 (大文字小文字を区別しない)、無ければ先頭行から作成
			task, err := s.taskRepo.FindByName(ctx, tx, g.name)
			if err != nil {
				if !errors.Is(err, model.ErrNotFound) {
					return fmt.Errorf("task %q: %w", g.name, err)
				}
				first := g.rows[0]
				task = &model.GlossaryTask{
					TaskID:          uuid.New(),
					Name:            g.name,
					InstructionEN:   first.InstructionEN,
					InstructionJA:   first.InstructionJA,
					InstructionVI:   first.InstructionVI,
					ContextTemplate: first.ContextTemplate,
					IsActive:        true,
					CreatedBy:       userID,
					UpdatedBy:       userID,
				}
				if err := s.taskRepo.Create(ctx, tx, task); err != nil {
					return fmt.Errorf("task %q: %w", g.name, err)
				}
				result.TasksCreated++
			}

			for _, row := range g.rows {
				kwName := strings.TrimSpace(row.Keyword)
				if kwName == "" {
					result.Skipped++
					continue
				}
				// 既存キーワードの検索は完全一致 (タスク検索との非対称は互換挙動)
				_, err := s.keywordRepo.FindByTaskAndName(ctx, tx, task.TaskID, kwName)
				if err == nil {
					result.Skipped++
					continue
				}
				if !errors.Is(err, model.ErrNotFound) {
					return fmt.Errorf("keyword %q: %w", kwName, err)
				}
				keyword := &model.GlossaryKeyword{
					KeywordID:   uuid.New(),
					TaskID:      task.TaskID,
					Name:        kwName,
					Description: row.KeywordDescription,
					IsActive:    true,
					CreatedBy:   userID,
					UpdatedBy:   userID,
				}
				if err := s.keywordRepo.Create(ctx, tx, keyword); err != nil {
					return fmt.Errorf("keyword %q: %w", kwName, err)
				}
				result.Created++
			}
		}
		return nil
	})

	if err != nil {
		logger.Warn("Bulk import rolled back", "error", err)
		// All-or-nothing: ロールバック済みなのでカウントも破棄する
		return &model.BulkImportResult{
			Success: false,
			Errors:  []string{err.Error()},
		}, nil
	}

	s.audit.Record(ctx, userID, model.AuditActionBulkImport, "glossary",
		"", fmt.Sprintf("tasks_created=%d created=%d skipped=%d", result.TasksCreated, result.Created, result.Skipped))
	return result, nil
}

// BulkImportTasks はタスクのみの一括インポートです (形式B、チャンク方式)。
// チャンクごとに独立したトランザクションで処理し、チャンクの失敗は errors に
// 記録して後続チャンクを続行する。重複排除はチャンクをまたぐ seen セット
// (trim + 小文字化) と DB の一意制約に任せる。
func (s *glossaryService) BulkImportTasks(ctx context.Context, userID *uuid.UUID, req *model.TaskImportRequest) (*model.BulkImportResult, error) {
	logger := middleware.GetLogger(ctx)

	chunkSize := s.cfg.App.ImportChunkSize
	result := &model.BulkImportResult{Errors: []string{}}
	seen := make(map[string]bool)

	chunkNo := 0
	for start := 0; start < len(req.Rows); start += chunkSize {
		chunkNo++
		end := start + chunkSize
		if end > len(req.Rows) {
			end = len(req.Rows)
		}

		var batch []*model.GlossaryTask
		for _, row := range req.Rows[start:end] {
			name := strings.TrimSpace(row.Name)
			if name == "" {
				result.Skipped++
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				result.Skipped++
				continue
			}
			seen[key] = true
			batch = append(batch, &model.GlossaryTask{
				TaskID:          uuid.New(),
				Name:            name,
				Description:     row.Description,
				InstructionEN:   row.InstructionEN,
				InstructionJA:   row.InstructionJA,
				InstructionVI:   row.InstructionVI,
				ContextTemplate: row.ContextTemplate,
				IsActive:        true,
				CreatedBy:       userID,
				UpdatedBy:       userID,
			})
		}
		if len(batch) == 0 {
			continue
		}

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.taskRepo.CreateBatch(ctx, tx, batch)
		})
		if err != nil {
			logger.Warn("Task import chunk failed", "chunk", chunkNo, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("chunk %d: %v", chunkNo, err))
			continue
		}
		result.TasksCreated += len(batch)
		result.Created += len(batch)
	}

	result.Success = len(result.Errors) == 0
	s.audit.Record(ctx, userID, model.AuditActionBulkImport, "glossary_task",
		"", fmt.Sprintf("created=%d skipped=%d errors=%d", result.Created, result.Skipped, len(result.Errors)))
	return result, nil
}

// BulkImportKeywords は指定タスクへのキーワードのみの一括インポートです
// (形式B、チャンク方式)。アルゴリズムは BulkImportTasks と同じ。
func (s *glossaryService) BulkImportKeywords(ctx context.Context, userID *uuid.UUID, taskID uuid.UUID, req *model.KeywordImportRequest) (*model.BulkImportResult, error) {
	logger := middleware.GetLogger(ctx)

	// 親タスクの存在確認は最初に1回だけ
	if _, err := s.taskRepo.FindByID(ctx, s.db, taskID); err != nil {
		return nil, err
	}

	chunkSize := s.cfg.App.ImportChunkSize
	result := &model.BulkImportResult{Errors: []string{}}
	seen := make(map[string]bool)

	chunkNo := 0
	for start := 0; start < len(req.Rows); start += chunkSize {
		chunkNo++
		end := start + chunkSize
		if end > len(req.Rows) {
			end = len(req.Rows)
		}

		var batch []*model.GlossaryKeyword
		for _, row := range req.Rows[start:end] {
			name := strings.TrimSpace(row.Name)
			if name == "" {
				result.Skipped++
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				result.Skipped++
				continue
			}
			seen[key] = true
			batch = append(batch, &model.GlossaryKeyword{
				KeywordID:   uuid.New(),
				TaskID:      taskID,
				Name:        name,
				EnKeyword:   row.EnKeyword,
				Description: row.Description,
				IsActive:    true,
				CreatedBy:   userID,
				UpdatedBy:   userID,
			})
		}
		if len(batch) == 0 {
			continue
		}

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.keywordRepo.CreateBatch(ctx, tx, batch)
		})
		if err != nil {
			logger.Warn("Keyword import chunk failed", "chunk", chunkNo, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("chunk %d: %v", chunkNo, err))
			continue
		}
		result.Created += len(batch)
	}

	result.Success = len(result.Errors) == 0
	s.audit.Record(ctx, userID, model.AuditActionBulkImport, "glossary_keyword",
		taskID.String(), fmt.Sprintf("created=%d skipped=%d errors=%d", result.Created, result.Skipped, len(result.Errors)))
	return result, nil
}
