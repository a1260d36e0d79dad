//go:generate mockery --name GlossaryService --output ./mocks --outpkg mocks --case=underscore
// internal/service/glossary_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"glossary_console/internal/config"
	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/promptbuild"
	"glossary_console/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GlossaryService は用語集タスク/キーワードのCRUD、検索、プロンプト生成、
// 一括インポートを提供します。一括インポートは glossary_import.go 側。
type GlossaryService interface {
	// タスク
	ListTasks(ctx context.Context, activeOnly bool) ([]*model.GlossaryTask, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*model.GlossaryTask, error)
	CreateTask(ctx context.Context, userID *uuid.UUID, req *model.CreateTaskRequest) (*model.GlossaryTask, error)
	UpdateTask(ctx context.Context, userID *uuid.UUID, taskID uuid.UUID, req *model.UpdateTaskRequest) (*model.GlossaryTask, error)
	DeleteTask(ctx context.Context, userID *uuid.UUID, taskID uuid.UUID) error
	BatchDeleteTasks(ctx context.Context, userID *uuid.UUID, ids []uuid.UUID) (*model.BatchDeleteResult, error)

	// キーワード
	ListKeywords(ctx context.Context, taskID uuid.UUID, activeOnly bool) ([]*model.GlossaryKeyword, error)
	ListAllKeywords(ctx context.Context, activeOnly bool) ([]*model.GlossaryKeyword, error)
	CreateKeyword(ctx context.Context, userID *uuid.UUID, taskID uuid.UUID, req *model.CreateKeywordRequest) (*model.GlossaryKeyword, error)
	UpdateKeyword(ctx context.Context, userID *uuid.UUID, keywordID uuid.UUID, req *model.UpdateKeywordRequest) (*model.GlossaryKeyword, error)
	DeleteKeyword(ctx context.Context, userID *uuid.UUID, keywordID uuid.UUID) error
	BatchDeleteKeywords(ctx context.Context, userID *uuid.UUID, ids []uuid.UUID) (*model.BatchDeleteResult, error)

	// ツリー・検索
	Tree(ctx context.Context) ([]*model.TreeTask, error)
	Search(ctx context.Context, q string) (*model.SearchResult, error)

	// プロンプト生成
	GeneratePrompt(ctx context.Context, req *model.GeneratePromptRequest) (*model.GeneratePromptResponse, error)
	PreviewPrompt(ctx context.Context, req *model.PreviewPromptRequest) (*model.GeneratePromptResponse, error)

	// 一括インポート (glossary_import.go)
	BulkImport(ctx context.Context, userID *uuid.UUID, req *model.BulkImportRequest) (*model.BulkImportResult, error)
	BulkImportTasks(ctx context.Context, userID *uuid.UUID, req *model.TaskImportRequest) (*model.BulkImportResult, error)
	BulkImportKeywords(ctx context.Context, userID *uuid.UUID, taskID uuid.UUID, req *model.KeywordImportRequest) (*model.BulkImportResult, error)
}

type glossaryService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	taskRepo    repository.GlossaryTaskRepository
	keywordRepo repository.GlossaryKeywordRepository
	audit       AuditService
	cfg         *config.Config
}

func NewGlossaryService(db *gorm.DB, taskRepo repository.GlossaryTaskRepository, keywordRepo repository.GlossaryKeywordRepository, audit AuditService, cfg *config.Config) GlossaryService {
	return &glossaryService{
		db:          db,
		taskRepo:    taskRepo,
		keywordRepo: keywordRepo,
		audit:       audit,
		cfg:         cfg,
	}
}

// --- タスク ---

func (s *glossaryService) ListTasks(ctx context.Context, activeOnly bool) ([]*model.GlossaryTask, error) {
	logger := middleware.GetLogger(ctx)
	tasks, err := s.taskRepo.List(ctx, s.db, activeOnly)
	if err != nil {
		logger.Error("Error listing glossary tasks", "error", err)
		return nil, model.ErrInternalServer
	}
	return tasks, nil
}

func (s *glossaryService) GetTask(ctx context.Context, taskID uuid.UUID) (*model.GlossaryTask, error) {
	task, err := s.taskRepo.FindByID(ctx, s.db, taskID)
	if err != nil {
		// エラーはリポジトリで変換済み
		return nil, err
	}
	return task, nil
}

func (s *glossaryService) CreateTask(ctx context.Context, userID *uuid.UUID, req *model.CreateTaskRequest) (*model.GlossaryTask, error) {
	logger := middleware.GetLogger(ctx)

	var createdTask *model.GlossaryTask

	name := strings.TrimSpace(req.Name)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 名前の重複チェック (大文字小文字を区別しない)。保存値と同じトリム済みの名前で確認する
		exists, err := s.taskRepo.CheckNameExists(ctx, tx, name, nil)
		if err != nil {
			logger.Error("Error checking task name existence", "error", err)
			return model.ErrInternalServer
		}
		if exists {
			return model.ErrConflict
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		task := &model.GlossaryTask{
			TaskID:          uuid.New(),
			Name:            name,
			Description:     req.Description,
			InstructionEN:   req.InstructionEN,
			InstructionJA:   req.InstructionJA,
			InstructionVI:   req.InstructionVI,
			ContextTemplate: req.ContextTemplate,
			SortOrder:       req.SortOrder,
			IsActive:        isActive,
			CreatedBy:       userID,
			UpdatedBy:       userID,
		}
		if err := s.taskRepo.Create(ctx, tx, task); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.ErrConflict
			}
			logger.Error("Error creating glossary task", "error", err)
			return model.ErrInternalServer
		}

		createdTask = task
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateTask", "error", err)
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionCreate, "glossary_task", createdTask.TaskID.String(), createdTask.Name)
	return createdTask, nil
}

func (s *glossaryService) UpdateTask(ctx context.Context, userID *uuid.UUID, taskID uuid.UUID, req *model.UpdateTaskRequest) (*model.GlossaryTask, error) {
	logger := middleware.GetLogger(ctx)

	var updatedTask *model.GlossaryTask

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		task, err := s.taskRepo.FindByID(ctx, tx, taskID)
		if err != nil {
			return err
		}

		// 2. 更新内容の準備。タイムスタンプはサーバ側で刻む (クライアント指定は無視)
		updates := make(map[string]interface{})
		if req.Name != nil && *req.Name != task.Name {
			name := strings.TrimSpace(*req.Name)
			exists, err := s.taskRepo.CheckNameExists(ctx, tx, name, &taskID)
			if err != nil {
				logger.Error("Error checking task name existence during update", "error", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
			updates["name"] = name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.InstructionEN != nil {
			updates["instruction_en"] = *req.InstructionEN
		}
		if req.InstructionJA != nil {
			updates["instruction_ja"] = *req.InstructionJA
		}
		if req.InstructionVI != nil {
			updates["instruction_vi"] = *req.InstructionVI
		}
		if req.ContextTemplate != nil {
			updates["context_template"] = *req.ContextTemplate
		}
		if req.SortOrder != nil {
			updates["sort_order"] = *req.SortOrder
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		if len(updates) > 0 {
			if userID != nil {
				updates["updated_by"] = *userID
			}
			if err := s.taskRepo.Update(ctx, tx, taskID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
					return err
				}
				logger.Error("Error updating glossary task", "error", err)
				return model.ErrInternalServer
			}
		}

		updatedTask, err = s.taskRepo.FindByID(ctx, tx, taskID)
		if err != nil {
			logger.Error("Error fetching updated task", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateTask", "error", err)
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionUpdate, "glossary_task", taskID.String(), updatedTask.Name)
	return updatedTask, nil
}

// DeleteTask はタスクと配下のキーワードを同一トランザクションで削除します。
func (s *glossaryService) DeleteTask(ctx context.Context, userID *uuid.UUID, taskID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.taskRepo.FindByID(ctx, tx, taskID); err != nil {
			return err
		}
		if err := s.keywordRepo.DeleteByTask(ctx, tx, taskID); err != nil {
			logger.Error("Error deleting keywords of task", "error", err, "task_id", taskID.String())
			return model.ErrInternalServer
		}
		if err := s.taskRepo.Delete(ctx, tx, taskID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error deleting glossary task", "error", err, "task_id", taskID.String())
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteTask", "error", err)
		return model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionDelete, "glossary_task", taskID.String(), "")
	return nil
}

// BatchDeleteTasks は項目ごとに削除を試み、結果を項目単位で返します。
// 項目をまたぐトランザクションは張らない (1件の失敗が他を巻き込まない)。
func (s *glossaryService) BatchDeleteTasks(ctx context.Context, userID *uuid.UUID, ids []uuid.UUID) (*model.BatchDeleteResult, error) {
	result := &model.BatchDeleteResult{
		Items: make([]model.BatchDeleteItemResult, 0, len(ids)),
	}
	for _, id := range ids {
		item := model.BatchDeleteItemResult{ID: id}
		if err := s.DeleteTask(ctx, userID, id); err != nil {
			item.OK = false
			item.Error = err.Error()
			result.Failed++
		} else {
			item.OK = true
			result.Deleted++
		}
		result.Items = append(result.Items, item)
	}
	s.audit.Record(ctx, userID, model.AuditActionBatchDelete, "glossary_task", "", fmt.Sprintf("deleted=%d failed=%d", result.Deleted, result.Failed))
	return result, nil
}

// --- キーワード ---

func (s *glossaryService) ListKeywords(ctx context.Context, taskID uuid.UUID, activeOnly bool) ([]*model.GlossaryKeyword, error) {
	logger := middleware.GetLogger(ctx)
	if _, err := s.taskRepo.FindByID(ctx, s.db, taskID); err != nil {
		return nil, err
	}
	keywords, err := s.keywordRepo.ListByTask(ctx, s.db, taskID, activeOnly)
	if err != nil {
		logger.Error("Error listing keywords", "error", err, "task_id", taskID.String())
		return nil, model.ErrInternalServer
	}
	return keywords, nil
}

func (s *glossaryService) ListAllKeywords(ctx context.Context, activeOnly bool) ([]*model.GlossaryKeyword, error) {
	logger := middleware.GetLogger(ctx)
	keywords, err := s.keywordRepo.ListAll(ctx, s.db, activeOnly)
	if err != nil {
		logger.Error("Error listing all keywords", "error", err)
		return nil, model.ErrInternalServer
	}
	return keywords, nil
}

func (s *glossaryService) CreateKeyword(ctx context.Context, userID *uuid.UUID, taskID uuid.UUID, req *model.CreateKeywordRequest) (*model.GlossaryKeyword, error) {
	logger := middleware.GetLogger(ctx)

	var createdKeyword *model.GlossaryKeyword

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 親タスクの存在確認
		if _, err := s.taskRepo.FindByID(ctx, tx, taskID); err != nil {
			return err
		}

		// 2. タスク内での名前重複チェック (大文字小文字を区別しない)
		exists, err := s.keywordRepo.CheckNameExists(ctx, tx, taskID, req.Name, nil)
		if err != nil {
			logger.Error("Error checking keyword name existence", "error", err)
			return model.ErrInternalServer
		}
		if exists {
			return model.ErrConflict
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		keyword := &model.GlossaryKeyword{
			KeywordID:   uuid.New(),
			TaskID:      taskID,
			Name:        strings.TrimSpace(req.Name),
			EnKeyword:   req.EnKeyword,
			Description: req.Description,
			SortOrder:   req.SortOrder,
			IsActive:    isActive,
			CreatedBy:   userID,
			UpdatedBy:   userID,
		}
		if err := s.keywordRepo.Create(ctx, tx, keyword); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.ErrConflict
			}
			logger.Error("Error creating keyword", "error", err)
			return model.ErrInternalServer
		}

		createdKeyword = keyword
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateKeyword", "error", err)
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionCreate, "glossary_keyword", createdKeyword.KeywordID.String(), createdKeyword.Name)
	return createdKeyword, nil
}

func (s *glossaryService) UpdateKeyword(ctx context.Context, userID *uuid.UUID, keywordID uuid.UUID, req *model.UpdateKeywordRequest) (*model.GlossaryKeyword, error) {
	logger := middleware.GetLogger(ctx)

	var updatedKeyword *model.GlossaryKeyword

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keyword, err := s.keywordRepo.FindByID(ctx, tx, keywordID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil && *req.Name != keyword.Name {
			exists, err := s.keywordRepo.CheckNameExists(ctx, tx, keyword.TaskID, *req.Name, &keywordID)
			if err != nil {
				logger.Error("Error checking keyword name existence during update", "error", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
			updates["name"] = strings.TrimSpace(*req.Name)
		}
		if req.EnKeyword != nil {
			updates["en_keyword"] = *req.EnKeyword
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.SortOrder != nil {
			updates["sort_order"] = *req.SortOrder
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		if len(updates) > 0 {
			if userID != nil {
				updates["updated_by"] = *userID
			}
			if err := s.keywordRepo.Update(ctx, tx, keywordID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
					return err
				}
				logger.Error("Error updating keyword", "error", err)
				return model.ErrInternalServer
			}
		}

		updatedKeyword, err = s.keywordRepo.FindByID(ctx, tx, keywordID)
		if err != nil {
			logger.Error("Error fetching updated keyword", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateKeyword", "error", err)
		return nil, model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionUpdate, "glossary_keyword", keywordID.String(), updatedKeyword.Name)
	return updatedKeyword, nil
}

func (s *glossaryService) DeleteKeyword(ctx context.Context, userID *uuid.UUID, keywordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.keywordRepo.Delete(ctx, s.db, keywordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting keyword", "error", err, "keyword_id", keywordID.String())
		return model.ErrInternalServer
	}

	s.audit.Record(ctx, userID, model.AuditActionDelete, "glossary_keyword", keywordID.String(), "")
	return nil
}

func (s *glossaryService) BatchDeleteKeywords(ctx context.Context, userID *uuid.UUID, ids []uuid.UUID) (*model.BatchDeleteResult, error) {
	result := &model.BatchDeleteResult{
		Items: make([]model.BatchDeleteItemResult, 0, len(ids)),
	}
	for _, id := range ids {
		item := model.BatchDeleteItemResult{ID: id}
		if err := s.DeleteKeyword(ctx, userID, id); err != nil {
			item.OK = false
			item.Error = err.Error()
			result.Failed++
		} else {
			item.OK = true
			result.Deleted++
		}
		result.Items = append(result.Items, item)
	}
	s.audit.Record(ctx, userID, model.AuditActionBatchDelete, "glossary_keyword", "", fmt.Sprintf("deleted=%d failed=%d", result.Deleted, result.Failed))
	return result, nil
}

// --- ツリー・検索 ---

func (s *glossaryService) Tree(ctx context.Context) ([]*model.TreeTask, error) {
	logger := middleware.GetLogger(ctx)
	tasks, err := s.taskRepo.ListWithActiveKeywords(ctx, s.db)
	if err != nil {
		logger.Error("Error building glossary tree", "error", err)
		return nil, model.ErrInternalServer
	}
	tree := make([]*model.TreeTask, 0, len(tasks))
	for _, task := range tasks {
		keywords := make([]*model.GlossaryKeyword, 0, len(task.Keywords))
		for i := range task.Keywords {
			keywords = append(keywords, &task.Keywords[i])
		}
		tree = append(tree, &model.TreeTask{Task: task, Keywords: keywords})
	}
	return tree, nil
}

// Search はタスクとキーワードを部分一致で横断検索します。
// クエリが空白のみの場合はDBに触れず空の結果を返す。
// 2つの検索は独立しているので errgroup で並行に走らせる。
func (s *glossaryService) Search(ctx context.Context, q string) (*model.SearchResult, error) {
	logger := middleware.GetLogger(ctx)

	trimmed := strings.TrimSpace(q)
	if trimmed == "" {
		return &model.SearchResult{
			Tasks:    []*model.GlossaryTask{},
			Keywords: []*model.GlossaryKeyword{},
		}, nil
	}

	var (
		tasks    []*model.GlossaryTask
		keywords []*model.GlossaryKeyword
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.taskRepo.SearchByName(gctx, s.db, trimmed)
		return err
	})
	g.Go(func() error {
		var err error
		keywords, err = s.keywordRepo.SearchByName(gctx, s.db, trimmed)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Error searching glossary", "error", err, "query", trimmed)
		return nil, model.ErrInternalServer
	}

	if tasks == nil {
		tasks = []*model.GlossaryTask{}
	}
	if keywords == nil {
		keywords = []*model.GlossaryKeyword{}
	}
	return &model.SearchResult{Tasks: tasks, Keywords: keywords}, nil
}

// --- プロンプト生成 ---

// GeneratePrompt は指定タスクの指示文とコンテキストテンプレートから
// プロンプトを合成します。合成ルールは promptbuild.Compose に集約。
func (s *glossaryService) GeneratePrompt(ctx context.Context, req *model.GeneratePromptRequest) (*model.GeneratePromptResponse, error) {
	// 1. タスク取得。キーワード検索より先に 404 を確定させる
	task, err := s.taskRepo.FindByID(ctx, s.db, req.TaskID)
	if err != nil {
		return nil, err
	}

	names, err := s.resolveKeywordNames(ctx, task.TaskID, req.KeywordIDs)
	if err != nil {
		return nil, err
	}

	prompt := promptbuild.Compose(task.Instruction(req.Lang), task.ContextTemplate, names)
	return &model.GeneratePromptResponse{Prompt: prompt}, nil
}

// PreviewPrompt はフロントの Prompt Builder 互換のプレビュー合成です。
func (s *glossaryService) PreviewPrompt(ctx context.Context, req *model.PreviewPromptRequest) (*model.GeneratePromptResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, s.db, req.TaskID)
	if err != nil {
		return nil, err
	}

	names, err := s.resolveKeywordNames(ctx, task.TaskID, req.KeywordIDs)
	if err != nil {
		return nil, err
	}

	instr := promptbuild.Instructions{
		EN: task.InstructionEN,
		JA: task.InstructionJA,
		VI: task.InstructionVI,
	}
	prompt := promptbuild.Preview(instr, promptbuild.Lang(req.Lang), req.Context, names)
	return &model.GeneratePromptResponse{Prompt: prompt}, nil
}

// resolveKeywordNames はタスク配下の有効キーワードから、指定IDに一致する
// 名前のリストを返します。1件も一致しなければ入力エラー。
func (s *glossaryService) resolveKeywordNames(ctx context.Context, taskID uuid.UUID, keywordIDs []uuid.UUID) ([]string, error) {
	logger := middleware.GetLogger(ctx)

	keywords, err := s.keywordRepo.ListByTask(ctx, s.db, taskID, true)
	if err != nil {
		logger.Error("Error listing keywords for prompt", "error", err, "task_id", taskID.String())
		return nil, model.ErrInternalServer
	}

	wanted := make(map[uuid.UUID]bool, len(keywordIDs))
	for _, id := range keywordIDs {
		wanted[id] = true
	}

	names := make([]string, 0, len(keywordIDs))
	for _, kw := range keywords {
		if wanted[kw.KeywordID] {
			names = append(names, kw.Name)
		}
	}
	if len(names) == 0 {
		return nil, model.NewAppError("INVALID_KEYWORDS", "指定されたキーワードがタスクに存在しません", "keyword_ids", model.ErrInvalidInput)
	}
	return names, nil
}
