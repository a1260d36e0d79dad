// internal/handlers/glossary_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"glossary_console/internal/model"
	"glossary_console/internal/service"
	"glossary_console/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type GlossaryHandler struct {
	service service.GlossaryService
	logger  *slog.Logger
}

func NewGlossaryHandler(s service.GlossaryService, logger *slog.Logger) *GlossaryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GlossaryHandler{
		service: s,
		logger:  logger,
	}
}

// --- タスク ---

func (h *GlossaryHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListTasks"))

	activeOnly := r.URL.Query().Get("active") == "true"
	tasks, err := h.service.ListTasks(r.Context(), activeOnly)
	if err != nil {
		logger.Error("Error listing tasks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if tasks == nil {
		tasks = []*model.GlossaryTask{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, tasks, logger)
}

func (h *GlossaryHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTask"))

	taskID, err := parseUUIDParam(chi.URLParam(r, "task_id"), "task_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	task, err := h.service.GetTask(r.Context(), taskID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, task, logger)
}

func (h *GlossaryHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateTask"))

	var req model.CreateTaskRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	task, err := h.service.CreateTask(r.Context(), currentUserID(r), &req)
	if err != nil {
		logger.Error("Error creating task in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Task created successfully", slog.String("task_id", task.TaskID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, task, logger)
}

func (h *GlossaryHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateTask"))

	taskID, err := parseUUIDParam(chi.URLParam(r, "task_id"), "task_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateTaskRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	task, err := h.service.UpdateTask(r.Context(), currentUserID(r), taskID, &req)
	if err != nil {
		logger.Error("Error updating task in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, task, logger)
}

func (h *GlossaryHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTask"))

	taskID, err := parseUUIDParam(chi.URLParam(r, "task_id"), "task_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteTask(r.Context(), currentUserID(r), taskID); err != nil {
		logger.Error("Error deleting task in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GlossaryHandler) BatchDeleteTasks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BatchDeleteTasks"))

	var req model.BatchDeleteRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.BatchDeleteTasks(r.Context(), currentUserID(r), req.IDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// --- キーワード ---

func (h *GlossaryHandler) ListKeywords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListKeywords"))

	taskID, err := parseUUIDParam(chi.URLParam(r, "task_id"), "task_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"
	keywords, err := h.service.ListKeywords(r.Context(), taskID, activeOnly)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if keywords == nil {
		keywords = []*model.GlossaryKeyword{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, keywords, logger)
}

func (h *GlossaryHandler) ListAllKeywords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListAllKeywords"))

	activeOnly := r.URL.Query().Get("active") == "true"
	keywords, err := h.service.ListAllKeywords(r.Context(), activeOnly)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if keywords == nil {
		keywords = []*model.GlossaryKeyword{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, keywords, logger)
}

func (h *GlossaryHandler) CreateKeyword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateKeyword"))

	taskID, err := parseUUIDParam(chi.URLParam(r, "task_id"), "task_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateKeywordRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	keyword, err := h.service.CreateKeyword(r.Context(), currentUserID(r), taskID, &req)
	if err != nil {
		logger.Error("Error creating keyword in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Keyword created successfully", slog.String("keyword_id", keyword.KeywordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, keyword, logger)
}

func (h *GlossaryHandler) UpdateKeyword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateKeyword"))

	keywordID, err := parseUUIDParam(chi.URLParam(r, "keyword_id"), "keyword_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateKeywordRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	keyword, err := h.service.UpdateKeyword(r.Context(), currentUserID(r), keywordID, &req)
	if err != nil {
		logger.Error("Error updating keyword in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, keyword, logger)
}

func (h *GlossaryHandler) DeleteKeyword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteKeyword"))

	keywordID, err := parseUUIDParam(chi.URLParam(r, "keyword_id"), "keyword_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteKeyword(r.Context(), currentUserID(r), keywordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GlossaryHandler) BatchDeleteKeywords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BatchDeleteKeywords"))

	var req model.BatchDeleteRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.BatchDeleteKeywords(r.Context(), currentUserID(r), req.IDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// --- ツリー・検索 ---

func (h *GlossaryHandler) Tree(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Tree"))

	tree, err := h.service.Tree(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if tree == nil {
		tree = []*model.TreeTask{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, tree, logger)
}

func (h *GlossaryHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Search"))

	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// --- プロンプト生成 ---

func (h *GlossaryHandler) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GeneratePrompt"))

	var req model.GeneratePromptRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.GeneratePrompt(r.Context(), &req)
	if err != nil {
		logger.Warn("Error generating prompt in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *GlossaryHandler) PreviewPrompt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PreviewPrompt"))

	var req model.PreviewPromptRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.PreviewPrompt(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// --- 一括インポート ---

// BulkImport はタスク+キーワード混在シートのインポートです。
// 全件1トランザクション。失敗時も HTTP 200 で success:false を返す。
func (h *GlossaryHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BulkImport"))

	var req model.BulkImportRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.BulkImport(r.Context(), currentUserID(r), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bulk import finished",
		slog.Bool("success", result.Success),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func (h *GlossaryHandler) BulkImportTasks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BulkImportTasks"))

	var req model.TaskImportRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.BulkImportTasks(r.Context(), currentUserID(r), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	// 部分失敗でも 200 (クライアントは success / errors を見る)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func (h *GlossaryHandler) BulkImportKeywords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BulkImportKeywords"))

	taskID, err := parseUUIDParam(chi.URLParam(r, "task_id"), "task_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.KeywordImportRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.BulkImportKeywords(r.Context(), currentUserID(r), taskID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
