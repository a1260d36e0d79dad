// internal/handlers/audit_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"glossary_console/internal/model"
	"glossary_console/internal/service"
	"glossary_console/internal/webutil"

	"github.com/google/uuid"
)

type AuditHandler struct {
	service service.AuditService
	logger  *slog.Logger
}

func NewAuditHandler(s service.AuditService, logger *slog.Logger) *AuditHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditHandler{
		service: s,
		logger:  logger,
	}
}

// List はクエリパラメータで絞り込んだ監査ログ一覧を返します。
// user_id / action / resource / from / to (RFC3339) / limit / offset
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListAuditLogs"))

	filter, err := parseAuditLogFilter(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		logger.Error("Error listing audit logs in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}

func (h *AuditHandler) Append(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AppendAuditLog"))

	var req model.CreateAuditLogRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.Append(r.Context(), currentUserID(r), &req)
	if err != nil {
		logger.Error("Error appending audit log in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, entry, logger)
}

func parseAuditLogFilter(r *http.Request) (*model.AuditLogFilter, error) {
	q := r.URL.Query()
	filter := &model.AuditLogFilter{
		Action:   q.Get("action"),
		Resource: q.Get("resource"),
	}

	if v := q.Get("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, model.NewAppError("INVALID_ID", "IDの形式が正しくありません。", "user_id", model.ErrInvalidInput)
		}
		filter.UserID = &id
	}
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, model.NewAppError("INVALID_TIMESTAMP", "日時の形式が正しくありません (RFC3339)。", "from", model.ErrInvalidInput)
		}
		filter.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, model.NewAppError("INVALID_TIMESTAMP", "日時の形式が正しくありません (RFC3339)。", "to", model.ErrInvalidInput)
		}
		filter.To = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, model.NewAppError("INVALID_NUMBER", "数値の形式が正しくありません。", "limit", model.ErrInvalidInput)
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, model.NewAppError("INVALID_NUMBER", "数値の形式が正しくありません。", "offset", model.ErrInvalidInput)
		}
		filter.Offset = n
	}
	return filter, nil
}
