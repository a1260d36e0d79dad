// internal/handlers/broadcast_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/service"
	"glossary_console/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type BroadcastHandler struct {
	service service.BroadcastService
	logger  *slog.Logger
}

func NewBroadcastHandler(s service.BroadcastService, logger *slog.Logger) *BroadcastHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BroadcastHandler{
		service: s,
		logger:  logger,
	}
}

func (h *BroadcastHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListBroadcasts"))

	broadcasts, err := h.service.List(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if broadcasts == nil {
		broadcasts = []*model.Broadcast{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, broadcasts, logger)
}

// ListActive はログイン中のユーザーが現在表示すべきお知らせを返します。
// 却下から24時間経過したものは再び含まれる。
func (h *BroadcastHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListActiveBroadcasts"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.ErrUnauthorized)
		return
	}

	broadcasts, err := h.service.ListActive(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if broadcasts == nil {
		broadcasts = []*model.Broadcast{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, broadcasts, logger)
}

func (h *BroadcastHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBroadcast"))

	broadcastID, err := parseUUIDParam(chi.URLParam(r, "broadcast_id"), "broadcast_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	broadcast, err := h.service.Get(r.Context(), broadcastID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, broadcast, logger)
}

func (h *BroadcastHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateBroadcast"))

	var req model.CreateBroadcastRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	broadcast, err := h.service.Create(r.Context(), currentUserID(r), &req)
	if err != nil {
		logger.Error("Error creating broadcast in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Broadcast created successfully", slog.String("broadcast_id", broadcast.BroadcastID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, broadcast, logger)
}

func (h *BroadcastHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateBroadcast"))

	broadcastID, err := parseUUIDParam(chi.URLParam(r, "broadcast_id"), "broadcast_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateBroadcastRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	broadcast, err := h.service.Update(r.Context(), currentUserID(r), broadcastID, &req)
	if err != nil {
		logger.Error("Error updating broadcast in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, broadcast, logger)
}

func (h *BroadcastHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteBroadcast"))

	broadcastID, err := parseUUIDParam(chi.URLParam(r, "broadcast_id"), "broadcast_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), currentUserID(r), broadcastID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BroadcastHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BatchDeleteBroadcasts"))

	var req model.BatchDeleteRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.BatchDelete(r.Context(), currentUserID(r), req.IDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// Dismiss はログイン中のユーザーのお知らせ却下を記録します。
func (h *BroadcastHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DismissBroadcast"))

	broadcastID, err := parseUUIDParam(chi.URLParam(r, "broadcast_id"), "broadcast_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.ErrUnauthorized)
		return
	}

	if err := h.service.Dismiss(r.Context(), broadcastID, userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
