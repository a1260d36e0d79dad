// internal/handlers/guideline_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"glossary_console/internal/model"
	"glossary_console/internal/service"
	"glossary_console/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type GuidelineHandler struct {
	service service.GuidelineService
	logger  *slog.Logger
}

func NewGuidelineHandler(s service.GuidelineService, logger *slog.Logger) *GuidelineHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuidelineHandler{
		service: s,
		logger:  logger,
	}
}

func (h *GuidelineHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListGuidelines"))

	activeOnly := r.URL.Query().Get("active") == "true"
	guidelines, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if guidelines == nil {
		guidelines = []*model.Guideline{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, guidelines, logger)
}

func (h *GuidelineHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetGuideline"))

	guideline, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, guideline, logger)
}

func (h *GuidelineHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateGuideline"))

	var req model.CreateGuidelineRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	guideline, err := h.service.Create(r.Context(), currentUserID(r), &req)
	if err != nil {
		logger.Error("Error creating guideline in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Guideline created successfully", slog.String("slug", guideline.Slug))
	webutil.RespondWithJSON(w, http.StatusCreated, guideline, logger)
}

func (h *GuidelineHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateGuideline"))

	var req model.UpdateGuidelineRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	guideline, err := h.service.Update(r.Context(), currentUserID(r), chi.URLParam(r, "slug"), &req)
	if err != nil {
		logger.Error("Error updating guideline in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, guideline, logger)
}

func (h *GuidelineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteGuideline"))

	if err := h.service.Delete(r.Context(), currentUserID(r), chi.URLParam(r, "slug")); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
