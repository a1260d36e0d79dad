// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/service"
	"glossary_console/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// Login は root 専用のパスワードログインです。
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// 認証失敗の詳細はログにのみ残す
		logger.Warn("Login failed", slog.String("email", req.Email), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Login succeeded", slog.String("email", req.Email))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// AzureLogin は Azure AD の認可URLを返します。フロントはこのURLへリダイレクトする。
func (h *AuthHandler) AzureLogin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AzureLogin"))

	resp, err := h.service.AzureLoginURL(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// AzureCallback は認可コードをトークンに交換し、ユーザーを upsert してJWTを発行します。
func (h *AuthHandler) AzureCallback(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AzureCallback"))

	resp, err := h.service.AzureCallback(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		logger.Warn("Azure callback failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetMe はログイン中ユーザー自身のプロフィールを返します。
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.ErrUnauthorized)
		return
	}

	user, err := h.service.GetMe(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}
