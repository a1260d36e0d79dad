// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/webutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// currentUserID はコンテキストからセッションユーザーIDを取り出します。
// 未認証 (テストや開発用途) では nil。
func currentUserID(r *http.Request) *uuid.UUID {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		return nil
	}
	return &userID
}

// decodeAndValidate はボディのデコードと構造体バリデーションをまとめたものです。
// 各ハンドラで同じ定型が繰り返されていたため集約した。
func decodeAndValidate(r *http.Request, logger *slog.Logger, dst interface{}) error {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			return webutil.NewValidationErrorResponse(validationErrors)
		}
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		return err
	}
	return nil
}

// parseUUIDParam はURLパラメータをUUIDとしてパースします。
func parseUUIDParam(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", "IDの形式が正しくありません。", field, model.ErrInvalidInput)
	}
	return id, nil
}
