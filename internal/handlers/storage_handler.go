// internal/handlers/storage_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/service"
	"glossary_console/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// multipart アップロード時にメモリへ展開する上限 (超過分はテンポラリファイル)
const uploadMemoryLimit = 32 << 20

type StorageHandler struct {
	service service.StorageService
	logger  *slog.Logger
}

func NewStorageHandler(s service.StorageService, logger *slog.Logger) *StorageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StorageHandler{
		service: s,
		logger:  logger,
	}
}

func (h *StorageHandler) sessionUser(r *http.Request) (uuid.UUID, string, error) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		return uuid.Nil, "", model.ErrUnauthorized
	}
	role, err := middleware.GetUserRoleFromContext(r.Context())
	if err != nil {
		return uuid.Nil, "", model.ErrUnauthorized
	}
	return userID, role, nil
}

// --- バケット ---

func (h *StorageHandler) ListBuckets(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListBuckets"))

	buckets, err := h.service.ListBuckets(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if buckets == nil {
		buckets = []*model.StorageBucket{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, buckets, logger)
}

func (h *StorageHandler) CreateBucket(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateBucket"))

	var req model.CreateBucketRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	bucket, err := h.service.CreateBucket(r.Context(), currentUserID(r), &req)
	if err != nil {
		logger.Error("Error creating bucket in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bucket created successfully", slog.String("bucket_id", bucket.BucketID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, bucket, logger)
}

func (h *StorageHandler) DeleteBucket(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteBucket"))

	bucketID, err := parseUUIDParam(chi.URLParam(r, "bucket_id"), "bucket_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteBucket(r.Context(), currentUserID(r), bucketID); err != nil {
		logger.Error("Error deleting bucket in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- 権限 ---

func (h *StorageHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListPermissions"))

	bucketID, err := parseUUIDParam(chi.URLParam(r, "bucket_id"), "bucket_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	perms, err := h.service.ListPermissions(r.Context(), bucketID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if perms == nil {
		perms = []*model.StoragePermission{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, perms, logger)
}

func (h *StorageHandler) GrantPermission(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GrantPermission"))

	bucketID, err := parseUUIDParam(chi.URLParam(r, "bucket_id"), "bucket_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.GrantPermissionRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	perm, err := h.service.GrantPermission(r.Context(), currentUserID(r), bucketID, &req)
	if err != nil {
		logger.Error("Error granting permission in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, perm, logger)
}

// --- オブジェクト ---

func (h *StorageHandler) ListObjects(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListObjects"))

	bucketID, err := parseUUIDParam(chi.URLParam(r, "bucket_id"), "bucket_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	userID, role, err := h.sessionUser(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	objects, err := h.service.ListObjects(r.Context(), userID, role, bucketID, r.URL.Query().Get("prefix"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if objects == nil {
		objects = []*model.StorageObject{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, objects, logger)
}

// UploadObject は multipart/form-data の "file" フィールド、
// またはリクエストボディそのものをオブジェクトとして保存します。
// キーは ?key= で指定 (multipart時は省略するとファイル名)。
func (h *StorageHandler) UploadObject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UploadObject"))

	bucketID, err := parseUUIDParam(chi.URLParam(r, "bucket_id"), "bucket_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	userID, role, err := h.sessionUser(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	key := r.URL.Query().Get("key")

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "マルチパートの解析に失敗しました。", "file", model.ErrInvalidInput))
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "file フィールドが必要です。", "file", model.ErrInvalidInput))
			return
		}
		defer file.Close()

		if key == "" {
			key = header.Filename
		}
		contentType := header.Header.Get("Content-Type")
		if err := h.service.UploadObject(r.Context(), userID, role, bucketID, key, file, header.Size, contentType); err != nil {
			logger.Error("Error uploading object in service", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
			return
		}
	} else {
		if err := h.service.UploadObject(r.Context(), userID, role, bucketID, key, r.Body, r.ContentLength, r.Header.Get("Content-Type")); err != nil {
			logger.Error("Error uploading object in service", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
			return
		}
	}

	logger.Info("Object uploaded successfully", slog.String("bucket_id", bucketID.String()), slog.String("key", key))
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]string{"key": key}, logger)
}

func (h *StorageHandler) DeleteObject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteObject"))

	bucketID, err := parseUUIDParam(chi.URLParam(r, "bucket_id"), "bucket_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	userID, role, err := h.sessionUser(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteObject(r.Context(), userID, role, bucketID, r.URL.Query().Get("key")); err != nil {
		logger.Error("Error deleting object in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
