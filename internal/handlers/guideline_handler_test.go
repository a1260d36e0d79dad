// internal/handlers/guideline_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"glossary_console/internal/handlers"
	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/service/mocks"
)

func setupGuidelineRouter(t *testing.T) (*mocks.GuidelineService, *chi.Mux) {
	t.Helper()
	mockService := mocks.NewGuidelineService(t)
	guidelineHandler := handlers.NewGuidelineHandler(mockService, nil)

	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Route("/api/v1/guidelines", func(r chi.Router) {
		r.Get("/", guidelineHandler.List)
		r.Get("/{slug}", guidelineHandler.Get)
		r.Post("/", guidelineHandler.Create)
		r.Put("/{slug}", guidelineHandler.Update)
		r.Delete("/{slug}", guidelineHandler.Delete)
	})
	return mockService, router
}

func TestGuidelineHandler_List(t *testing.T) {
	memberID := uuid.New()
	mockService, router := setupGuidelineRouter(t)

	t.Run("Success - active=true forwards the filter", func(t *testing.T) {
		guidelines := []*model.Guideline{
			{GuidelineID: uuid.New(), Slug: "getting-started", Title: "はじめに", IsActive: true},
		}
		mockService.On("List", mock.AnythingOfType("*context.valueCtx"), true).
			Return(guidelines, nil).Once()

		req := createRequest(t, "GET", "/api/v1/guidelines/?active=true", nil, &memberID, model.RoleMember)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []model.Guideline
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "getting-started", resp[0].Slug)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - Empty list yields empty array", func(t *testing.T) {
		mockService.On("List", mock.AnythingOfType("*context.valueCtx"), false).
			Return(nil, nil).Once()

		req := createRequest(t, "GET", "/api/v1/guidelines/", nil, &memberID, model.RoleMember)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestGuidelineHandler_Get(t *testing.T) {
	memberID := uuid.New()
	mockService, router := setupGuidelineRouter(t)

	t.Run("Success - Returns guideline by slug", func(t *testing.T) {
		guideline := &model.Guideline{GuidelineID: uuid.New(), Slug: "usage-rules", Title: "利用ルール", Body: "# ルール"}
		mockService.On("GetBySlug", mock.AnythingOfType("*context.valueCtx"), "usage-rules").
			Return(guideline, nil).Once()

		req := createRequest(t, "GET", "/api/v1/guidelines/usage-rules", nil, &memberID, model.RoleMember)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.Guideline
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "利用ルール", resp.Title)
		mockService.AssertExpectations(t)
	})

	t.Run("Fail - Unknown slug", func(t *testing.T) {
		mockService.On("GetBySlug", mock.AnythingOfType("*context.valueCtx"), "missing").
			Return(nil, model.ErrNotFound).Once()

		req := createRequest(t, "GET", "/api/v1/guidelines/missing", nil, &memberID, model.RoleMember)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes())
		mockService.AssertExpectations(t)
	})
}

func TestGuidelineHandler_Create(t *testing.T) {
	adminID := uuid.New()
	mockService, router := setupGuidelineRouter(t)

	t.Run("Success - Creates guideline", func(t *testing.T) {
		created := &model.Guideline{GuidelineID: uuid.New(), Slug: "usage-rules", Title: "利用ルール", Body: "# ルール"}
		mockService.On("Create", mock.AnythingOfType("*context.valueCtx"), &adminID, mock.MatchedBy(func(req *model.CreateGuidelineRequest) bool {
			return req.Slug == "usage-rules" && req.Title == "利用ルール"
		})).Return(created, nil).Once()

		body := model.CreateGuidelineRequest{Slug: "usage-rules", Title: "利用ルール", Body: "# ルール"}
		req := createRequest(t, "POST", "/api/v1/guidelines/", body, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp model.Guideline
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, created.GuidelineID, resp.GuidelineID)
		mockService.AssertExpectations(t)
	})

	t.Run("Fail - Missing required fields", func(t *testing.T) {
		body := model.CreateGuidelineRequest{Slug: "usage-rules"}
		req := createRequest(t, "POST", "/api/v1/guidelines/", body, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes())
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Fail - Duplicate slug", func(t *testing.T) {
		mockService.On("Create", mock.AnythingOfType("*context.valueCtx"), &adminID, mock.AnythingOfType("*model.CreateGuidelineRequest")).
			Return(nil, model.ErrConflict).Once()

		body := model.CreateGuidelineRequest{Slug: "usage-rules", Title: "利用ルール", Body: "# ルール"}
		req := createRequest(t, "POST", "/api/v1/guidelines/", body, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes())
		mockService.AssertExpectations(t)
	})
}

func TestGuidelineHandler_UpdateDelete(t *testing.T) {
	adminID := uuid.New()
	mockService, router := setupGuidelineRouter(t)

	t.Run("Success - Updates title by slug", func(t *testing.T) {
		newTitle := "改定版 利用ルール"
		updated := &model.Guideline{GuidelineID: uuid.New(), Slug: "usage-rules", Title: newTitle}
		mockService.On("Update", mock.AnythingOfType("*context.valueCtx"), &adminID, "usage-rules", mock.MatchedBy(func(req *model.UpdateGuidelineRequest) bool {
			return req.Title != nil && *req.Title == newTitle
		})).Return(updated, nil).Once()

		body := model.UpdateGuidelineRequest{Title: &newTitle}
		req := createRequest(t, "PUT", "/api/v1/guidelines/usage-rules", body, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.Guideline
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, newTitle, resp.Title)
		mockService.AssertExpectations(t)
	})

	t.Run("Fail - Update unknown slug", func(t *testing.T) {
		newTitle := "改定版"
		mockService.On("Update", mock.AnythingOfType("*context.valueCtx"), &adminID, "missing", mock.AnythingOfType("*model.UpdateGuidelineRequest")).
			Return(nil, model.ErrNotFound).Once()

		body := model.UpdateGuidelineRequest{Title: &newTitle}
		req := createRequest(t, "PUT", "/api/v1/guidelines/missing", body, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes())
		mockService.AssertExpectations(t)
	})

	t.Run("Success - Delete by slug", func(t *testing.T) {
		mockService.On("Delete", mock.AnythingOfType("*context.valueCtx"), &adminID, "usage-rules").
			Return(nil).Once()

		req := createRequest(t, "DELETE", "/api/v1/guidelines/usage-rules", nil, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Fail - Delete unknown slug", func(t *testing.T) {
		mockService.On("Delete", mock.AnythingOfType("*context.valueCtx"), &adminID, "missing").
			Return(model.ErrNotFound).Once()

		req := createRequest(t, "DELETE", "/api/v1/guidelines/missing", nil, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes())
		mockService.AssertExpectations(t)
	})
}
