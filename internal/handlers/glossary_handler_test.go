// internal/handlers/glossary_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"glossary_console/internal/handlers"
	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/service/mocks"
)

func TestGlossaryHandler_CreateTask(t *testing.T) {
	adminID := uuid.New()

	mockService := mocks.NewGlossaryService(t)
	glossaryHandler := handlers.NewGlossaryHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/glossary/tasks", glossaryHandler.CreateTask)

	validReqBody := model.CreateTaskRequest{
		Name:            "Contract Translation",
		InstructionEN:   "Translate the text.",
		ContextTemplate: "Focus on: {keywords}",
	}
	expectedTask := &model.GlossaryTask{
		TaskID:          uuid.New(),
		Name:            validReqBody.Name,
		InstructionEN:   validReqBody.InstructionEN,
		ContextTemplate: validReqBody.ContextTemplate,
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "Success - Valid request",
			userID: &adminID,
			body:   validReqBody,
			setupMock: func() {
				mockService.On("CreateTask", mock.AnythingOfType("*context.valueCtx"), &adminID, &validReqBody).
					Return(expectedTask, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing user header",
			userID:         nil,
			body:           validReqBody,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - Missing required fields",
			userID:         &adminID,
			body:           model.CreateTaskRequest{Name: "only name"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Broken JSON body",
			userID:         &adminID,
			body:           `{"name": "broken`,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Fail - Duplicate name",
			userID: &adminID,
			body:   validReqBody,
			setupMock: func() {
				mockService.On("CreateTask", mock.AnythingOfType("*context.valueCtx"), &adminID, &validReqBody).
					Return(nil, model.ErrConflict).Once()
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/glossary/tasks", tc.body, tc.userID, model.RoleAdmin)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var respTask model.GlossaryTask
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respTask))
				assert.Equal(t, expectedTask.TaskID, respTask.TaskID)
				assert.Equal(t, expectedTask.Name, respTask.Name)
			} else {
				assertErrorResponse(t, rr.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestGlossaryHandler_GetTask(t *testing.T) {
	memberID := uuid.New()

	mockService := mocks.NewGlossaryService(t)
	glossaryHandler := handlers.NewGlossaryHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/glossary/tasks/{task_id}", glossaryHandler.GetTask)

	existing := &model.GlossaryTask{TaskID: uuid.New(), Name: "Review Summary", IsActive: true}

	tests := []struct {
		name           string
		taskIDParam    string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:        "Success - Existing task",
			taskIDParam: existing.TaskID.String(),
			setupMock: func() {
				mockService.On("GetTask", mock.AnythingOfType("*context.valueCtx"), existing.TaskID).
					Return(existing, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Fail - Task not found",
			taskIDParam: uuid.New().String(),
			setupMock: func() {
				mockService.On("GetTask", mock.AnythingOfType("*context.valueCtx"), mock.AnythingOfType("uuid.UUID")).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Fail - Invalid UUID format",
			taskIDParam:    "not-a-uuid",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			url := fmt.Sprintf("/api/v1/glossary/tasks/%s", tc.taskIDParam)
			req := createRequest(t, "GET", url, nil, &memberID, model.RoleMember)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var respTask model.GlossaryTask
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respTask))
				assert.Equal(t, existing.TaskID, respTask.TaskID)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestGlossaryHandler_ListTasks(t *testing.T) {
	memberID := uuid.New()

	mockService := mocks.NewGlossaryService(t)
	glossaryHandler := handlers.NewGlossaryHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/glossary/tasks", glossaryHandler.ListTasks)

	t.Run("Success - active=true is forwarded to the service", func(t *testing.T) {
		mockService.On("ListTasks", mock.AnythingOfType("*context.valueCtx"), true).
			Return([]*model.GlossaryTask{{TaskID: uuid.New(), Name: "A"}}, nil).Once()

		req := createRequest(t, "GET", "/api/v1/glossary/tasks?active=true", nil, &memberID, model.RoleMember)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var respTasks []model.GlossaryTask
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respTasks))
		assert.Len(t, respTasks, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - nil slice becomes empty JSON array", func(t *testing.T) {
		mockService.On("ListTasks", mock.AnythingOfType("*context.valueCtx"), false).
			Return(nil, nil).Once()

		req := createRequest(t, "GET", "/api/v1/glossary/tasks", nil, &memberID, model.RoleMember)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestGlossaryHandler_DeleteTask(t *testing.T) {
	adminID := uuid.New()

	mockService := mocks.NewGlossaryService(t)
	glossaryHandler := handlers.NewGlossaryHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Delete("/api/v1/glossary/tasks/{task_id}", glossaryHandler.DeleteTask)

	taskID := uuid.New()

	tests := []struct {
		name           string
		taskIDParam    string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:        "Success - Delete returns 204",
			taskIDParam: taskID.String(),
			setupMock: func() {
				mockService.On("DeleteTask", mock.AnythingOfType("*context.valueCtx"), &adminID, taskID).
					Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:        "Fail - Task not found",
			taskIDParam: uuid.New().String(),
			setupMock: func() {
				mockService.On("DeleteTask", mock.AnythingOfType("*context.valueCtx"), &adminID, mock.AnythingOfType("uuid.UUID")).
					Return(model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Fail - Invalid UUID format",
			taskIDParam:    "invalid-uuid",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			url := fmt.Sprintf("/api/v1/glossary/tasks/%s", tc.taskIDParam)
			req := createRequest(t, "DELETE", url, nil, &adminID, model.RoleAdmin)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestGlossaryHandler_GeneratePrompt(t *testing.T) {
	memberID := uuid.New()

	mockService := mocks.NewGlossaryService(t)
	glossaryHandler := handlers.NewGlossaryHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/glossary/generate-prompt", glossaryHandler.GeneratePrompt)

	validReq := model.GeneratePromptRequest{
		TaskID:     uuid.New(),
		KeywordIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedPrompt string
	}{
		{
			name: "Success - Prompt generated",
			body: validReq,
			setupMock: func() {
				mockService.On("GeneratePrompt", mock.AnythingOfType("*context.valueCtx"), &validReq).
					Return(&model.GeneratePromptResponse{Prompt: "Translate the text.\nFocus on: Legal, Finance"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedPrompt: "Translate the text.\nFocus on: Legal, Finance",
		},
		{
			name:           "Fail - Empty keyword list",
			body:           model.GeneratePromptRequest{TaskID: validReq.TaskID, KeywordIDs: []uuid.UUID{}},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Fail - Keyword from another task",
			body: validReq,
			setupMock: func() {
				mockService.On("GeneratePrompt", mock.AnythingOfType("*context.valueCtx"), &validReq).
					Return(nil, model.ErrInvalidInput).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Fail - Task not found",
			body: validReq,
			setupMock: func() {
				mockService.On("GeneratePrompt", mock.AnythingOfType("*context.valueCtx"), &validReq).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/glossary/generate-prompt", tc.body, &memberID, model.RoleMember)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.GeneratePromptResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.expectedPrompt, resp.Prompt)
			} else {
				assertErrorResponse(t, rr.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestGlossaryHandler_BulkImportTasks(t *testing.T) {
	adminID := uuid.New()

	mockService := mocks.NewGlossaryService(t)
	glossaryHandler := handlers.NewGlossaryHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/glossary/tasks/bulk-import", glossaryHandler.BulkImportTasks)

	reqBody := model.TaskImportRequest{
		Rows: []model.TaskImportRow{
			{Name: "Contract Translation", InstructionEN: "Translate.", ContextTemplate: "Focus on: {keywords}"},
		},
	}

	t.Run("Success - Partial failure still responds 200", func(t *testing.T) {
		result := &model.BulkImportResult{
			Success: false,
			Created: 150,
			Errors:  []string{"chunk 2: duplicate key"},
		}
		mockService.On("BulkImportTasks", mock.AnythingOfType("*context.valueCtx"), &adminID, &reqBody).
			Return(result, nil).Once()

		req := createRequest(t, "POST", "/api/v1/glossary/tasks/bulk-import", reqBody, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.BulkImportResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, 150, resp.Created)
		assert.Len(t, resp.Errors, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("Fail - Empty task list rejected before the service", func(t *testing.T) {
		req := createRequest(t, "POST", "/api/v1/glossary/tasks/bulk-import", model.TaskImportRequest{}, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes())
		mockService.AssertExpectations(t)
	})
}
