// internal/handlers/audit_handler_test.go
package handlers_test

import (
	"encoding/json"
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

func TestAuditHandler_List(t *testing.T) {
	adminID := uuid.New()
	filterUserID := uuid.New()

	mockService := mocks.NewAuditService(t)
	auditHandler := handlers.NewAuditHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/audit/logs", auditHandler.List)

	list := &model.AuditLogList{
		Logs: []*model.AuditLog{
			{LogID: uuid.New(), Action: model.AuditActionCreate, Resource: "glossary_task", CreatedAt: time.Now()},
		},
		Total:  1,
		Limit:  50,
		Offset: 0,
	}

	tests := []struct {
		name           string
		query          string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:  "Success - No filters",
			query: "",
			setupMock: func() {
				mockService.On("List", mock.AnythingOfType("*context.valueCtx"), mock.MatchedBy(func(f *model.AuditLogFilter) bool {
					return f.UserID == nil && f.Action == "" && f.Limit == 0
				})).Return(list, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Success - All filters forwarded",
			query: "?user_id=" + filterUserID.String() + "&action=create&resource=glossary_task&from=2026-08-01T00:00:00Z&to=2026-08-28T00:00:00Z&limit=20&offset=40",
			setupMock: func() {
				mockService.On("List", mock.AnythingOfType("*context.valueCtx"), mock.MatchedBy(func(f *model.AuditLogFilter) bool {
					return f.UserID != nil && *f.UserID == filterUserID &&
						f.Action == "create" && f.Resource == "glossary_task" &&
						f.From != nil && f.To != nil &&
						f.Limit == 20 && f.Offset == 40
				})).Return(list, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - Invalid user_id",
			query:          "?user_id=not-a-uuid",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Invalid from timestamp",
			query:          "?from=2026/08/01",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Negative offset",
			query:          "?offset=-1",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Non-numeric limit",
			query:          "?limit=abc",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "GET", "/api/v1/audit/logs"+tc.query, nil, &adminID, model.RoleAdmin)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.AuditLogList
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.EqualValues(t, 1, resp.Total)
			} else {
				assertErrorResponse(t, rr.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuditHandler_Append(t *testing.T) {
	adminID := uuid.New()

	mockService := mocks.NewAuditService(t)
	auditHandler := handlers.NewAuditHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/audit/logs", auditHandler.Append)

	validReq := model.CreateAuditLogRequest{
		Action:     "export",
		Resource:   "glossary_task",
		ResourceID: uuid.New().String(),
		Detail:     "manual export from console",
	}
	entry := &model.AuditLog{
		LogID:      uuid.New(),
		UserID:     &adminID,
		Action:     validReq.Action,
		Resource:   validReq.Resource,
		ResourceID: validReq.ResourceID,
		Detail:     validReq.Detail,
		CreatedAt:  time.Now(),
	}

	t.Run("Success - Entry appended", func(t *testing.T) {
		mockService.On("Append", mock.AnythingOfType("*context.valueCtx"), &adminID, &validReq).
			Return(entry, nil).Once()

		req := createRequest(t, "POST", "/api/v1/audit/logs", validReq, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp model.AuditLog
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, entry.LogID, resp.LogID)
		assert.Equal(t, "export", resp.Action)
		mockService.AssertExpectations(t)
	})

	t.Run("Fail - Missing action", func(t *testing.T) {
		req := createRequest(t, "POST", "/api/v1/audit/logs", model.CreateAuditLogRequest{Resource: "glossary_task"}, &adminID, model.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes())
		mockService.AssertExpectations(t)
	})
}
