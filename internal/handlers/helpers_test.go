// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"glossary_console/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createRequest はテスト用HTTPリクエストを組み立てます。
// userID があれば開発用認証ミドルウェアが読む X-User-ID / X-User-Role を付与する。
func createRequest(t *testing.T, method, url string, body interface{}, userID *uuid.UUID, role string) *http.Request {
	t.Helper()

	var reqBodyReader io.Reader
	if body != nil {
		if strPayload, ok := body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(method, url, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
		if role != "" {
			req.Header.Set("X-User-Role", role)
		}
	}
	return req
}

// assertErrorResponse はエラーレスポンスのボディが APIErrorResponse 形式であることを検証します。
func assertErrorResponse(t *testing.T, bodyBytes []byte) {
	t.Helper()
	var errResp model.APIErrorResponse
	err := json.Unmarshal(bodyBytes, &errResp)
	assert.NoError(t, err, "Failed to unmarshal error response body")
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
}
