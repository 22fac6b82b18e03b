//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"travel-backoffice/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	require.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	if target != nil && wantStatus < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body is not JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error envelope message
// contains wantMsg. An empty wantMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "error body is not JSON: %s", w.Body.String())
	require.NotEmpty(t, resp.Error.Message, "error envelope has no message")
	if wantMsg != "" {
		assert.Contains(t, resp.Error.Message, wantMsg)
	}
	return resp
}

// AssertHeaders compares each expected header with the recorded response.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for k, v := range want {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}
