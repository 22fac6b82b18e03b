//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"travel-backoffice/internal/domain/audit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// ActorHeaders renders an actor the way the gateway forwards it.
func ActorHeaders(actor audit.Actor) map[string]string {
	h := map[string]string{}
	if actor.ID != nil {
		h["X-Actor-ID"] = actor.ID.String()
	}
	if actor.Name != "" {
		h["X-Actor-Name"] = actor.Name
	}
	if actor.Role != "" {
		h["X-Actor-Role"] = actor.Role
	}
	return h
}

// executes HTTP request with optional extra headers
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodes JSON response body into target struct
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}
