//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.ErrorHandler())
	r.NoRoute(middleware.NoRoute())
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "gateway id is reused", incoming: "gw-4f1c2a9e77", reuse: true},
		{name: "missing id is generated", incoming: ""},
		{name: "suspicious id is replaced", incoming: "bad id\nwith newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine()
			var seen string
			r.GET("/ping", func(c *gin.Context) {
				seen = middleware.GetRequestID(c)
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(middleware.HeaderRequestID, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(middleware.HeaderRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, seen, got)
			if tt.reuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	r := newEngine()
	r.GET("/boom", func(_ *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
}

func TestNoRoute(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Route not found"}}`, w.Body.String())
}

func TestErrorHandler_AbortWithoutBody(t *testing.T) {
	r := newEngine()
	r.GET("/teapot", func(c *gin.Context) { c.AbortWithStatus(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}
