package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"travel-backoffice/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browsers must be able to send the actor headers and read the CSV filename
// and request id whatever the environment configures.
var (
	requiredAllowHeaders  = []string{HeaderActorID, HeaderActorName, HeaderActorRole, HeaderRequestID}
	requiredExposeHeaders = []string{"Content-Disposition", HeaderRequestID}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     mergeHeaders(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func mergeHeaders(configured, required []string) []string {
	out := make([]string, 0, len(configured)+len(required))
	for _, h := range append(slices.Clone(configured), required...) {
		h = http.CanonicalHeaderKey(h)
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
