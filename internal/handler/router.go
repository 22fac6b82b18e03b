package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-backoffice/internal/domain/user"
	"travel-backoffice/internal/handler/api"
	"travel-backoffice/internal/handler/httperr"
	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Packages  *api.PackageHandler
	Bookings  *api.BookingHandler
	Invoices  *api.InvoiceHandler
	Reports   *api.ReportHandler
	Dashboard *api.DashboardHandler
	Audit     *api.AuditHandler
	Settings  *api.SettingsHandler
	Users     *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, limiter *middleware.RateLimiter, h Handlers) {
	httperr.UseJSONFieldNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, limiter, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Actor())
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(engine *gin.Engine, limiter *middleware.RateLimiter, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/packages", Handler: h.Packages.List},
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Get},
			{Method: http.MethodGet, Path: "/audit-logs", Handler: h.Audit.Recent},
			{Method: http.MethodGet, Path: "/reports", Handler: h.Reports.Generate, Mw: []gin.HandlerFunc{limiter.Limit()}},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Bookings.Stats},
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Bookings.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete},
			{Method: http.MethodPost, Path: "/:id/invoice", Handler: h.Bookings.ConvertToInvoice},
		})

		invoices := apiGroup.Group("/invoices")
		addRoutes(invoices, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Invoices.List},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Invoices.Stats},
			{Method: http.MethodPost, Path: "", Handler: h.Invoices.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Invoices.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Invoices.Update},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Invoices.UpdateStatus},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Invoices.Delete},
		})

		settings := apiGroup.Group("/settings")
		settings.Use(middleware.RequireRole(user.RoleAdmin))
		addRoutes(settings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Settings.Get},
			{Method: http.MethodPut, Path: "", Handler: h.Settings.Update},
			{Method: http.MethodGet, Path: "/system", Handler: h.Settings.System},
		})

		users := apiGroup.Group("/users")
		users.Use(middleware.RequireRole(user.RoleAdmin))
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Users.List},
			{Method: http.MethodPost, Path: "", Handler: h.Users.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Users.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Users.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
