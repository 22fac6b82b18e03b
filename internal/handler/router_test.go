//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/handler"
	"travel-backoffice/internal/handler/api"
	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/config"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/queries"
	"travel-backoffice/tests/common/builder"
	"travel-backoffice/tests/common/httptest"
	commandsmock "travel-backoffice/tests/mock/commands"
	queriesmock "travel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	adminID    = uuid.MustParse("7b1c7f0e-51d4-4a8e-9f3a-2c6d8e0b1a42")
	adminActor = audit.Actor{ID: &adminID, Name: "alice", Role: "admin"}
	staffID    = uuid.MustParse("5f0c8a3e-2d7b-4c1e-9a6f-3b8e1d2c4a50")
	staffActor = audit.Actor{ID: &staffID, Name: "mia.staff", Role: "staff"}
)

type RouterTestSuite struct {
	suite.Suite
	cfg      config.Config
	ctrl     *gomock.Controller
	router   *gin.Engine
	settings *queriesmock.MockSettingsQueries
	users    *queriesmock.MockUserQueries
	userCmds *commandsmock.MockUserCommands
	reports  *queriesmock.MockReportQueries
	packages *queriesmock.MockPackageQueries
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()
	s.cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2}
	s.ctrl = gomock.NewController(s.T())

	s.settings = queriesmock.NewMockSettingsQueries(s.ctrl)
	s.users = queriesmock.NewMockUserQueries(s.ctrl)
	s.userCmds = commandsmock.NewMockUserCommands(s.ctrl)
	s.reports = queriesmock.NewMockReportQueries(s.ctrl)
	s.packages = queriesmock.NewMockPackageQueries(s.ctrl)
	auditQ := queriesmock.NewMockAuditQueries(s.ctrl)

	s.router = gin.New()
	handler.NewRouter(s.router, s.cfg, middleware.NewLogger(s.cfg.Log), middleware.NewRateLimiter(s.cfg.RateLimit), handler.Handlers{
		Packages:  api.NewPackageHandler(s.packages),
		Bookings:  api.NewBookingHandler(commandsmock.NewMockBookingCommands(s.ctrl), queriesmock.NewMockBookingQueries(s.ctrl)),
		Invoices:  api.NewInvoiceHandler(commandsmock.NewMockInvoiceCommands(s.ctrl), queriesmock.NewMockInvoiceQueries(s.ctrl)),
		Reports:   api.NewReportHandler(s.reports, clock.NewMockClock(builder.FixedNow)),
		Dashboard: api.NewDashboardHandler(queriesmock.NewMockDashboardQueries(s.ctrl)),
		Audit:     api.NewAuditHandler(auditQ),
		Settings:  api.NewSettingsHandler(commandsmock.NewMockSettingsCommands(s.ctrl), s.settings, auditQ),
		Users:     api.NewUserHandler(s.userCmds, s.users),
	})
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, nil)
	var body map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("ok", body["status"])
}

func (s *RouterTestSuite) TestPackages() {
	s.packages.EXPECT().List().Return([]*queries.PackageView{
		{ID: 1, Name: "Bali Paradise Tour", BasePrice: decimal.NewFromInt(1200)},
	})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/packages", nil, nil)

	var body []map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal("Bali Paradise Tour", body[0]["name"])
	s.Equal("1200.00", body[0]["base_price"])
}

func (s *RouterTestSuite) TestAdminOnlyRoutes() {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/settings"},
		{http.MethodPut, "/api/settings"},
		{http.MethodGet, "/api/settings/system"},
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/users"},
		{http.MethodDelete, "/api/users/" + staffID.String()},
	}
	for _, r := range routes {
		s.Run("staff forbidden "+r.method+" "+r.path, func() {
			rec := httptest.PerformRequest(s.T(), s.router, r.method, r.path, nil, httptest.ActorHeaders(staffActor))
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		})
		s.Run("anonymous forbidden "+r.method+" "+r.path, func() {
			rec := httptest.PerformRequest(s.T(), s.router, r.method, r.path, nil, nil)
			s.Equal(http.StatusForbidden, rec.Code)
		})
	}

	s.Run("admin reads settings without the smtp password", func() {
		st := setting.Defaults()
		st.SMTPPassword = "hunter2"
		s.settings.EXPECT().Get(gomock.Any()).Return(st, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/settings", nil, httptest.ActorHeaders(adminActor))

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("RTT-INV-", body["invoice_prefix"])
		s.NotContains(rec.Body.String(), "hunter2")
	})

	s.Run("admin lists users", func() {
		s.users.EXPECT().List(gomock.Any()).Return([]*queries.UserView{{ID: staffID, Username: "mia.staff", Email: "mia@example.com", Role: "staff"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users", nil, httptest.ActorHeaders(adminActor))

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("mia.staff", body[0]["username"])
		s.NotContains(body[0], "password_hash")
	})

	s.Run("admin cannot delete own account", func() {
		s.userCmds.EXPECT().Delete(gomock.Any(), adminID, adminActor).
			Return(errs.Mark(errs.New("Cannot delete your own account"), errs.ErrIntegrity))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/users/"+adminID.String(), nil, httptest.ActorHeaders(adminActor))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cannot delete your own account")
	})
}

func (s *RouterTestSuite) TestReportsAreRateLimited() {
	s.reports.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.Mark(errs.New("down"), errs.ErrPersistence)).Times(2)

	for range 2 {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reports", nil, nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Equal("2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reports", nil, nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Too many requests")
	s.Equal("0", rec.Header().Get("X-RateLimit-Remaining"))
	s.NotEmpty(rec.Header().Get("Retry-After"))
}
