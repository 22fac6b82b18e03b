package components

import (
	"travel-backoffice/internal/handler"
	"travel-backoffice/internal/handler/api"
	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPackageHandler,
		api.NewBookingHandler,
		api.NewInvoiceHandler,
		api.NewReportHandler,
		api.NewDashboardHandler,
		api.NewAuditHandler,
		api.NewSettingsHandler,
		api.NewUserHandler,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(p handlerParams) handler.Handlers {
			return p.handlers()
		},
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Packages  *api.PackageHandler
	Bookings  *api.BookingHandler
	Invoices  *api.InvoiceHandler
	Reports   *api.ReportHandler
	Dashboard *api.DashboardHandler
	Audit     *api.AuditHandler
	Settings  *api.SettingsHandler
	Users     *api.UserHandler
}

func (p handlerParams) handlers() handler.Handlers {
	return handler.Handlers{
		Packages:  p.Packages,
		Bookings:  p.Bookings,
		Invoices:  p.Invoices,
		Reports:   p.Reports,
		Dashboard: p.Dashboard,
		Audit:     p.Audit,
		Settings:  p.Settings,
		Users:     p.Users,
	}
}
