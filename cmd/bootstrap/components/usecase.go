package components

import (
	"time"

	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/config"
	"travel-backoffice/internal/usecase/commands"
	"travel-backoffice/internal/usecase/queries"
	"travel-backoffice/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewInvoiceUseCase,
		commands.NewSettingsUseCase,
		commands.NewUserUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewInvoiceQueries,
		queries.NewDashboardQueries,
		queries.NewAuditQueries,
		queries.NewUserQueries,
		queries.NewPackageQueries,
		func(rs queries.ReportReadStore, cache shared.Cache, clk clock.Clock, cfg config.Config) queries.ReportQueries {
			return queries.NewReportQueries(rs, cache, clk, ttlOrDefault(cfg.Redis.ReportCacheTTL))
		},
		func(rs queries.SettingsReadStore, cache shared.Cache, cfg config.Config) queries.SettingsQueries {
			return queries.NewSettingsQueries(rs, cache, ttlOrDefault(cfg.Redis.SettingsCacheTTL))
		},
	),
)

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 5 * time.Minute
	}
	return ttl
}
