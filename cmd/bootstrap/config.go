package bootstrap

import (
	"log/slog"

	"travel-backoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		loadConfig,
	),
)

// loadConfig reports which optional backends are switched on, so a missing
// variable shows up in the boot log rather than as silent fallback.
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	slog.Info("Configuration loaded",
		"events_driver", cfg.Events.Driver,
		"redis_enabled", cfg.Redis.Addr != "",
		"rate_limit_enabled", cfg.RateLimit.Enabled,
		"pricing_catalog", cfg.Pricing.CatalogFile)
	return cfg, nil
}
