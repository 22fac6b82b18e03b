package bootstrap

import (
	"log/slog"

	"travel-backoffice/internal/domain/pricing"
	"travel-backoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var PricingModule = fx.Module("pricing",
	fx.Provide(
		NewCatalog,
		fx.Annotate(
			pricing.NewDefaultPriceCalculator,
			fx.As(new(pricing.PriceCalculator)),
		),
	),
)

// NewCatalog loads PRICING_CATALOG_FILE when set and falls back to the built-in packages.
func NewCatalog(cfg config.Config) (*pricing.Catalog, error) {
	if cfg.Pricing.CatalogFile == "" {
		return pricing.DefaultCatalog(), nil
	}
	catalog, err := pricing.LoadCatalog(cfg.Pricing.CatalogFile)
	if err != nil {
		return nil, err
	}
	slog.Info("Pricing catalog loaded", "file", cfg.Pricing.CatalogFile, "packages", len(catalog.Packages()))
	return catalog, nil
}
