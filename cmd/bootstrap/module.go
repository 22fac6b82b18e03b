package bootstrap

import (
	"travel-backoffice/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	EventsModule,
	PricingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
