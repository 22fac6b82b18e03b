package bootstrap

import (
	"context"
	"log/slog"

	"travel-backoffice/internal/infra/db"
	"travel-backoffice/internal/pkg/config"
	"travel-backoffice/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, errs.Wrapf(err, "connecting to postgres at %s:%s", cfg.DB.Host, cfg.DB.Port)
	}
	logger.Info("Database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", cfg.DB.MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			st := pool.Stat()
			logger.Info("Closing database pool",
				"acquired_conns", st.AcquiredConns(),
				"total_conns", st.TotalConns())
			cleanup()
			return nil
		},
	})
	return pool, nil
}
