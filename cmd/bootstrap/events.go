package bootstrap

import (
	"context"
	"log/slog"

	"travel-backoffice/internal/infra/events"
	"travel-backoffice/internal/infra/repository"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/config"
	"travel-backoffice/internal/usecase/shared"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewTransport,
		NewAuditPublisher,
		NewAuditRouter,
	),
	fx.Invoke(RunAuditRouter),
)

func NewTransport(lc fx.Lifecycle, cfg config.Config, client *redis.Client, logger *slog.Logger) (*events.Transport, error) {
	t, err := events.NewTransport(cfg.Events, client, events.NewLogger(logger))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return t.Close()
		},
	})
	return t, nil
}

func NewAuditPublisher(t *events.Transport, cfg config.Config) shared.AuditLog {
	return events.NewAuditPublisher(t.Publisher, cfg.Events.AuditTopic)
}

// NewAuditRouter persists audit entries outside request transactions, straight on the pool.
func NewAuditRouter(t *events.Transport, cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries) (*message.Router, error) {
	store := repository.NewAuditLogRepository(q, pool)
	return events.NewAuditRouter(t, cfg.Events.AuditTopic, store)
}

func RunAuditRouter(lc fx.Lifecycle, router *message.Router, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			go func() {
				if err := router.Run(ctx); err != nil {
					logger.Error("Audit router stopped", "error", err.Error())
				}
			}()
			// The in-memory driver drops messages published before the handler subscribes.
			select {
			case <-router.Running():
				return nil
			case <-startCtx.Done():
				return startCtx.Err()
			}
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return router.Close()
		},
	})
}
