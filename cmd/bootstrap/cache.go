package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"travel-backoffice/internal/infra/cache"
	"travel-backoffice/internal/pkg/config"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 3 * time.Second

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewCache,
	),
)

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	client := cache.NewRedisClient(cfg.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "connecting to redis at %s", cfg.Redis.Addr)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewCache(client *redis.Client) shared.Cache {
	if client == nil {
		slog.Info("REDIS_ADDR not set, caching disabled")
		return cache.NewNoop()
	}
	return cache.NewRedisCache(client)
}
