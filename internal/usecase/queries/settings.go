package queries

import (
	"context"
	"log/slog"
	"time"

	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/shared"
)

type SettingsReadStore interface {
	Values(ctx context.Context) (map[setting.Key]string, error)
}

type SettingsQueries interface {
	Get(ctx context.Context) (setting.Settings, error)
}

type settingsQueriesImpl struct {
	readStore SettingsReadStore
	cache     shared.Cache
	ttl       time.Duration
}

func NewSettingsQueries(readStore SettingsReadStore, cache shared.Cache, ttl time.Duration) SettingsQueries {
	return &settingsQueriesImpl{readStore: readStore, cache: cache, ttl: ttl}
}

// Get caches the raw stored values rather than the typed settings so that
// fields hidden from JSON survive the round trip.
func (q *settingsQueriesImpl) Get(ctx context.Context) (setting.Settings, error) {
	var values map[setting.Key]string
	err := q.cache.Get(ctx, shared.CacheKeySettings, &values)
	if err == nil {
		return setting.FromValues(values), nil
	}
	if !errs.Is(err, shared.ErrCacheMiss) {
		slog.Warn("Settings cache read failed", "error", err.Error())
	}

	values, err = q.readStore.Values(ctx)
	if err != nil {
		return setting.Settings{}, errs.Mark(err, errs.ErrPersistence)
	}
	if err := q.cache.Set(ctx, shared.CacheKeySettings, values, q.ttl); err != nil {
		slog.Warn("Settings cache write failed", "error", err.Error())
	}
	return setting.FromValues(values), nil
}
