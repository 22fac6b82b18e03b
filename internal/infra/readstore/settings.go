package readstore

import (
	"context"

	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/repository"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
)

type SettingsReadQueries interface {
	ListSettings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Settings, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      sqlc.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db sqlc.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsReadStore) Values(ctx context.Context) (map[setting.Key]string, error) {
	rows, err := r.queries.ListSettings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list settings", err)
	}
	return repository.SettingsRowsToValues(rows), nil
}
