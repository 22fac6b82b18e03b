package repository

import (
	"context"
	"sort"

	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/infra"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
)

type SettingsQueries interface {
	ListSettings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Settings, error)
	UpsertSetting(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSettingParams) error
}

type SettingsRepository struct {
	queries SettingsQueries
	db      sqlc.DBTX
}

func NewSettingsRepository(queries SettingsQueries, db sqlc.DBTX) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsRepository) Load(ctx context.Context, tx sqlc.DBTX) (setting.Settings, error) {
	rows, err := r.queries.ListSettings(ctx, tx)
	if err != nil {
		return setting.Settings{}, infra.WrapRepoErr("failed to load settings", err)
	}
	return setting.FromValues(SettingsRowsToValues(rows)), nil
}

// Upsert writes keys in sorted order so concurrent batches lock rows consistently.
func (r *SettingsRepository) Upsert(ctx context.Context, tx sqlc.DBTX, values map[setting.Key]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		err := r.queries.UpsertSetting(ctx, tx, sqlc.UpsertSettingParams{
			SettingKey:   k,
			SettingValue: values[setting.Key(k)],
		})
		if err != nil {
			return infra.WrapRepoErr("failed to save setting "+k, err)
		}
	}
	return nil
}

func SettingsRowsToValues(rows []sqlc.Settings) map[setting.Key]string {
	values := make(map[setting.Key]string, len(rows))
	for _, row := range rows {
		values[setting.Key(row.SettingKey)] = row.SettingValue
	}
	return values
}
