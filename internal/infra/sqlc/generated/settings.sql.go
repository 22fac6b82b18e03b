// source: settings.sql

package sqlc

import (
	"context"
)

const listSettings = `-- name: ListSettings :many
SELECT setting_key, setting_value, updated_at FROM settings ORDER BY setting_key
`

func (q *Queries) ListSettings(ctx context.Context, db DBTX) ([]Settings, error) {
	rows, err := db.Query(ctx, listSettings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Settings
	for rows.Next() {
		var i Settings
		if err := rows.Scan(&i.SettingKey, &i.SettingValue, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertSetting = `-- name: UpsertSetting :exec
INSERT INTO settings (setting_key, setting_value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (setting_key) DO UPDATE
SET setting_value = EXCLUDED.setting_value,
    updated_at = EXCLUDED.updated_at
`

type UpsertSettingParams struct {
	SettingKey   string `db:"setting_key" json:"setting_key"`
	SettingValue string `db:"setting_value" json:"setting_value"`
}

func (q *Queries) UpsertSetting(ctx context.Context, db DBTX, arg UpsertSettingParams) error {
	_, err := db.Exec(ctx, upsertSetting, arg.SettingKey, arg.SettingValue)
	return err
}
