// source: system_log.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertSystemLog = `-- name: InsertSystemLog :exec
INSERT INTO system_log (user_id, action, action_details, performed_by, created_at)
VALUES ((SELECT u.id FROM users u WHERE u.id = $1), $2, $3, $4, $5)
`

type InsertSystemLogParams struct {
	UserID        pgtype.UUID        `db:"user_id" json:"user_id"`
	Action        string             `db:"action" json:"action"`
	ActionDetails string             `db:"action_details" json:"action_details"`
	PerformedBy   string             `db:"performed_by" json:"performed_by"`
	CreatedAt     pgtype.Timestamptz `db:"created_at" json:"created_at"`
}

// InsertSystemLog drops a user_id that no longer references a user.
func (q *Queries) InsertSystemLog(ctx context.Context, db DBTX, arg InsertSystemLogParams) error {
	_, err := db.Exec(ctx, insertSystemLog,
		arg.UserID,
		arg.Action,
		arg.ActionDetails,
		arg.PerformedBy,
		arg.CreatedAt,
	)
	return err
}

const listSystemLogs = `-- name: ListSystemLogs :many
SELECT id, user_id, action, action_details, performed_by, created_at
FROM system_log
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2
`

type ListSystemLogsParams struct {
	Limit  int32 `db:"limit" json:"limit"`
	Offset int32 `db:"offset" json:"offset"`
}

func (q *Queries) ListSystemLogs(ctx context.Context, db DBTX, arg ListSystemLogsParams) ([]SystemLog, error) {
	rows, err := db.Query(ctx, listSystemLogs, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SystemLog
	for rows.Next() {
		var i SystemLog
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Action,
			&i.ActionDetails,
			&i.PerformedBy,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
