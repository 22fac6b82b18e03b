// source: system.sql

package sqlc

import (
	"context"
)

const getSystemCounts = `-- name: GetSystemCounts :one
SELECT
    (SELECT COUNT(*) FROM invoices) AS invoices,
    (SELECT COUNT(*) FROM bookings) AS bookings,
    (SELECT COUNT(*) FROM users) AS users
`

type GetSystemCountsRow struct {
	Invoices int64 `db:"invoices" json:"invoices"`
	Bookings int64 `db:"bookings" json:"bookings"`
	Users    int64 `db:"users" json:"users"`
}

func (q *Queries) GetSystemCounts(ctx context.Context, db DBTX) (GetSystemCountsRow, error) {
	row := db.QueryRow(ctx, getSystemCounts)
	var i GetSystemCountsRow
	err := row.Scan(&i.Invoices, &i.Bookings, &i.Users)
	return i, err
}
