// source: sequence.sql

package sqlc

import (
	"context"
)

const reserveSequenceValue = `-- name: ReserveSequenceValue :one
UPDATE invoice_sequence
SET last_value = last_value + 1,
    updated_at = NOW()
WHERE name = $1
RETURNING last_value - 1 AS reserved
`

// ReserveSequenceValue returns the value before the increment. The row lock
// it takes is held until the surrounding transaction ends.
func (q *Queries) ReserveSequenceValue(ctx context.Context, db DBTX, name string) (int64, error) {
	row := db.QueryRow(ctx, reserveSequenceValue, name)
	var reserved int64
	err := row.Scan(&reserved)
	return reserved, err
}
