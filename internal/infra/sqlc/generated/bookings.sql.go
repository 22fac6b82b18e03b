// source: bookings.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countInvoicesByBooking = `-- name: CountInvoicesByBooking :one
SELECT COUNT(*) FROM invoices WHERE booking_id = $1
`

func (q *Queries) CountInvoicesByBooking(ctx context.Context, db DBTX, bookingID pgtype.Int8) (int64, error) {
	row := db.QueryRow(ctx, countInvoicesByBooking, bookingID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (user_email, package_id, package_name, from_date, to_date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING id, user_email, package_id, package_name, from_date, to_date, status, created_at, updated_at
`

type CreateBookingParams struct {
	UserEmail   string             `db:"user_email" json:"user_email"`
	PackageID   int32              `db:"package_id" json:"package_id"`
	PackageName string             `db:"package_name" json:"package_name"`
	FromDate    pgtype.Date        `db:"from_date" json:"from_date"`
	ToDate      pgtype.Date        `db:"to_date" json:"to_date"`
	Status      string             `db:"status" json:"status"`
	CreatedAt   pgtype.Timestamptz `db:"created_at" json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.UserEmail,
		arg.PackageID,
		arg.PackageName,
		arg.FromDate,
		arg.ToDate,
		arg.Status,
		arg.CreatedAt,
	)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserEmail,
		&i.PackageID,
		&i.PackageName,
		&i.FromDate,
		&i.ToDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteBooking = `-- name: DeleteBooking :execrows
DELETE FROM bookings WHERE id = $1
`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getBooking = `-- name: GetBooking :one
SELECT id, user_email, package_id, package_name, from_date, to_date, status, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id int64) (Bookings, error) {
	row := db.QueryRow(ctx, getBooking, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserEmail,
		&i.PackageID,
		&i.PackageName,
		&i.FromDate,
		&i.ToDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBookingForUpdate = `-- name: GetBookingForUpdate :one
SELECT id, user_email, package_id, package_name, from_date, to_date, status, created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id int64) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingForUpdate, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserEmail,
		&i.PackageID,
		&i.PackageName,
		&i.FromDate,
		&i.ToDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBookingStats = `-- name: GetBookingStats :one
SELECT
    COUNT(*) AS total,
    COUNT(*) FILTER (WHERE b.status = 'confirmed') AS confirmed,
    COUNT(*) FILTER (WHERE b.status = 'pending') AS pending,
    COUNT(*) FILTER (WHERE b.status = 'cancelled') AS cancelled,
    COUNT(*) FILTER (WHERE EXISTS (SELECT 1 FROM invoices i WHERE i.booking_id = b.id)) AS with_invoices
FROM bookings b
`

type GetBookingStatsRow struct {
	Total        int64 `db:"total" json:"total"`
	Confirmed    int64 `db:"confirmed" json:"confirmed"`
	Pending      int64 `db:"pending" json:"pending"`
	Cancelled    int64 `db:"cancelled" json:"cancelled"`
	WithInvoices int64 `db:"with_invoices" json:"with_invoices"`
}

func (q *Queries) GetBookingStats(ctx context.Context, db DBTX) (GetBookingStatsRow, error) {
	row := db.QueryRow(ctx, getBookingStats)
	var i GetBookingStatsRow
	err := row.Scan(
		&i.Total,
		&i.Confirmed,
		&i.Pending,
		&i.Cancelled,
		&i.WithInvoices,
	)
	return i, err
}

const getBookingView = `-- name: GetBookingView :one
SELECT b.id, b.user_email, b.package_id, b.package_name, b.from_date, b.to_date, b.status, b.created_at, b.updated_at,
    (SELECT COUNT(*) FROM invoices i WHERE i.booking_id = b.id) AS invoice_count
FROM bookings b
WHERE b.id = $1
`

type GetBookingViewRow struct {
	ID           int64              `db:"id" json:"id"`
	UserEmail    string             `db:"user_email" json:"user_email"`
	PackageID    int32              `db:"package_id" json:"package_id"`
	PackageName  string             `db:"package_name" json:"package_name"`
	FromDate     pgtype.Date        `db:"from_date" json:"from_date"`
	ToDate       pgtype.Date        `db:"to_date" json:"to_date"`
	Status       string             `db:"status" json:"status"`
	CreatedAt    pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
	InvoiceCount int64              `db:"invoice_count" json:"invoice_count"`
}

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id int64) (GetBookingViewRow, error) {
	row := db.QueryRow(ctx, getBookingView, id)
	var i GetBookingViewRow
	err := row.Scan(
		&i.ID,
		&i.UserEmail,
		&i.PackageID,
		&i.PackageName,
		&i.FromDate,
		&i.ToDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.InvoiceCount,
	)
	return i, err
}

const updateBooking = `-- name: UpdateBooking :execrows
UPDATE bookings
SET user_email = $2,
    package_id = $3,
    package_name = $4,
    from_date = $5,
    to_date = $6,
    status = $7,
    updated_at = $8
WHERE id = $1
`

type UpdateBookingParams struct {
	ID          int64              `db:"id" json:"id"`
	UserEmail   string             `db:"user_email" json:"user_email"`
	PackageID   int32              `db:"package_id" json:"package_id"`
	PackageName string             `db:"package_name" json:"package_name"`
	FromDate    pgtype.Date        `db:"from_date" json:"from_date"`
	ToDate      pgtype.Date        `db:"to_date" json:"to_date"`
	Status      string             `db:"status" json:"status"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.UserEmail,
		arg.PackageID,
		arg.PackageName,
		arg.FromDate,
		arg.ToDate,
		arg.Status,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
