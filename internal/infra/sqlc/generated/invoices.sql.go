// source: invoices.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createInvoice = `-- name: CreateInvoice :one
INSERT INTO invoices (
    invoice_number, booking_id, invoice_date, customer_name, customer_email,
    package_name, package_price, tax, discount, total_amount, payment_status,
    created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING id
`

type CreateInvoiceParams struct {
	InvoiceNumber string             `db:"invoice_number" json:"invoice_number"`
	BookingID     pgtype.Int8        `db:"booking_id" json:"booking_id"`
	InvoiceDate   pgtype.Date        `db:"invoice_date" json:"invoice_date"`
	CustomerName  string             `db:"customer_name" json:"customer_name"`
	CustomerEmail string             `db:"customer_email" json:"customer_email"`
	PackageName   string             `db:"package_name" json:"package_name"`
	PackagePrice  pgtype.Numeric     `db:"package_price" json:"package_price"`
	Tax           pgtype.Numeric     `db:"tax" json:"tax"`
	Discount      pgtype.Numeric     `db:"discount" json:"discount"`
	TotalAmount   pgtype.Numeric     `db:"total_amount" json:"total_amount"`
	PaymentStatus string             `db:"payment_status" json:"payment_status"`
	CreatedAt     pgtype.Timestamptz `db:"created_at" json:"created_at"`
}

func (q *Queries) CreateInvoice(ctx context.Context, db DBTX, arg CreateInvoiceParams) (int64, error) {
	row := db.QueryRow(ctx, createInvoice,
		arg.InvoiceNumber,
		arg.BookingID,
		arg.InvoiceDate,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.PackageName,
		arg.PackagePrice,
		arg.Tax,
		arg.Discount,
		arg.TotalAmount,
		arg.PaymentStatus,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const deleteInvoice = `-- name: DeleteInvoice :one
DELETE FROM invoices WHERE id = $1
RETURNING invoice_number
`

func (q *Queries) DeleteInvoice(ctx context.Context, db DBTX, id int64) (string, error) {
	row := db.QueryRow(ctx, deleteInvoice, id)
	var invoiceNumber string
	err := row.Scan(&invoiceNumber)
	return invoiceNumber, err
}

const getInvoice = `-- name: GetInvoice :one
SELECT id, invoice_number, booking_id, invoice_date, customer_name, customer_email, package_name, package_price, tax, discount, total_amount, payment_status, created_at, updated_at
FROM invoices
WHERE id = $1
`

func (q *Queries) GetInvoice(ctx context.Context, db DBTX, id int64) (Invoices, error) {
	row := db.QueryRow(ctx, getInvoice, id)
	var i Invoices
	err := row.Scan(
		&i.ID,
		&i.InvoiceNumber,
		&i.BookingID,
		&i.InvoiceDate,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.PackageName,
		&i.PackagePrice,
		&i.Tax,
		&i.Discount,
		&i.TotalAmount,
		&i.PaymentStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getInvoiceStats = `-- name: GetInvoiceStats :one
SELECT
    COUNT(*) AS total,
    COALESCE(SUM(total_amount), 0)::NUMERIC(14,2) AS total_revenue,
    COUNT(*) FILTER (WHERE payment_status = 'paid') AS paid,
    COUNT(*) FILTER (WHERE payment_status = 'pending') AS pending,
    COUNT(*) FILTER (WHERE payment_status = 'overdue') AS overdue
FROM invoices
`

type GetInvoiceStatsRow struct {
	Total        int64          `db:"total" json:"total"`
	TotalRevenue pgtype.Numeric `db:"total_revenue" json:"total_revenue"`
	Paid         int64          `db:"paid" json:"paid"`
	Pending      int64          `db:"pending" json:"pending"`
	Overdue      int64          `db:"overdue" json:"overdue"`
}

func (q *Queries) GetInvoiceStats(ctx context.Context, db DBTX) (GetInvoiceStatsRow, error) {
	row := db.QueryRow(ctx, getInvoiceStats)
	var i GetInvoiceStatsRow
	err := row.Scan(
		&i.Total,
		&i.TotalRevenue,
		&i.Paid,
		&i.Pending,
		&i.Overdue,
	)
	return i, err
}

const getInvoiceView = `-- name: GetInvoiceView :one
SELECT i.id, i.invoice_number, i.booking_id, i.invoice_date, i.customer_name, i.customer_email, i.package_name, i.package_price, i.tax, i.discount, i.total_amount, i.payment_status, i.created_at, i.updated_at,
    b.from_date AS booking_from_date,
    b.to_date AS booking_to_date
FROM invoices i
LEFT JOIN bookings b ON b.id = i.booking_id
WHERE i.id = $1
`

type GetInvoiceViewRow struct {
	ID              int64              `db:"id" json:"id"`
	InvoiceNumber   string             `db:"invoice_number" json:"invoice_number"`
	BookingID       pgtype.Int8        `db:"booking_id" json:"booking_id"`
	InvoiceDate     pgtype.Date        `db:"invoice_date" json:"invoice_date"`
	CustomerName    string             `db:"customer_name" json:"customer_name"`
	CustomerEmail   string             `db:"customer_email" json:"customer_email"`
	PackageName     string             `db:"package_name" json:"package_name"`
	PackagePrice    pgtype.Numeric     `db:"package_price" json:"package_price"`
	Tax             pgtype.Numeric     `db:"tax" json:"tax"`
	Discount        pgtype.Numeric     `db:"discount" json:"discount"`
	TotalAmount     pgtype.Numeric     `db:"total_amount" json:"total_amount"`
	PaymentStatus   string             `db:"payment_status" json:"payment_status"`
	CreatedAt       pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
	BookingFromDate pgtype.Date        `db:"booking_from_date" json:"booking_from_date"`
	BookingToDate   pgtype.Date        `db:"booking_to_date" json:"booking_to_date"`
}

func (q *Queries) GetInvoiceView(ctx context.Context, db DBTX, id int64) (GetInvoiceViewRow, error) {
	row := db.QueryRow(ctx, getInvoiceView, id)
	var i GetInvoiceViewRow
	err := row.Scan(
		&i.ID,
		&i.InvoiceNumber,
		&i.BookingID,
		&i.InvoiceDate,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.PackageName,
		&i.PackagePrice,
		&i.Tax,
		&i.Discount,
		&i.TotalAmount,
		&i.PaymentStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.BookingFromDate,
		&i.BookingToDate,
	)
	return i, err
}

const updateInvoice = `-- name: UpdateInvoice :execrows
UPDATE invoices
SET booking_id = $2,
    invoice_date = $3,
    customer_name = $4,
    customer_email = $5,
    package_name = $6,
    package_price = $7,
    tax = $8,
    discount = $9,
    total_amount = $10,
    payment_status = $11,
    updated_at = $12
WHERE id = $1
`

type UpdateInvoiceParams struct {
	ID            int64              `db:"id" json:"id"`
	BookingID     pgtype.Int8        `db:"booking_id" json:"booking_id"`
	InvoiceDate   pgtype.Date        `db:"invoice_date" json:"invoice_date"`
	CustomerName  string             `db:"customer_name" json:"customer_name"`
	CustomerEmail string             `db:"customer_email" json:"customer_email"`
	PackageName   string             `db:"package_name" json:"package_name"`
	PackagePrice  pgtype.Numeric     `db:"package_price" json:"package_price"`
	Tax           pgtype.Numeric     `db:"tax" json:"tax"`
	Discount      pgtype.Numeric     `db:"discount" json:"discount"`
	TotalAmount   pgtype.Numeric     `db:"total_amount" json:"total_amount"`
	PaymentStatus string             `db:"payment_status" json:"payment_status"`
	UpdatedAt     pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

func (q *Queries) UpdateInvoice(ctx context.Context, db DBTX, arg UpdateInvoiceParams) (int64, error) {
	result, err := db.Exec(ctx, updateInvoice,
		arg.ID,
		arg.BookingID,
		arg.InvoiceDate,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.PackageName,
		arg.PackagePrice,
		arg.Tax,
		arg.Discount,
		arg.TotalAmount,
		arg.PaymentStatus,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateInvoiceStatus = `-- name: UpdateInvoiceStatus :execrows
UPDATE invoices
SET payment_status = $2,
    updated_at = $3
WHERE id = $1
`

type UpdateInvoiceStatusParams struct {
	ID            int64              `db:"id" json:"id"`
	PaymentStatus string             `db:"payment_status" json:"payment_status"`
	UpdatedAt     pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

func (q *Queries) UpdateInvoiceStatus(ctx context.Context, db DBTX, arg UpdateInvoiceStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateInvoiceStatus, arg.ID, arg.PaymentStatus, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
