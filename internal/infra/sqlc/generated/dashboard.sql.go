// source: dashboard.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getDashboardTotals = `-- name: GetDashboardTotals :one
SELECT
    COUNT(*) AS total_invoices,
    COUNT(*) FILTER (WHERE payment_status = 'paid') AS paid_invoices,
    COUNT(*) FILTER (WHERE payment_status = 'pending') AS pending_invoices,
    COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0)::NUMERIC(14,2) AS paid_revenue
FROM invoices
`

type GetDashboardTotalsRow struct {
	TotalInvoices   int64          `db:"total_invoices" json:"total_invoices"`
	PaidInvoices    int64          `db:"paid_invoices" json:"paid_invoices"`
	PendingInvoices int64          `db:"pending_invoices" json:"pending_invoices"`
	PaidRevenue     pgtype.Numeric `db:"paid_revenue" json:"paid_revenue"`
}

func (q *Queries) GetDashboardTotals(ctx context.Context, db DBTX) (GetDashboardTotalsRow, error) {
	row := db.QueryRow(ctx, getDashboardTotals)
	var i GetDashboardTotalsRow
	err := row.Scan(
		&i.TotalInvoices,
		&i.PaidInvoices,
		&i.PendingInvoices,
		&i.PaidRevenue,
	)
	return i, err
}

const getInvoicesCreatedBetween = `-- name: GetInvoicesCreatedBetween :one
SELECT
    COUNT(*) AS invoice_count,
    COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0)::NUMERIC(14,2) AS paid_revenue
FROM invoices
WHERE created_at >= $1 AND created_at < $2
`

type GetInvoicesCreatedBetweenParams struct {
	StartAt pgtype.Timestamptz `db:"start_at" json:"start_at"`
	EndAt   pgtype.Timestamptz `db:"end_at" json:"end_at"`
}

type GetInvoicesCreatedBetweenRow struct {
	InvoiceCount int64          `db:"invoice_count" json:"invoice_count"`
	PaidRevenue  pgtype.Numeric `db:"paid_revenue" json:"paid_revenue"`
}

func (q *Queries) GetInvoicesCreatedBetween(ctx context.Context, db DBTX, arg GetInvoicesCreatedBetweenParams) (GetInvoicesCreatedBetweenRow, error) {
	row := db.QueryRow(ctx, getInvoicesCreatedBetween, arg.StartAt, arg.EndAt)
	var i GetInvoicesCreatedBetweenRow
	err := row.Scan(&i.InvoiceCount, &i.PaidRevenue)
	return i, err
}

const getMonthlyPaidRevenue = `-- name: GetMonthlyPaidRevenue :many
SELECT
    to_char(invoice_date, 'YYYY-MM') AS month,
    COALESCE(SUM(total_amount), 0)::NUMERIC(14,2) AS revenue
FROM invoices
WHERE payment_status = 'paid'
GROUP BY to_char(invoice_date, 'YYYY-MM')
ORDER BY month DESC
LIMIT $1
`

type GetMonthlyPaidRevenueRow struct {
	Month   string         `db:"month" json:"month"`
	Revenue pgtype.Numeric `db:"revenue" json:"revenue"`
}

// GetMonthlyPaidRevenue returns the most recent months first.
func (q *Queries) GetMonthlyPaidRevenue(ctx context.Context, db DBTX, limit int32) ([]GetMonthlyPaidRevenueRow, error) {
	rows, err := db.Query(ctx, getMonthlyPaidRevenue, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetMonthlyPaidRevenueRow
	for rows.Next() {
		var i GetMonthlyPaidRevenueRow
		if err := rows.Scan(&i.Month, &i.Revenue); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getTopPackagesByPaidRevenue = `-- name: GetTopPackagesByPaidRevenue :many
SELECT
    package_name,
    COUNT(*) AS invoice_count,
    COALESCE(SUM(total_amount), 0)::NUMERIC(14,2) AS revenue
FROM invoices
WHERE payment_status = 'paid'
GROUP BY package_name
ORDER BY revenue DESC
LIMIT $1
`

type GetTopPackagesByPaidRevenueRow struct {
	PackageName  string         `db:"package_name" json:"package_name"`
	InvoiceCount int64          `db:"invoice_count" json:"invoice_count"`
	Revenue      pgtype.Numeric `db:"revenue" json:"revenue"`
}

func (q *Queries) GetTopPackagesByPaidRevenue(ctx context.Context, db DBTX, limit int32) ([]GetTopPackagesByPaidRevenueRow, error) {
	rows, err := db.Query(ctx, getTopPackagesByPaidRevenue, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetTopPackagesByPaidRevenueRow
	for rows.Next() {
		var i GetTopPackagesByPaidRevenueRow
		if err := rows.Scan(&i.PackageName, &i.InvoiceCount, &i.Revenue); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRecentInvoices = `-- name: ListRecentInvoices :many
SELECT i.id, i.invoice_number, i.booking_id, i.invoice_date, i.customer_name, i.customer_email, i.package_name, i.package_price, i.tax, i.discount, i.total_amount, i.payment_status, i.created_at, i.updated_at,
    b.from_date AS booking_from_date,
    b.to_date AS booking_to_date
FROM invoices i
LEFT JOIN bookings b ON b.id = i.booking_id
ORDER BY i.created_at DESC
LIMIT $1
`

type ListRecentInvoicesRow struct {
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

func (q *Queries) ListRecentInvoices(ctx context.Context, db DBTX, limit int32) ([]ListRecentInvoicesRow, error) {
	rows, err := db.Query(ctx, listRecentInvoices, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRecentInvoicesRow
	for rows.Next() {
		var i ListRecentInvoicesRow
		if err := rows.Scan(
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
