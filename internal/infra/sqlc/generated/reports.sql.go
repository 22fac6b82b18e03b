// source: reports.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getFinancialTotals = `-- name: GetFinancialTotals :one
SELECT
    COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0)::NUMERIC(14,2) AS paid_revenue,
    COUNT(*) AS total_invoices,
    COUNT(*) FILTER (WHERE payment_status = 'paid') AS paid_invoices,
    COUNT(*) FILTER (WHERE payment_status = 'pending') AS pending_invoices
FROM invoices
WHERE invoice_date BETWEEN $1 AND $2
`

type GetFinancialTotalsParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
}

type GetFinancialTotalsRow struct {
	PaidRevenue     pgtype.Numeric `db:"paid_revenue" json:"paid_revenue"`
	TotalInvoices   int64          `db:"total_invoices" json:"total_invoices"`
	PaidInvoices    int64          `db:"paid_invoices" json:"paid_invoices"`
	PendingInvoices int64          `db:"pending_invoices" json:"pending_invoices"`
}

func (q *Queries) GetFinancialTotals(ctx context.Context, db DBTX, arg GetFinancialTotalsParams) (GetFinancialTotalsRow, error) {
	row := db.QueryRow(ctx, getFinancialTotals, arg.StartDate, arg.EndDate)
	var i GetFinancialTotalsRow
	err := row.Scan(
		&i.PaidRevenue,
		&i.TotalInvoices,
		&i.PaidInvoices,
		&i.PendingInvoices,
	)
	return i, err
}

const getRevenueByStatus = `-- name: GetRevenueByStatus :many
SELECT
    payment_status,
    COUNT(*) AS invoice_count,
    COALESCE(SUM(total_amount), 0)::NUMERIC(14,2) AS total_amount
FROM invoices
WHERE invoice_date BETWEEN $1 AND $2
GROUP BY payment_status
ORDER BY payment_status
`

type GetRevenueByStatusParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
}

type GetRevenueByStatusRow struct {
	PaymentStatus string         `db:"payment_status" json:"payment_status"`
	InvoiceCount  int64          `db:"invoice_count" json:"invoice_count"`
	TotalAmount   pgtype.Numeric `db:"total_amount" json:"total_amount"`
}

func (q *Queries) GetRevenueByStatus(ctx context.Context, db DBTX, arg GetRevenueByStatusParams) ([]GetRevenueByStatusRow, error) {
	rows, err := db.Query(ctx, getRevenueByStatus, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetRevenueByStatusRow
	for rows.Next() {
		var i GetRevenueByStatusRow
		if err := rows.Scan(
			&i.PaymentStatus,
			&i.InvoiceCount,
			&i.TotalAmount,
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

const getMonthlyPaidTrend = `-- name: GetMonthlyPaidTrend :many
SELECT
    to_char(invoice_date, 'YYYY-MM') AS month,
    COALESCE(SUM(total_amount), 0)::NUMERIC(14,2) AS revenue,
    COUNT(*) AS invoice_count
FROM invoices
WHERE invoice_date BETWEEN $1 AND $2 AND payment_status = 'paid'
GROUP BY to_char(invoice_date, 'YYYY-MM')
ORDER BY month
`

type GetMonthlyPaidTrendParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
}

type GetMonthlyPaidTrendRow struct {
	Month        string         `db:"month" json:"month"`
	Revenue      pgtype.Numeric `db:"revenue" json:"revenue"`
	InvoiceCount int64          `db:"invoice_count" json:"invoice_count"`
}

func (q *Queries) GetMonthlyPaidTrend(ctx context.Context, db DBTX, arg GetMonthlyPaidTrendParams) ([]GetMonthlyPaidTrendRow, error) {
	rows, err := db.Query(ctx, getMonthlyPaidTrend, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetMonthlyPaidTrendRow
	for rows.Next() {
		var i GetMonthlyPaidTrendRow
		if err := rows.Scan(
			&i.Month,
			&i.Revenue,
			&i.InvoiceCount,
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

const getStatusDistribution = `-- name: GetStatusDistribution :many
SELECT
    payment_status,
    COUNT(*) AS invoice_count,
    COALESCE(SUM(total_amount), 0)::NUMERIC(14,2) AS total_amount
FROM invoices
WHERE invoice_date BETWEEN $1 AND $2
GROUP BY payment_status
ORDER BY invoice_count DESC, payment_status
`

type GetStatusDistributionParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
}

type GetStatusDistributionRow struct {
	PaymentStatus string         `db:"payment_status" json:"payment_status"`
	InvoiceCount  int64          `db:"invoice_count" json:"invoice_count"`
	TotalAmount   pgtype.Numeric `db:"total_amount" json:"total_amount"`
}

func (q *Queries) GetStatusDistribution(ctx context.Context, db DBTX, arg GetStatusDistributionParams) ([]GetStatusDistributionRow, error) {
	rows, err := db.Query(ctx, getStatusDistribution, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetStatusDistributionRow
	for rows.Next() {
		var i GetStatusDistributionRow
		if err := rows.Scan(
			&i.PaymentStatus,
			&i.InvoiceCount,
			&i.TotalAmount,
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

const getTopInvoices = `-- name: GetTopInvoices :many
SELECT invoice_number, customer_name, package_name, total_amount, invoice_date, payment_status
FROM invoices
WHERE invoice_date BETWEEN $1 AND $2
ORDER BY total_amount DESC
LIMIT $3
`

type GetTopInvoicesParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
	Limit     int32       `db:"limit" json:"limit"`
}

type GetTopInvoicesRow struct {
	InvoiceNumber string         `db:"invoice_number" json:"invoice_number"`
	CustomerName  string         `db:"customer_name" json:"customer_name"`
	PackageName   string         `db:"package_name" json:"package_name"`
	TotalAmount   pgtype.Numeric `db:"total_amount" json:"total_amount"`
	InvoiceDate   pgtype.Date    `db:"invoice_date" json:"invoice_date"`
	PaymentStatus string         `db:"payment_status" json:"payment_status"`
}

func (q *Queries) GetTopInvoices(ctx context.Context, db DBTX, arg GetTopInvoicesParams) ([]GetTopInvoicesRow, error) {
	rows, err := db.Query(ctx, getTopInvoices, arg.StartDate, arg.EndDate, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetTopInvoicesRow
	for rows.Next() {
		var i GetTopInvoicesRow
		if err := rows.Scan(
			&i.InvoiceNumber,
			&i.CustomerName,
			&i.PackageName,
			&i.TotalAmount,
			&i.InvoiceDate,
			&i.PaymentStatus,
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

const getInvoiceAgeByStatus = `-- name: GetInvoiceAgeByStatus :many
SELECT
    payment_status,
    AVG($3::date - invoice_date)::NUMERIC(10,2) AS avg_age_days,
    COUNT(*) AS invoice_count
FROM invoices
WHERE invoice_date BETWEEN $1 AND $2
GROUP BY payment_status
ORDER BY payment_status
`

type GetInvoiceAgeByStatusParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
	Today     pgtype.Date `db:"today" json:"today"`
}

type GetInvoiceAgeByStatusRow struct {
	PaymentStatus string         `db:"payment_status" json:"payment_status"`
	AvgAgeDays    pgtype.Numeric `db:"avg_age_days" json:"avg_age_days"`
	InvoiceCount  int64          `db:"invoice_count" json:"invoice_count"`
}

func (q *Queries) GetInvoiceAgeByStatus(ctx context.Context, db DBTX, arg GetInvoiceAgeByStatusParams) ([]GetInvoiceAgeByStatusRow, error) {
	rows, err := db.Query(ctx, getInvoiceAgeByStatus, arg.StartDate, arg.EndDate, arg.Today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetInvoiceAgeByStatusRow
	for rows.Next() {
		var i GetInvoiceAgeByStatusRow
		if err := rows.Scan(
			&i.PaymentStatus,
			&i.AvgAgeDays,
			&i.InvoiceCount,
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

const getTopCustomers = `-- name: GetTopCustomers :many
SELECT
    customer_name,
    customer_email,
    COUNT(*) AS invoice_count,
    COALESCE(SUM(total_amount), 0)::NUMERIC(14,2) AS total_spent,
    COALESCE(AVG(total_amount), 0)::NUMERIC(14,2) AS avg_invoice_value
FROM invoices
WHERE invoice_date BETWEEN $1 AND $2
GROUP BY customer_email, customer_name
ORDER BY total_spent DESC
LIMIT $3
`

type GetTopCustomersParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
	Limit     int32       `db:"limit" json:"limit"`
}

type GetTopCustomersRow struct {
	CustomerName    string         `db:"customer_name" json:"customer_name"`
	CustomerEmail   string         `db:"customer_email" json:"customer_email"`
	InvoiceCount    int64          `db:"invoice_count" json:"invoice_count"`
	TotalSpent      pgtype.Numeric `db:"total_spent" json:"total_spent"`
	AvgInvoiceValue pgtype.Numeric `db:"avg_invoice_value" json:"avg_invoice_value"`
}

func (q *Queries) GetTopCustomers(ctx context.Context, db DBTX, arg GetTopCustomersParams) ([]GetTopCustomersRow, error) {
	rows, err := db.Query(ctx, getTopCustomers, arg.StartDate, arg.EndDate, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetTopCustomersRow
	for rows.Next() {
		var i GetTopCustomersRow
		if err := rows.Scan(
			&i.CustomerName,
			&i.CustomerEmail,
			&i.InvoiceCount,
			&i.TotalSpent,
			&i.AvgInvoiceValue,
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

const getNewCustomersByMonth = `-- name: GetNewCustomersByMonth :many
SELECT
    to_char(first_purchase, 'YYYY-MM') AS month,
    COUNT(*) AS customer_count
FROM (
    SELECT customer_email, MIN(invoice_date) AS first_purchase
    FROM invoices
    GROUP BY customer_email
) firsts
WHERE first_purchase BETWEEN $1 AND $2
GROUP BY to_char(first_purchase, 'YYYY-MM')
ORDER BY month
`

type GetNewCustomersByMonthParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
}

type GetNewCustomersByMonthRow struct {
	Month         string `db:"month" json:"month"`
	CustomerCount int64  `db:"customer_count" json:"customer_count"`
}

func (q *Queries) GetNewCustomersByMonth(ctx context.Context, db DBTX, arg GetNewCustomersByMonthParams) ([]GetNewCustomersByMonthRow, error) {
	rows, err := db.Query(ctx, getNewCustomersByMonth, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetNewCustomersByMonthRow
	for rows.Next() {
		var i GetNewCustomersByMonthRow
		if err := rows.Scan(
			&i.Month,
			&i.CustomerCount,
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

const getPackagePerformance = `-- name: GetPackagePerformance :many
SELECT
    package_name,
    COUNT(*) AS bookings_count,
    COALESCE(SUM(total_amount), 0)::NUMERIC(14,2) AS total_revenue,
    COALESCE(AVG(total_amount), 0)::NUMERIC(14,2) AS avg_revenue
FROM invoices
WHERE invoice_date BETWEEN $1 AND $2
GROUP BY package_name
ORDER BY total_revenue DESC
`

type GetPackagePerformanceParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
}

type GetPackagePerformanceRow struct {
	PackageName   string         `db:"package_name" json:"package_name"`
	BookingsCount int64          `db:"bookings_count" json:"bookings_count"`
	TotalRevenue  pgtype.Numeric `db:"total_revenue" json:"total_revenue"`
	AvgRevenue    pgtype.Numeric `db:"avg_revenue" json:"avg_revenue"`
}

func (q *Queries) GetPackagePerformance(ctx context.Context, db DBTX, arg GetPackagePerformanceParams) ([]GetPackagePerformanceRow, error) {
	rows, err := db.Query(ctx, getPackagePerformance, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetPackagePerformanceRow
	for rows.Next() {
		var i GetPackagePerformanceRow
		if err := rows.Scan(
			&i.PackageName,
			&i.BookingsCount,
			&i.TotalRevenue,
			&i.AvgRevenue,
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

const getPackageMonthlyTrend = `-- name: GetPackageMonthlyTrend :many
SELECT
    package_name,
    to_char(invoice_date, 'YYYY-MM') AS month,
    COUNT(*) AS bookings_count
FROM invoices
WHERE invoice_date BETWEEN $1 AND $2
GROUP BY package_name, to_char(invoice_date, 'YYYY-MM')
ORDER BY month, bookings_count DESC
`

type GetPackageMonthlyTrendParams struct {
	StartDate pgtype.Date `db:"start_date" json:"start_date"`
	EndDate   pgtype.Date `db:"end_date" json:"end_date"`
}

type GetPackageMonthlyTrendRow struct {
	PackageName   string `db:"package_name" json:"package_name"`
	Month         string `db:"month" json:"month"`
	BookingsCount int64  `db:"bookings_count" json:"bookings_count"`
}

func (q *Queries) GetPackageMonthlyTrend(ctx context.Context, db DBTX, arg GetPackageMonthlyTrendParams) ([]GetPackageMonthlyTrendRow, error) {
	rows, err := db.Query(ctx, getPackageMonthlyTrend, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetPackageMonthlyTrendRow
	for rows.Next() {
		var i GetPackageMonthlyTrendRow
		if err := rows.Scan(
			&i.PackageName,
			&i.Month,
			&i.BookingsCount,
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
