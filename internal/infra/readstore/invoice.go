package readstore

import (
	"context"
	"fmt"

	"travel-backoffice/internal/domain/invoice"
	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/filter"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
	"travel-backoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const invoiceListSelect = `SELECT i.id, i.invoice_number, i.booking_id, i.invoice_date, i.customer_name, i.customer_email, i.package_name, i.package_price, i.tax, i.discount, i.total_amount, i.payment_status, i.created_at, i.updated_at,
    b.from_date AS booking_from_date,
    b.to_date AS booking_to_date
FROM invoices i
LEFT JOIN bookings b ON b.id = i.booking_id`

type InvoiceReadQueries interface {
	GetInvoiceView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetInvoiceViewRow, error)
	GetInvoiceStats(ctx context.Context, db sqlc.DBTX) (sqlc.GetInvoiceStatsRow, error)
}

type InvoiceReadStore struct {
	queries InvoiceReadQueries
	db      sqlc.DBTX
}

func NewInvoiceReadStore(queries InvoiceReadQueries, db sqlc.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id int64) (*queries.InvoiceView, error) {
	row, err := r.queries.GetInvoiceView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get invoice view by id", err)
	}
	return toInvoiceView(row), nil
}

func (r *InvoiceReadStore) List(ctx context.Context, c filter.Criteria, p filter.Page) ([]*queries.InvoiceView, error) {
	pred := filter.NewBuilder(filter.InvoiceColumns, 0).Build(c)
	n := pred.Next(0)
	query := fmt.Sprintf("%s%s ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d", invoiceListSelect, pred.Where(), n, n+1)
	args := make([]any, 0, len(pred.Args)+2)
	args = append(args, pred.Args...)
	args = append(args, p.Limit, p.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[sqlc.GetInvoiceViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan invoices", err)
	}

	views := make([]*queries.InvoiceView, 0, len(items))
	for _, row := range items {
		views = append(views, toInvoiceView(row))
	}
	return views, nil
}

func (r *InvoiceReadStore) Count(ctx context.Context, c filter.Criteria) (int64, error) {
	pred := filter.NewBuilder(filter.InvoiceColumns, 0).Build(c)
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM invoices i"+pred.Where(), pred.Args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count invoices", err)
	}
	return total, nil
}

func (r *InvoiceReadStore) Stats(ctx context.Context) (*queries.InvoiceStats, error) {
	row, err := r.queries.GetInvoiceStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get invoice stats", err)
	}
	return &queries.InvoiceStats{
		Total:        row.Total,
		TotalRevenue: pgconv.DecimalFromNumeric(row.TotalRevenue),
		Paid:         row.Paid,
		Pending:      row.Pending,
		Overdue:      row.Overdue,
	}, nil
}

func toInvoiceView(row sqlc.GetInvoiceViewRow) *queries.InvoiceView {
	price := pgconv.DecimalFromNumeric(row.PackagePrice)
	rate := pgconv.DecimalFromNumeric(row.Tax)
	return &queries.InvoiceView{
		ID:              row.ID,
		InvoiceNumber:   row.InvoiceNumber,
		BookingID:       pgconv.Int64PtrFromPgtype(row.BookingID),
		InvoiceDate:     pgconv.DateFromPgtype(row.InvoiceDate),
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.CustomerEmail,
		PackageName:     row.PackageName,
		PackagePrice:    price,
		TaxRate:         rate,
		TaxAmount:       invoice.TaxAmount(price, rate),
		Discount:        pgconv.DecimalFromNumeric(row.Discount),
		TotalAmount:     pgconv.DecimalFromNumeric(row.TotalAmount),
		PaymentStatus:   row.PaymentStatus,
		BookingFromDate: pgconv.DatePtrFromPgtype(row.BookingFromDate),
		BookingToDate:   pgconv.DatePtrFromPgtype(row.BookingToDate),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
