package readstore

import (
	"context"
	"fmt"

	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/filter"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
	"travel-backoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const bookingListSelect = `SELECT b.id, b.user_email, b.package_id, b.package_name, b.from_date, b.to_date, b.status, b.created_at, b.updated_at,
    (SELECT COUNT(*) FROM invoices i WHERE i.booking_id = b.id) AS invoice_count
FROM bookings b`

type BookingReadQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingViewRow, error)
	GetBookingStats(ctx context.Context, db sqlc.DBTX) (sqlc.GetBookingStatsRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

// List applies the filter predicate and pages newest first.
func (r *BookingReadStore) List(ctx context.Context, c filter.Criteria, p filter.Page) ([]*queries.BookingView, error) {
	pred := filter.NewBuilder(filter.BookingColumns, 0).Build(c)
	n := pred.Next(0)
	query := fmt.Sprintf("%s%s ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d", bookingListSelect, pred.Where(), n, n+1)
	args := make([]any, 0, len(pred.Args)+2)
	args = append(args, pred.Args...)
	args = append(args, p.Limit, p.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[sqlc.GetBookingViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(items))
	for _, row := range items {
		views = append(views, toBookingView(row))
	}
	return views, nil
}

func (r *BookingReadStore) Count(ctx context.Context, c filter.Criteria) (int64, error) {
	pred := filter.NewBuilder(filter.BookingColumns, 0).Build(c)
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM bookings b"+pred.Where(), pred.Args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return total, nil
}

func (r *BookingReadStore) Stats(ctx context.Context) (*queries.BookingStats, error) {
	row, err := r.queries.GetBookingStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking stats", err)
	}
	return &queries.BookingStats{
		Total:        row.Total,
		Confirmed:    row.Confirmed,
		Pending:      row.Pending,
		Cancelled:    row.Cancelled,
		WithInvoices: row.WithInvoices,
	}, nil
}

func toBookingView(row sqlc.GetBookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:           row.ID,
		UserEmail:    row.UserEmail,
		PackageID:    int(row.PackageID),
		PackageName:  row.PackageName,
		FromDate:     pgconv.DateFromPgtype(row.FromDate),
		ToDate:       pgconv.DateFromPgtype(row.ToDate),
		Status:       row.Status,
		InvoiceCount: row.InvoiceCount,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
