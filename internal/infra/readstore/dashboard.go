package readstore

import (
	"context"
	"slices"
	"time"

	"travel-backoffice/internal/infra"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
	"travel-backoffice/internal/usecase/queries"
)

type DashboardReadQueries interface {
	GetDashboardTotals(ctx context.Context, db sqlc.DBTX) (sqlc.GetDashboardTotalsRow, error)
	GetInvoicesCreatedBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInvoicesCreatedBetweenParams) (sqlc.GetInvoicesCreatedBetweenRow, error)
	ListRecentInvoices(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListRecentInvoicesRow, error)
	GetMonthlyPaidRevenue(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.GetMonthlyPaidRevenueRow, error)
	GetTopPackagesByPaidRevenue(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.GetTopPackagesByPaidRevenueRow, error)
}

type DashboardReadStore struct {
	queries DashboardReadQueries
	db      sqlc.DBTX
}

func NewDashboardReadStore(queries DashboardReadQueries, db sqlc.DBTX) *DashboardReadStore {
	return &DashboardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DashboardReadStore) Totals(ctx context.Context) (*queries.DashboardTotals, error) {
	row, err := r.queries.GetDashboardTotals(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get dashboard totals", err)
	}
	return &queries.DashboardTotals{
		TotalInvoices:   row.TotalInvoices,
		PaidInvoices:    row.PaidInvoices,
		PendingInvoices: row.PendingInvoices,
		PaidRevenue:     pgconv.DecimalFromNumeric(row.PaidRevenue),
	}, nil
}

func (r *DashboardReadStore) ActivityBetween(ctx context.Context, start, end time.Time) (*queries.DailyActivity, error) {
	row, err := r.queries.GetInvoicesCreatedBetween(ctx, r.db, sqlc.GetInvoicesCreatedBetweenParams{
		StartAt: pgconv.TimeToPgtype(start),
		EndAt:   pgconv.TimeToPgtype(end),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get invoice activity", err)
	}
	return &queries.DailyActivity{
		InvoiceCount: row.InvoiceCount,
		PaidRevenue:  pgconv.DecimalFromNumeric(row.PaidRevenue),
	}, nil
}

func (r *DashboardReadStore) RecentInvoices(ctx context.Context, limit int) ([]*queries.InvoiceView, error) {
	rows, err := r.queries.ListRecentInvoices(ctx, r.db, pgconv.IntToInt32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent invoices", err)
	}
	views := make([]*queries.InvoiceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toInvoiceView(sqlc.GetInvoiceViewRow(row)))
	}
	return views, nil
}

// MonthlyPaidRevenue reverses the newest-first rows into chronological order.
func (r *DashboardReadStore) MonthlyPaidRevenue(ctx context.Context, months int) ([]*queries.MonthRevenue, error) {
	rows, err := r.queries.GetMonthlyPaidRevenue(ctx, r.db, pgconv.IntToInt32(months))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get monthly paid revenue", err)
	}
	out := make([]*queries.MonthRevenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.MonthRevenue{Month: row.Month, Revenue: pgconv.DecimalFromNumeric(row.Revenue)})
	}
	slices.Reverse(out)
	return out, nil
}

func (r *DashboardReadStore) TopPackages(ctx context.Context, limit int) ([]*queries.PackageRevenue, error) {
	rows, err := r.queries.GetTopPackagesByPaidRevenue(ctx, r.db, pgconv.IntToInt32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get top packages", err)
	}
	out := make([]*queries.PackageRevenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.PackageRevenue{
			PackageName:  row.PackageName,
			InvoiceCount: row.InvoiceCount,
			Revenue:      pgconv.DecimalFromNumeric(row.Revenue),
		})
	}
	return out, nil
}
