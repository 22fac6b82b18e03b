package readstore

import (
	"context"
	"time"

	"travel-backoffice/internal/domain/report"
	"travel-backoffice/internal/infra"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
)

const reportTopN = 10

type ReportReadQueries interface {
	GetFinancialTotals(ctx context.Context, db sqlc.DBTX, arg sqlc.GetFinancialTotalsParams) (sqlc.GetFinancialTotalsRow, error)
	GetRevenueByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRevenueByStatusParams) ([]sqlc.GetRevenueByStatusRow, error)
	GetMonthlyPaidTrend(ctx context.Context, db sqlc.DBTX, arg sqlc.GetMonthlyPaidTrendParams) ([]sqlc.GetMonthlyPaidTrendRow, error)
	GetStatusDistribution(ctx context.Context, db sqlc.DBTX, arg sqlc.GetStatusDistributionParams) ([]sqlc.GetStatusDistributionRow, error)
	GetTopInvoices(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTopInvoicesParams) ([]sqlc.GetTopInvoicesRow, error)
	GetInvoiceAgeByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInvoiceAgeByStatusParams) ([]sqlc.GetInvoiceAgeByStatusRow, error)
	GetTopCustomers(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTopCustomersParams) ([]sqlc.GetTopCustomersRow, error)
	GetNewCustomersByMonth(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNewCustomersByMonthParams) ([]sqlc.GetNewCustomersByMonthRow, error)
	GetPackagePerformance(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPackagePerformanceParams) ([]sqlc.GetPackagePerformanceRow, error)
	GetPackageMonthlyTrend(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPackageMonthlyTrendParams) ([]sqlc.GetPackageMonthlyTrendRow, error)
}

type ReportReadStore struct {
	queries ReportReadQueries
	db      sqlc.DBTX
}

func NewReportReadStore(queries ReportReadQueries, db sqlc.DBTX) *ReportReadStore {
	return &ReportReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReportReadStore) FinancialSummary(ctx context.Context, rng report.DateRange) (*report.FinancialSummary, error) {
	start, end := pgconv.DateToPgtype(rng.Start), pgconv.DateToPgtype(rng.End)

	totals, err := r.queries.GetFinancialTotals(ctx, r.db, sqlc.GetFinancialTotalsParams{StartDate: start, EndDate: end})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get financial totals", err)
	}
	byStatus, err := r.queries.GetRevenueByStatus(ctx, r.db, sqlc.GetRevenueByStatusParams{StartDate: start, EndDate: end})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get revenue by status", err)
	}
	trend, err := r.queries.GetMonthlyPaidTrend(ctx, r.db, sqlc.GetMonthlyPaidTrendParams{StartDate: start, EndDate: end})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get monthly revenue trend", err)
	}

	statuses := make([]report.StatusTotal, 0, len(byStatus))
	for _, row := range byStatus {
		statuses = append(statuses, report.StatusTotal{
			Status: row.PaymentStatus,
			Count:  row.InvoiceCount,
			Amount: pgconv.DecimalFromNumeric(row.TotalAmount),
		})
	}
	months := make([]report.MonthlyRevenue, 0, len(trend))
	for _, row := range trend {
		months = append(months, report.MonthlyRevenue{
			Month:        row.Month,
			Revenue:      pgconv.DecimalFromNumeric(row.Revenue),
			InvoiceCount: row.InvoiceCount,
		})
	}

	return report.NewFinancialSummary(report.FinancialTotals{
		PaidRevenue:     pgconv.DecimalFromNumeric(totals.PaidRevenue),
		TotalInvoices:   totals.TotalInvoices,
		PaidInvoices:    totals.PaidInvoices,
		PendingInvoices: totals.PendingInvoices,
	}, statuses, months), nil
}

func (r *ReportReadStore) InvoiceAnalysis(ctx context.Context, rng report.DateRange, today time.Time) (*report.InvoiceAnalysis, error) {
	start, end := pgconv.DateToPgtype(rng.Start), pgconv.DateToPgtype(rng.End)

	dist, err := r.queries.GetStatusDistribution(ctx, r.db, sqlc.GetStatusDistributionParams{StartDate: start, EndDate: end})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get status distribution", err)
	}
	top, err := r.queries.GetTopInvoices(ctx, r.db, sqlc.GetTopInvoicesParams{StartDate: start, EndDate: end, Limit: reportTopN})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get top invoices", err)
	}
	ages, err := r.queries.GetInvoiceAgeByStatus(ctx, r.db, sqlc.GetInvoiceAgeByStatusParams{
		StartDate: start,
		EndDate:   end,
		Today:     pgconv.DateToPgtype(today),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get invoice age", err)
	}

	out := &report.InvoiceAnalysis{
		StatusDistribution: make([]report.StatusTotal, 0, len(dist)),
		TopInvoices:        make([]report.TopInvoice, 0, len(top)),
		InvoiceAge:         make([]report.StatusAge, 0, len(ages)),
	}
	for _, row := range dist {
		out.StatusDistribution = append(out.StatusDistribution, report.StatusTotal{
			Status: row.PaymentStatus,
			Count:  row.InvoiceCount,
			Amount: pgconv.DecimalFromNumeric(row.TotalAmount),
		})
	}
	for _, row := range top {
		out.TopInvoices = append(out.TopInvoices, report.TopInvoice{
			InvoiceNumber: row.InvoiceNumber,
			CustomerName:  row.CustomerName,
			PackageName:   row.PackageName,
			TotalAmount:   pgconv.DecimalFromNumeric(row.TotalAmount),
			InvoiceDate:   pgconv.DateFromPgtype(row.InvoiceDate),
			PaymentStatus: row.PaymentStatus,
		})
	}
	for _, row := range ages {
		out.InvoiceAge = append(out.InvoiceAge, report.StatusAge{
			Status:     row.PaymentStatus,
			AvgAgeDays: pgconv.DecimalFromNumeric(row.AvgAgeDays),
			Count:      row.InvoiceCount,
		})
	}
	return out, nil
}

func (r *ReportReadStore) CustomerReport(ctx context.Context, rng report.DateRange) (*report.CustomerReport, error) {
	start, end := pgconv.DateToPgtype(rng.Start), pgconv.DateToPgtype(rng.End)

	top, err := r.queries.GetTopCustomers(ctx, r.db, sqlc.GetTopCustomersParams{StartDate: start, EndDate: end, Limit: reportTopN})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get top customers", err)
	}
	fresh, err := r.queries.GetNewCustomersByMonth(ctx, r.db, sqlc.GetNewCustomersByMonthParams{StartDate: start, EndDate: end})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get new customers", err)
	}

	out := &report.CustomerReport{
		TopCustomers: make([]report.CustomerSpend, 0, len(top)),
		NewCustomers: make([]report.MonthlyCount, 0, len(fresh)),
	}
	for _, row := range top {
		out.TopCustomers = append(out.TopCustomers, report.CustomerSpend{
			CustomerName:    row.CustomerName,
			CustomerEmail:   row.CustomerEmail,
			InvoiceCount:    row.InvoiceCount,
			TotalSpent:      pgconv.DecimalFromNumeric(row.TotalSpent),
			AvgInvoiceValue: pgconv.DecimalFromNumeric(row.AvgInvoiceValue),
		})
	}
	for _, row := range fresh {
		out.NewCustomers = append(out.NewCustomers, report.MonthlyCount{Month: row.Month, Count: row.CustomerCount})
	}
	return out, nil
}

func (r *ReportReadStore) PackagePerformance(ctx context.Context, rng report.DateRange) (*report.PackagePerformance, error) {
	start, end := pgconv.DateToPgtype(rng.Start), pgconv.DateToPgtype(rng.End)

	perf, err := r.queries.GetPackagePerformance(ctx, r.db, sqlc.GetPackagePerformanceParams{StartDate: start, EndDate: end})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get package performance", err)
	}
	trend, err := r.queries.GetPackageMonthlyTrend(ctx, r.db, sqlc.GetPackageMonthlyTrendParams{StartDate: start, EndDate: end})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get package trend", err)
	}

	out := &report.PackagePerformance{
		Packages: make([]report.PackageRevenue, 0, len(perf)),
		Trend:    make([]report.PackageTrend, 0, len(trend)),
	}
	for _, row := range perf {
		out.Packages = append(out.Packages, report.PackageRevenue{
			PackageName:          row.PackageName,
			BookingsCount:        row.BookingsCount,
			TotalRevenue:         pgconv.DecimalFromNumeric(row.TotalRevenue),
			AvgRevenuePerBooking: pgconv.DecimalFromNumeric(row.AvgRevenue),
		})
	}
	for _, row := range trend {
		out.Trend = append(out.Trend, report.PackageTrend{
			PackageName: row.PackageName,
			Month:       row.Month,
			Count:       row.BookingsCount,
		})
	}
	return out, nil
}
