package queries

import (
	"context"
	"log/slog"
	"time"

	"travel-backoffice/internal/domain/report"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/shared"
)

type ReportReadStore interface {
	FinancialSummary(ctx context.Context, r report.DateRange) (*report.FinancialSummary, error)
	InvoiceAnalysis(ctx context.Context, r report.DateRange, today time.Time) (*report.InvoiceAnalysis, error)
	CustomerReport(ctx context.Context, r report.DateRange) (*report.CustomerReport, error)
	PackagePerformance(ctx context.Context, r report.DateRange) (*report.PackagePerformance, error)
}

type ReportQueries interface {
	Generate(ctx context.Context, t report.Type, r report.DateRange) (*report.Result, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
	cache     shared.Cache
	clock     clock.Clock
	ttl       time.Duration
}

func NewReportQueries(readStore ReportReadStore, cache shared.Cache, clk clock.Clock, ttl time.Duration) ReportQueries {
	return &reportQueriesImpl{
		readStore: readStore,
		cache:     cache,
		clock:     clk,
		ttl:       ttl,
	}
}

// ReportCacheKey includes today because invoice ages move with the calendar.
func ReportCacheKey(t report.Type, r report.DateRange, today time.Time) string {
	const layout = "2006-01-02"
	return shared.CacheKeyReportPrefix + string(t) + ":" + r.Start.Format(layout) + ":" + r.End.Format(layout) + ":" + today.Format(layout)
}

func (q *reportQueriesImpl) Generate(ctx context.Context, t report.Type, r report.DateRange) (*report.Result, error) {
	if !t.IsValid() {
		return nil, errs.Mark(report.ErrUnknownType, errs.ErrValidation)
	}
	r = report.NewDateRange(r.Start, r.End)
	now := q.clock.Now()
	today := clock.DateOf(now)
	key := ReportCacheKey(t, r, today)

	var cached report.Result
	err := q.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errs.Is(err, shared.ErrCacheMiss) {
		slog.Warn("Report cache read failed", "key", key, "error", err.Error())
	}

	res := &report.Result{Type: t, Range: r, GeneratedAt: now}
	switch t {
	case report.TypeFinancialSummary:
		res.Financial, err = q.readStore.FinancialSummary(ctx, r)
	case report.TypeInvoiceAnalysis:
		res.Invoices, err = q.readStore.InvoiceAnalysis(ctx, r, today)
	case report.TypeCustomerReports:
		res.Customers, err = q.readStore.CustomerReport(ctx, r)
	case report.TypePackagePerformance:
		res.Packages, err = q.readStore.PackagePerformance(ctx, r)
	}
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "generate %s report", t), errs.ErrPersistence)
	}
	res.Charts = report.BuildCharts(res)

	if err := q.cache.Set(ctx, key, res, q.ttl); err != nil {
		slog.Warn("Report cache write failed", "key", key, "error", err.Error())
	}
	return res, nil
}
