package queries

import (
	"context"
	"time"

	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const (
	dashboardRecentInvoices = 5
	dashboardRevenueMonths  = 12
	dashboardTopPackages    = 5
)

type DashboardReadStore interface {
	Totals(ctx context.Context) (*DashboardTotals, error)
	ActivityBetween(ctx context.Context, start, end time.Time) (*DailyActivity, error)
	RecentInvoices(ctx context.Context, limit int) ([]*InvoiceView, error)
	// MonthlyPaidRevenue returns the latest months that have paid invoices, oldest first.
	MonthlyPaidRevenue(ctx context.Context, months int) ([]*MonthRevenue, error)
	TopPackages(ctx context.Context, limit int) ([]*PackageRevenue, error)
}

type DashboardQueries interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
	clock     clock.Clock
}

func NewDashboardQueries(readStore DashboardReadStore, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore, clock: clk}
}

func (q *dashboardQueriesImpl) Summary(ctx context.Context) (*DashboardSummary, error) {
	var (
		totals   *DashboardTotals
		today    *DailyActivity
		recent   []*InvoiceView
		monthly  []*MonthRevenue
		packages []*PackageRevenue
	)
	start := clock.Today(q.clock)
	end := start.AddDate(0, 0, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = q.readStore.Totals(gctx)
		return err
	})
	g.Go(func() (err error) {
		today, err = q.readStore.ActivityBetween(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		recent, err = q.readStore.RecentInvoices(gctx, dashboardRecentInvoices)
		return err
	})
	g.Go(func() (err error) {
		monthly, err = q.readStore.MonthlyPaidRevenue(gctx, dashboardRevenueMonths)
		return err
	})
	g.Go(func() (err error) {
		packages, err = q.readStore.TopPackages(gctx, dashboardTopPackages)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load dashboard"), errs.ErrPersistence)
	}

	if recent == nil {
		recent = []*InvoiceView{}
	}
	if monthly == nil {
		monthly = []*MonthRevenue{}
	}
	if packages == nil {
		packages = []*PackageRevenue{}
	}
	return &DashboardSummary{
		DashboardTotals: *totals,
		Today:           *today,
		RecentInvoices:  recent,
		MonthlyRevenue:  monthly,
		TopPackages:     packages,
	}, nil
}
