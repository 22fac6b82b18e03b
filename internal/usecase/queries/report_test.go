//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"travel-backoffice/internal/domain/report"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/queries"
	"travel-backoffice/internal/usecase/shared"
	queriesmock "travel-backoffice/tests/mock/queries"
	sharedmock "travel-backoffice/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	reportNow   = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	reportToday = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	marchRange  = report.NewDateRange(
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	)
)

func TestReportCacheKey(t *testing.T) {
	key := queries.ReportCacheKey(report.TypeInvoiceAnalysis, marchRange, reportToday)
	assert.Equal(t, "report:invoice_analysis:2025-03-01:2025-03-31:2025-03-14", key)
}

func TestReportQueries_Generate(t *testing.T) {
	ctx := context.Background()
	key := queries.ReportCacheKey(report.TypeFinancialSummary, marchRange, reportToday)

	t.Run("rejects an unknown report type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewReportQueries(queriesmock.NewMockReportReadStore(ctrl), sharedmock.NewMockCache(ctrl), clock.NewMockClock(reportNow), time.Minute)

		_, err := q.Generate(ctx, report.Type("tax_audit"), marchRange)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReportReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), key, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*report.Result) = report.Result{Type: report.TypeFinancialSummary, Range: marchRange}
				return nil
			})

		q := queries.NewReportQueries(store, cache, clock.NewMockClock(reportNow), time.Minute)
		res, err := q.Generate(ctx, report.TypeFinancialSummary, marchRange)

		require.NoError(t, err)
		assert.Equal(t, report.TypeFinancialSummary, res.Type)
		assert.Nil(t, res.Financial)
	})

	t.Run("cache miss queries the store and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReportReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		summary := report.NewFinancialSummary(report.FinancialTotals{
			PaidRevenue:   decimal.RequireFromString("2640.00"),
			TotalInvoices: 3,
			PaidInvoices:  2,
		}, []report.StatusTotal{{Status: "paid", Count: 2, Amount: decimal.RequireFromString("2640.00")}},
			[]report.MonthlyRevenue{{Month: "2025-03", Revenue: decimal.RequireFromString("2640.00"), InvoiceCount: 2}})

		cache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(shared.ErrCacheMiss)
		store.EXPECT().FinancialSummary(gomock.Any(), marchRange).Return(summary, nil)
		cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), 2*time.Minute).
			DoAndReturn(func(_ context.Context, _ string, value any, _ time.Duration) error {
				res := value.(*report.Result)
				assert.Same(t, summary, res.Financial)
				return nil
			})

		q := queries.NewReportQueries(store, cache, clock.NewMockClock(reportNow), 2*time.Minute)
		res, err := q.Generate(ctx, report.TypeFinancialSummary, marchRange)

		require.NoError(t, err)
		assert.Equal(t, reportNow, res.GeneratedAt)
		require.Len(t, res.Charts, 2)
		assert.Equal(t, []string{"Mar 2025"}, res.Charts[0].Labels)
		assert.Equal(t, []string{"Paid"}, res.Charts[1].Labels)
	})

	t.Run("swapped range is normalized before use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReportReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(shared.ErrCacheMiss)
		store.EXPECT().InvoiceAnalysis(gomock.Any(), marchRange, reportToday).Return(&report.InvoiceAnalysis{}, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		q := queries.NewReportQueries(store, cache, clock.NewMockClock(reportNow), time.Minute)
		_, err := q.Generate(ctx, report.TypeInvoiceAnalysis, report.DateRange{Start: marchRange.End, End: marchRange.Start})

		require.NoError(t, err)
	})

	t.Run("cache failures do not fail the report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReportReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("connection refused"))
		store.EXPECT().PackagePerformance(gomock.Any(), marchRange).Return(&report.PackagePerformance{}, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("connection refused"))

		q := queries.NewReportQueries(store, cache, clock.NewMockClock(reportNow), time.Minute)
		res, err := q.Generate(ctx, report.TypePackagePerformance, marchRange)

		require.NoError(t, err)
		assert.NotNil(t, res.Packages)
	})

	t.Run("store failure is a persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReportReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(shared.ErrCacheMiss)
		store.EXPECT().CustomerReport(gomock.Any(), marchRange).Return(nil, errs.New("connection lost"))

		q := queries.NewReportQueries(store, cache, clock.NewMockClock(reportNow), time.Minute)
		_, err := q.Generate(ctx, report.TypeCustomerReports, marchRange)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPersistence))
		assert.Contains(t, err.Error(), "customer_reports")
	})
}
