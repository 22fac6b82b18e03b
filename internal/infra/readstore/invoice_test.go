//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/filter"
	"travel-backoffice/internal/infra/readstore"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/tests/common/builder"
	readstoremock "travel-backoffice/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInvoiceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	inv := builder.NewInvoiceBuilder().WithPrice("999.99", "8.5", "50").BuildInfra()

	testCases := []struct {
		name          string
		row           sqlc.GetInvoiceViewRow
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: manual invoice without booking",
			row: sqlc.GetInvoiceViewRow{
				ID:            inv.ID,
				InvoiceNumber: inv.InvoiceNumber,
				InvoiceDate:   inv.InvoiceDate,
				CustomerName:  inv.CustomerName,
				CustomerEmail: inv.CustomerEmail,
				PackageName:   inv.PackageName,
				PackagePrice:  inv.PackagePrice,
				Tax:           inv.Tax,
				Discount:      inv.Discount,
				TotalAmount:   inv.TotalAmount,
				PaymentStatus: inv.PaymentStatus,
				CreatedAt:     inv.CreatedAt,
				UpdatedAt:     inv.UpdatedAt,
			},
		},
		{name: "error: invoice not found", queryErr: pgx.ErrNoRows, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error", queryErr: errDBConnectionLost, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockInvoiceReadQueries(ctrl)
			store := readstore.NewInvoiceReadStore(mockQueries, &mockDBTX{})
			mockQueries.EXPECT().GetInvoiceView(ctx, gomock.Any(), int64(7)).Return(tc.row, tc.queryErr)

			result, err := store.FindByID(ctx, 7)

			if tc.expectedError {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, result.BookingID)
			assert.Nil(t, result.BookingFromDate)
			assert.Equal(t, "85.00", result.TaxAmount.StringFixed(2))
			assert.Equal(t, "1034.99", result.TotalAmount.StringFixed(2))
		})
	}
}

func TestInvoiceReadStore_ListUsesInvoiceDateForBothBounds(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	db := &recordingDBTX{queryErr: errDBConnectionLost}
	store := readstore.NewInvoiceReadStore(readstoremock.NewMockInvoiceReadQueries(ctrl), db)

	_, err := store.List(ctx, filter.Criteria{Search: "50%_off", FromDate: &from, ToDate: &to}, filter.Page{Limit: 10})

	require.Error(t, err)
	assert.Contains(t, db.sql, "LEFT JOIN bookings b ON b.id = i.booking_id WHERE "+
		"(i.customer_name ILIKE $1 OR i.customer_email ILIKE $1 OR i.package_name ILIKE $1)"+
		" AND i.invoice_date >= $2 AND i.invoice_date <= $3 ORDER BY i.created_at DESC LIMIT $4 OFFSET $5")
	assert.Equal(t, []any{`%50\%\_off%`, from, to, 10, 0}, db.args)
}

func TestInvoiceReadStore_Stats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockInvoiceReadQueries(ctrl)
	mockQueries.EXPECT().GetInvoiceStats(ctx, gomock.Any()).Return(sqlc.GetInvoiceStatsRow{
		Total: 3, TotalRevenue: numeric("2500.00"), Paid: 1, Pending: 1, Overdue: 1,
	}, nil)
	store := readstore.NewInvoiceReadStore(mockQueries, &mockDBTX{})

	stats, err := store.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, "2500.00", stats.TotalRevenue.StringFixed(2))
	assert.Equal(t, int64(1), stats.Overdue)
}
