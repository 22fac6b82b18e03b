//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/filter"
	"travel-backoffice/internal/infra/readstore"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/tests/common/builder"
	readstoremock "travel-backoffice/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bookingRow := builder.NewBookingBuilder().BuildInfra()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found with invoice count",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), int64(42)).Return(sqlc.GetBookingViewRow{
					ID:           bookingRow.ID,
					UserEmail:    bookingRow.UserEmail,
					PackageID:    bookingRow.PackageID,
					PackageName:  bookingRow.PackageName,
					FromDate:     bookingRow.FromDate,
					ToDate:       bookingRow.ToDate,
					Status:       bookingRow.Status,
					CreatedAt:    bookingRow.CreatedAt,
					UpdatedAt:    bookingRow.UpdatedAt,
					InvoiceCount: 1,
				}, nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), int64(42)).Return(sqlc.GetBookingViewRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), int64(42)).Return(sqlc.GetBookingViewRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, actualError := store.FindByID(ctx, 42)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, int64(42), result.ID)
				assert.Equal(t, int64(1), result.InvoiceCount)
				assert.Equal(t, 1, result.PackageID)
				assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), result.ToDate)
			}
		})
	}
}

// =============================================================================
// List / Count Tests
// =============================================================================

func TestBookingReadStore_List(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		criteria     filter.Criteria
		page         filter.Page
		expectedSQL  string
		expectedArgs []any
	}{
		{
			name:         "no criteria: only paging parameters",
			page:         filter.Page{Limit: 50, Offset: 0},
			expectedSQL:  "FROM bookings b ORDER BY b.created_at DESC LIMIT $1 OFFSET $2",
			expectedArgs: []any{50, 0},
		},
		{
			name:     "search, status and start date",
			criteria: filter.Criteria{Search: "bali", Status: "confirmed", FromDate: &from},
			page:     filter.Page{Limit: 20, Offset: 40},
			expectedSQL: "FROM bookings b WHERE (b.user_email ILIKE $1 OR b.package_name ILIKE $1)" +
				" AND b.status = $2 AND b.from_date >= $3 ORDER BY b.created_at DESC LIMIT $4 OFFSET $5",
			expectedArgs: []any{"%bali%", "confirmed", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 20, 40},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := &recordingDBTX{queryErr: errDBConnectionLost}
			store := readstore.NewBookingReadStore(readstoremock.NewMockBookingReadQueries(ctrl), db)

			result, err := store.List(ctx, tc.criteria, tc.page)

			assert.Nil(t, result)
			assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			assert.Contains(t, db.sql, tc.expectedSQL)
			assert.Equal(t, tc.expectedArgs, db.args)
		})
	}
}

func TestBookingReadStore_Count(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := &recordingDBTX{row: fakeRow{values: []any{int64(3)}}}
	store := readstore.NewBookingReadStore(readstoremock.NewMockBookingReadQueries(ctrl), db)

	total, err := store.Count(ctx, filter.Criteria{Status: "pending"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "SELECT COUNT(*) FROM bookings b WHERE b.status = $1", db.sql)
	assert.Equal(t, []any{"pending"}, db.args)
}

func TestBookingReadStore_Stats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
	mockQueries.EXPECT().GetBookingStats(ctx, gomock.Any()).Return(sqlc.GetBookingStatsRow{
		Total: 10, Confirmed: 6, Pending: 3, Cancelled: 1, WithInvoices: 4,
	}, nil)
	store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

	stats, err := store.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(4), stats.WithInvoices)
}

// =============================================================================
// Test doubles
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

// recordingDBTX captures the SQL and arguments of the dynamic listing queries.
type recordingDBTX struct {
	sql      string
	args     []any
	queryErr error
	row      fakeRow
}

func (d *recordingDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (d *recordingDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.sql, d.args = sql, args
	return nil, d.queryErr
}

func (d *recordingDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	d.sql, d.args = sql, args
	return d.row
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		default:
			return errors.New("fakeRow: unsupported destination")
		}
	}
	return nil
}

var _ sqlc.DBTX = (*recordingDBTX)(nil)
