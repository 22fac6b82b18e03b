//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/repository"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/tests/common/builder"
	repositorymock "travel-backoffice/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnection = errors.New("database connection error")

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedID    int64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
						assert.Equal(t, "jane.doe@example.com", arg.UserEmail)
						assert.Equal(t, int32(1), arg.PackageID)
						assert.Equal(t, "confirmed", arg.Status)
						return sqlc.Bookings{ID: 101}, nil
					})
			},
			expectedID: 101,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			id, actualError := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Zero(t, id)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, tc.expectedID, id)
			}
		})
	}
}

// =============================================================================
// Update / Delete Booking Tests
// =============================================================================

func TestBookingRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		run           func(*repository.BookingRepository, sqlc.DBTX) error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: update touches one row",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBooking(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			run: func(repo *repository.BookingRepository, tx sqlc.DBTX) error {
				return repo.Update(ctx, tx, builder.NewBookingBuilder().BuildReconstructed())
			},
		},
		{
			name: "error: update of missing booking",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBooking(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			run: func(repo *repository.BookingRepository, tx sqlc.DBTX) error {
				return repo.Update(ctx, tx, builder.NewBookingBuilder().BuildReconstructed())
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "success: delete",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeleteBooking(ctx, tx, int64(42)).Return(int64(1), nil)
			},
			run: func(repo *repository.BookingRepository, tx sqlc.DBTX) error {
				return repo.Delete(ctx, tx, 42)
			},
		},
		{
			name: "error: delete blocked by invoices",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().DeleteBooking(ctx, tx, int64(42)).Return(int64(0), fk)
			},
			run: func(repo *repository.BookingRepository, tx sqlc.DBTX) error {
				return repo.Delete(ctx, tx, 42)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: delete of missing booking",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeleteBooking(ctx, tx, int64(42)).Return(int64(0), nil)
			},
			run: func(repo *repository.BookingRepository, tx sqlc.DBTX) error {
				return repo.Delete(ctx, tx, 42)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			actualError := tc.run(repo, mockDB)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// FindForUpdate / CountInvoices Tests
// =============================================================================

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row mapped to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		row := builder.NewBookingBuilder().BuildInfra()
		mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, int64(42)).Return(row, nil)

		b, err := repo.FindForUpdate(ctx, mockDB, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), b.ID())
		assert.Equal(t, "Bali Paradise Tour", b.PackageName())
		assert.Equal(t, "confirmed", b.Status().String())
		assert.Equal(t, row.FromDate.Time, b.FromDate())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, int64(9)).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, mockDB, 9)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("count invoices passes a valid booking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CountInvoicesByBooking(ctx, mockDB, pgtype.Int8{Int64: 42, Valid: true}).Return(int64(2), nil)

		n, err := repo.CountInvoices(ctx, mockDB, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}

// =============================================================================
// Mock DBTX
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
