//go:build unit

package repository_test

import (
	"context"
	"testing"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/repository"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/tests/common/builder"
	repositorymock "travel-backoffice/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditLogRepository_Insert(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.MustParse("0b3cbd5e-7f51-4a0e-8a53-0f8a2c9c1d11")

	testCases := []struct {
		name          string
		entry         audit.Entry
		expected      sqlc.InsertSystemLogParams
		queryErr      error
		expectedError bool
	}{
		{
			name:  "success: actor attributed",
			entry: audit.BookingDeleted(audit.Actor{ID: &actorID, Name: "mia.staff", Role: "staff"}, 42, builder.FixedNow),
			expected: sqlc.InsertSystemLogParams{
				UserID:        pgtype.UUID{Bytes: actorID, Valid: true},
				Action:        "booking_delete",
				ActionDetails: "Booking #42 deleted",
				PerformedBy:   "mia.staff",
				CreatedAt:     pgtype.Timestamptz{Time: builder.FixedNow, Valid: true},
			},
		},
		{
			name:  "success: blank performer falls back to System",
			entry: audit.Entry{Action: audit.ActionSettingsUpdate, Details: "Settings updated", OccurredAt: builder.FixedNow},
			expected: sqlc.InsertSystemLogParams{
				Action:        "settings_update",
				ActionDetails: "Settings updated",
				PerformedBy:   audit.SystemActorName,
				CreatedAt:     pgtype.Timestamptz{Time: builder.FixedNow, Valid: true},
			},
		},
		{
			name:          "error: database failure",
			entry:         audit.Entry{Action: audit.ActionSettingsUpdate, Details: "Settings updated", OccurredAt: builder.FixedNow},
			queryErr:      errDBConnection,
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAuditLogQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAuditLogRepository(mockQueries, mockDB)

			if tc.expectedError {
				mockQueries.EXPECT().InsertSystemLog(ctx, mockDB, gomock.Any()).Return(tc.queryErr)
			} else {
				mockQueries.EXPECT().InsertSystemLog(ctx, mockDB, tc.expected).Return(nil)
			}

			err := repo.Insert(ctx, tc.entry)
			if tc.expectedError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
