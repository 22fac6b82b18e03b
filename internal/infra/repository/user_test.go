//go:build unit

package repository_test

import (
	"context"
	"testing"

	"travel-backoffice/internal/domain/user"
	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/repository"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/tests/common/builder"
	repositorymock "travel-backoffice/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: user created"},
		{
			name:          "error: duplicate username",
			queryErr:      &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{name: "error: database failure", queryErr: errDBConnection, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUserRepository(mockQueries, mockDB)

			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateUser(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateUserParams) error {
					assert.Equal(t, u.ID(), arg.ID)
					assert.Equal(t, "mia.staff", arg.Username)
					assert.Equal(t, "hashed_password", arg.PasswordHash)
					return tc.queryErr
				})

			actualError := repo.Create(ctx, mockDB, u)
			if tc.expectedError {
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.MustParse("0b3cbd5e-7f51-4a0e-8a53-0f8a2c9c1d11")

	t.Run("success: row mapped to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUserRepository(mockQueries, mockDB)

		row := builder.NewUserBuilder().WithID(userID).AsAdmin().BuildInfra()
		mockQueries.EXPECT().GetUser(ctx, mockDB, userID).Return(row, nil)

		u, err := repo.FindByID(ctx, mockDB, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, u.ID())
		assert.Equal(t, user.RoleAdmin, u.Role())
		assert.Equal(t, "mia@example.com", u.Email().Value())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUserRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetUser(ctx, mockDB, userID).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, mockDB, userID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserRepository_CountDuplicates(t *testing.T) {
	ctx := context.Background()
	exclude := uuid.MustParse("0b3cbd5e-7f51-4a0e-8a53-0f8a2c9c1d11")

	testCases := []struct {
		name     string
		exclude  *uuid.UUID
		expected pgtype.UUID
	}{
		{name: "no exclusion on create", exclude: nil, expected: pgtype.UUID{}},
		{name: "excludes the edited user", exclude: &exclude, expected: pgtype.UUID{Bytes: exclude, Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUserRepository(mockQueries, mockDB)

			mockQueries.EXPECT().CountUsersByUsernameOrEmail(ctx, mockDB, sqlc.CountUsersByUsernameOrEmailParams{
				Username:  "mia.staff",
				Email:     "mia@example.com",
				ExcludeID: tc.expected,
			}).Return(int64(1), nil)

			n, err := repo.CountDuplicates(ctx, mockDB, "mia.staff", "mia@example.com", tc.exclude)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.MustParse("0b3cbd5e-7f51-4a0e-8a53-0f8a2c9c1d11")

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewUserRepository(mockQueries, mockDB)

	mockQueries.EXPECT().DeleteUser(ctx, mockDB, id).Return(int64(0), nil)

	err := repo.Delete(ctx, mockDB, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
