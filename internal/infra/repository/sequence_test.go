//go:build unit

package repository_test

import (
	"context"
	"testing"

	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/repository"
	repositorymock "travel-backoffice/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInvoiceSequenceRepository_Reserve(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		value         int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: first reservation returns zero", value: 0},
		{name: "success: later reservation", value: 41},
		{name: "error: sequence row missing", queryErr: pgx.ErrNoRows, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database failure", queryErr: errDBConnection, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSequenceQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewInvoiceSequenceRepository(mockQueries, mockDB)

			mockQueries.EXPECT().ReserveSequenceValue(ctx, mockDB, "invoice").Return(tc.value, tc.queryErr)

			v, err := repo.Reserve(ctx, mockDB, "invoice")
			if tc.expectedError {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.value, v)
		})
	}
}
