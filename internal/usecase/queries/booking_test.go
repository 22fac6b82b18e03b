//go:build unit

package queries_test

import (
	"context"
	"testing"

	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/filter"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/queries"
	queriesmock "travel-backoffice/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		view    *queries.BookingView
		err     error
		wantErr error
	}{
		{name: "found", view: &queries.BookingView{ID: 42, UserEmail: "jane.doe@example.com"}},
		{name: "missing row", err: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound), wantErr: errs.ErrNotFound},
		{name: "db failure", err: infra.WrapRepoErr("failed to get booking", errs.New("connection lost")), wantErr: errs.ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), int64(42)).Return(tt.view, tt.err)

			got, err := queries.NewBookingQueries(store).GetByID(context.Background(), 42)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view, got)
		})
	}
}

func TestBookingQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	criteria := filter.Criteria{Search: "bali"}
	page := filter.Window(10, 20)
	store.EXPECT().List(gomock.Any(), criteria, page).Return(nil, nil)
	store.EXPECT().Count(gomock.Any(), criteria).Return(int64(23), nil)

	got, err := queries.NewBookingQueries(store).List(context.Background(), criteria, page)

	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
	assert.Equal(t, int64(23), got.Total)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, 20, got.Offset)
}
