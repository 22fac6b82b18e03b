//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/readstore"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	readstoremock "travel-backoffice/tests/mock/readstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsReadStore_Values(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows keyed by setting key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSettingsReadQueries(ctrl)
		store := readstore.NewSettingsReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListSettings(ctx, gomock.Any()).Return([]sqlc.Settings{
			{SettingKey: "tax_rate", SettingValue: "12"},
			{SettingKey: "currency", SettingValue: "EUR"},
		}, nil)

		values, err := store.Values(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[setting.Key]string{setting.KeyTaxRate: "12", setting.KeyCurrency: "EUR"}, values)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSettingsReadQueries(ctrl)
		store := readstore.NewSettingsReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListSettings(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.Values(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
