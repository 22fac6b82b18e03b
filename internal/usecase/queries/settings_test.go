//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/queries"
	"travel-backoffice/internal/usecase/shared"
	queriesmock "travel-backoffice/tests/mock/queries"
	sharedmock "travel-backoffice/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsQueries_Get(t *testing.T) {
	ctx := context.Background()
	stored := map[setting.Key]string{
		setting.KeyCompanyName:  "Rtt Travel",
		setting.KeySMTPPassword: "s3cret",
	}

	t.Run("served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSettingsReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), shared.CacheKeySettings, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*map[setting.Key]string) = stored
				return nil
			})

		got, err := queries.NewSettingsQueries(store, cache, time.Minute).Get(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Rtt Travel", got.CompanyName)
		assert.Equal(t, "s3cret", got.SMTPPassword)
	})

	t.Run("miss loads raw values and caches them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSettingsReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), shared.CacheKeySettings, gomock.Any()).Return(shared.ErrCacheMiss)
		store.EXPECT().Values(gomock.Any()).Return(stored, nil)
		cache.EXPECT().Set(gomock.Any(), shared.CacheKeySettings, stored, 5*time.Minute).Return(nil)

		got, err := queries.NewSettingsQueries(store, cache, 5*time.Minute).Get(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Rtt Travel", got.CompanyName)
		assert.Equal(t, setting.Defaults().InvoicePrefix, got.InvoicePrefix)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSettingsReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(shared.ErrCacheMiss)
		store.EXPECT().Values(gomock.Any()).Return(nil, errs.New("connection lost"))

		_, err := queries.NewSettingsQueries(store, cache, time.Minute).Get(ctx)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPersistence))
	})
}
