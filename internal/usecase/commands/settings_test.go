//go:build unit

package commands_test

import (
	"context"
	"testing"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/commands"
	"travel-backoffice/internal/usecase/shared"
	"travel-backoffice/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes, stores and invalidates", func(t *testing.T) {
		f := newTxFixture(t)
		f.settings.EXPECT().Upsert(gomock.Any(), gomock.Any(), map[setting.Key]string{
			setting.KeyTaxRate:     "8.5",
			setting.KeyCompanyName: "Rtt Travel",
		}).Return(nil)
		f.cache.EXPECT().DeletePattern(gomock.Any(), shared.CacheKeySettings).Return(nil)
		entry := f.expectAudit()

		uc := commands.NewSettingsUseCase(f.uow, f.auditLog, f.cache, clock.NewMockClock(builder.FixedNow))
		err := uc.Update(ctx, map[setting.Key]string{
			setting.KeyTaxRate:     " 8.50 ",
			setting.KeyCompanyName: "Rtt Travel",
		}, admin)

		require.NoError(t, err)
		assert.Equal(t, audit.ActionSettingsUpdate, entry.Action)
		assert.Equal(t, "System settings updated", entry.Details)
	})

	t.Run("invalid batch writes nothing", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow, f.auditLog, f.cache, clock.NewMockClock(builder.FixedNow))

		err := uc.Update(ctx, map[setting.Key]string{
			setting.KeyCompanyName: "Rtt Travel",
			setting.KeySMTPPort:    "70000",
		}, admin)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
