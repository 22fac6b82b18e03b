//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/domain/booking"
	"travel-backoffice/internal/domain/invoice"
	"travel-backoffice/internal/domain/pricing"
	"travel-backoffice/internal/domain/setting"
	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/commands"
	"travel-backoffice/internal/usecase/shared"
	"travel-backoffice/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingCommands(f *txFixture) commands.BookingCommands {
	catalog := pricing.DefaultCatalog()
	return commands.NewBookingUseCase(f.uow, catalog, pricing.NewDefaultPriceCalculator(catalog),
		f.auditLog, f.cache, clock.NewMockClock(builder.FixedNow))
}

func TestBookingCommands_ConvertToInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a priced pending invoice", func(t *testing.T) {
		f := newTxFixture(t)
		b := builder.NewBookingBuilder().BuildReconstructed()

		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(42)).Return(b, nil)
		f.reads.EXPECT().Settings(gomock.Any()).Return(setting.Defaults(), nil)
		f.sequence.EXPECT().Reserve(gomock.Any(), gomock.Any(), shared.InvoiceSequenceName).Return(int64(6), nil)
		var created *invoice.Invoice
		f.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, inv *invoice.Invoice) (int64, error) {
				created = inv
				return 7, nil
			})
		entry := f.expectAudit()
		f.cache.EXPECT().DeletePattern(gomock.Any(), "report:*").Return(nil)

		res, err := newBookingCommands(f).ConvertToInvoice(ctx, 42, admin)

		require.NoError(t, err)
		assert.Equal(t, &commands.ConvertResult{InvoiceID: 7, InvoiceNumber: "RTT-INV-0007"}, res)
		require.NotNil(t, created)
		assert.Equal(t, "Jane Doe", created.CustomerName())
		assert.Equal(t, "jane.doe@example.com", created.CustomerEmail().String())
		assert.Equal(t, "Bali Paradise Tour", created.PackageName())
		assert.True(t, decimal.RequireFromString("1200.00").Equal(created.PackagePrice()))
		assert.True(t, decimal.NewFromInt(10).Equal(created.TaxRate()))
		assert.True(t, decimal.RequireFromString("1320.00").Equal(created.Total()))
		assert.True(t, created.Discount().IsZero())
		assert.Equal(t, invoice.StatusPending, created.Status())
		assert.Equal(t, clock.DateOf(builder.FixedNow), created.InvoiceDate())
		require.NotNil(t, created.BookingID())
		assert.Equal(t, int64(42), *created.BookingID())

		assert.Equal(t, audit.ActionInvoiceFromBooking, entry.Action)
		assert.Equal(t, "Invoice RTT-INV-0007 created from booking #42", entry.Details)
		assert.Equal(t, "alice", entry.PerformedBy)
	})

	t.Run("uses the configured prefix and tax rate", func(t *testing.T) {
		f := newTxFixture(t)
		b := builder.NewBookingBuilder().
			WithPackage(3, "Thailand Explorer").
			WithDates(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)).
			BuildReconstructed()
		s := setting.FromValues(map[setting.Key]string{setting.KeyTaxRate: "7.5", setting.KeyInvoicePrefix: "TRV-"})

		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(42)).Return(b, nil)
		f.reads.EXPECT().Settings(gomock.Any()).Return(s, nil)
		f.sequence.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(12344), nil)
		var created *invoice.Invoice
		f.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, inv *invoice.Invoice) (int64, error) {
				created = inv
				return 99, nil
			})
		f.expectAudit()
		f.cache.EXPECT().DeletePattern(gomock.Any(), gomock.Any()).Return(nil)

		res, err := newBookingCommands(f).ConvertToInvoice(ctx, 42, audit.System())

		require.NoError(t, err)
		assert.Equal(t, "TRV-12345", res.InvoiceNumber)
		// 900 over 14 days is 1800, plus 7.5% tax.
		assert.True(t, decimal.RequireFromString("1800.00").Equal(created.PackagePrice()))
		assert.True(t, decimal.RequireFromString("1935.00").Equal(created.Total()))
	})

	t.Run("converting twice issues two invoices", func(t *testing.T) {
		f := newTxFixture(t)
		b := builder.NewBookingBuilder().BuildReconstructed()

		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(42)).Return(b, nil).Times(2)
		f.reads.EXPECT().Settings(gomock.Any()).Return(setting.Defaults(), nil).Times(2)
		gomock.InOrder(
			f.sequence.EXPECT().Reserve(gomock.Any(), gomock.Any(), shared.InvoiceSequenceName).Return(int64(0), nil),
			f.sequence.EXPECT().Reserve(gomock.Any(), gomock.Any(), shared.InvoiceSequenceName).Return(int64(1), nil),
		)
		var numbers []string
		nextID := int64(0)
		f.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, inv *invoice.Invoice) (int64, error) {
				numbers = append(numbers, inv.Number())
				nextID++
				return nextID, nil
			}).Times(2)
		var details []string
		f.auditLog.EXPECT().Record(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e audit.Entry) { details = append(details, e.Details) }).Times(2)
		f.cache.EXPECT().DeletePattern(gomock.Any(), "report:*").Return(nil).Times(2)

		uc := newBookingCommands(f)
		first, err := uc.ConvertToInvoice(ctx, 42, admin)
		require.NoError(t, err)
		second, err := uc.ConvertToInvoice(ctx, 42, admin)
		require.NoError(t, err)

		assert.Equal(t, &commands.ConvertResult{InvoiceID: 1, InvoiceNumber: "RTT-INV-0001"}, first)
		assert.Equal(t, &commands.ConvertResult{InvoiceID: 2, InvoiceNumber: "RTT-INV-0002"}, second)
		assert.Equal(t, []string{"RTT-INV-0001", "RTT-INV-0002"}, numbers)
		assert.Equal(t, []string{
			"Invoice RTT-INV-0001 created from booking #42",
			"Invoice RTT-INV-0002 created from booking #42",
		}, details)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newTxFixture(t)
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := newBookingCommands(f).ConvertToInvoice(ctx, 404, admin)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("insert failure records nothing", func(t *testing.T) {
		f := newTxFixture(t)
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(builder.NewBookingBuilder().BuildReconstructed(), nil)
		f.reads.EXPECT().Settings(gomock.Any()).Return(setting.Defaults(), nil)
		f.sequence.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to create invoice", errs.New("connection lost")))

		_, err := newBookingCommands(f).ConvertToInvoice(ctx, 42, admin)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPersistence))
	})
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	input := commands.BookingInput{
		UserEmail: "jane.doe@example.com",
		PackageID: 2,
		FromDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ToDate:    time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		Status:    "pending",
	}

	t.Run("names the package from the catalog", func(t *testing.T) {
		f := newTxFixture(t)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (int64, error) {
				assert.Equal(t, "European Adventure", b.PackageName())
				assert.Equal(t, booking.StatusPending, b.Status())
				return 43, nil
			})
		entry := f.expectAudit()

		id, err := newBookingCommands(f).Create(ctx, input, admin)

		require.NoError(t, err)
		assert.Equal(t, int64(43), id)
		assert.Equal(t, "Booking #43 created for jane.doe@example.com", entry.Details)
	})

	invalidCases := []struct {
		name   string
		mutate func(*commands.BookingInput)
	}{
		{name: "unknown package", mutate: func(in *commands.BookingInput) { in.PackageID = 99 }},
		{name: "unknown status", mutate: func(in *commands.BookingInput) { in.Status = "archived" }},
		{name: "bad email", mutate: func(in *commands.BookingInput) { in.UserEmail = "not-an-email" }},
		{name: "inverted dates", mutate: func(in *commands.BookingInput) { in.FromDate, in.ToDate = in.ToDate, in.FromDate }},
	}
	for _, tc := range invalidCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newTxFixture(t)
			in := input
			tc.mutate(&in)

			_, err := newBookingCommands(f).Create(ctx, in, admin)

			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestBookingCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses while invoices exist", func(t *testing.T) {
		f := newTxFixture(t)
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(42)).Return(builder.NewBookingBuilder().BuildReconstructed(), nil)
		f.bookings.EXPECT().CountInvoices(gomock.Any(), gomock.Any(), int64(42)).Return(int64(1), nil)

		err := newBookingCommands(f).Delete(ctx, 42, admin)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrIntegrity))
		assert.Equal(t, "Cannot delete booking. There are invoices associated with this booking.", errs.UserMessage(err))
	})

	t.Run("deletes and records", func(t *testing.T) {
		f := newTxFixture(t)
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(42)).Return(builder.NewBookingBuilder().BuildReconstructed(), nil)
		f.bookings.EXPECT().CountInvoices(gomock.Any(), gomock.Any(), int64(42)).Return(int64(0), nil)
		f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(42)).Return(nil)
		entry := f.expectAudit()

		require.NoError(t, newBookingCommands(f).Delete(ctx, 42, admin))
		assert.Equal(t, "Booking #42 deleted", entry.Details)
	})
}
