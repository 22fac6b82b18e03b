//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"travel-backoffice/internal/domain/contact"
	"travel-backoffice/internal/domain/invoice"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() invoice.Draft {
	return invoice.Draft{
		InvoiceDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane.doe@example.com",
		PackageName:   "Bali Paradise Tour",
		PackagePrice:  decimal.RequireFromString("1200"),
		TaxRate:       decimal.RequireFromString("10"),
		Discount:      decimal.RequireFromString("50"),
		Status:        invoice.StatusPending,
	}
}

func TestNewInvoice(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("computes total from price, rate and discount", func(t *testing.T) {
		inv, err := invoice.NewInvoice("RTT-INV-0001", validDraft(), now)
		require.NoError(t, err)

		assert.Equal(t, "RTT-INV-0001", inv.Number())
		assert.Equal(t, "120.00", inv.TaxAmount().StringFixed(2))
		assert.Equal(t, "1270.00", inv.Total().StringFixed(2))
		assert.Equal(t, now, inv.CreatedAt())
	})

	testCases := []struct {
		name   string
		number string
		mutate func(*invoice.Draft)
		errIs  error
	}{
		{name: "empty number", number: " ", errIs: invoice.ErrInvalidNumber},
		{name: "bad email", mutate: func(d *invoice.Draft) { d.CustomerEmail = "nope" }, errIs: contact.ErrInvalidEmail},
		{name: "blank customer name", mutate: func(d *invoice.Draft) { d.CustomerName = "  " }, errIs: invoice.ErrInvalidCustomerName},
		{name: "blank package", mutate: func(d *invoice.Draft) { d.PackageName = "" }, errIs: invoice.ErrInvalidPackageName},
		{name: "missing date", mutate: func(d *invoice.Draft) { d.InvoiceDate = time.Time{} }, errIs: invoice.ErrInvalidInvoiceDate},
		{name: "negative price", mutate: func(d *invoice.Draft) { d.PackagePrice = decimal.NewFromInt(-1) }, errIs: invoice.ErrNegativeAmount},
		{name: "negative discount", mutate: func(d *invoice.Draft) { d.Discount = decimal.NewFromInt(-1) }, errIs: invoice.ErrNegativeAmount},
		{name: "tax above 100", mutate: func(d *invoice.Draft) { d.TaxRate = decimal.RequireFromString("100.01") }, errIs: invoice.ErrInvalidTaxRate},
		{name: "unknown status", mutate: func(d *invoice.Draft) { d.Status = "refunded" }, errIs: invoice.ErrInvalidPaymentStatus},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			if tc.mutate != nil {
				tc.mutate(&d)
			}
			number := "RTT-INV-0001"
			if tc.number != "" {
				number = tc.number
			}
			_, err := invoice.NewInvoice(number, d, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestInvoice_Revise(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	inv, err := invoice.NewInvoice("RTT-INV-0005", validDraft(), now)
	require.NoError(t, err)

	d := validDraft()
	d.TaxRate = decimal.Zero
	d.Discount = decimal.Zero
	d.Status = invoice.StatusPaid
	later := now.Add(time.Hour)
	require.NoError(t, inv.Revise(d, later))

	assert.Equal(t, "RTT-INV-0005", inv.Number(), "number is immutable")
	assert.Equal(t, "1200.00", inv.Total().StringFixed(2))
	assert.Equal(t, invoice.StatusPaid, inv.Status())
	assert.Equal(t, later, inv.UpdatedAt())

	assert.ErrorIs(t, inv.ChangeStatus("void", later), invoice.ErrInvalidPaymentStatus)
}
