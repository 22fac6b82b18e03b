//go:build unit

package response_test

import (
	"testing"
	"time"

	"travel-backoffice/internal/handler/dto/response"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInvoiceView(t *testing.T) {
	t.Run("formats dates and money", func(t *testing.T) {
		res, err := response.FromInvoiceView(&queries.InvoiceView{
			ID:            3,
			InvoiceNumber: "RTT-INV-0003",
			InvoiceDate:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			TotalAmount:   decimal.RequireFromString("1885.7"),
		})

		require.NoError(t, err)
		assert.Equal(t, "RTT-INV-0003", res.InvoiceNumber)
		assert.Equal(t, "2025-03-04", res.InvoiceDate)
		assert.Equal(t, "1885.70", res.TotalAmount)
	})

	t.Run("nil view is an error, not a panic", func(t *testing.T) {
		res, err := response.FromInvoiceView(nil)

		assert.Nil(t, res)
		assert.True(t, errs.Is(err, copier.ErrInvalidCopyFrom))
	})
}

func TestFromInvoicePage_PropagatesMappingError(t *testing.T) {
	_, err := response.FromInvoicePage(&queries.InvoicePage{Items: []*queries.InvoiceView{{ID: 1}, nil}})
	assert.Error(t, err)
}
