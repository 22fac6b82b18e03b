//go:build unit

package booking_test

import (
	"testing"
	"time"

	"travel-backoffice/internal/domain/booking"
	"travel-backoffice/internal/domain/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() booking.Details {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return booking.Details{
		UserEmail:   "traveller@example.com",
		PackageID:   1,
		PackageName: "Bali Paradise Tour",
		FromDate:    from,
		ToDate:      from.AddDate(0, 0, 7),
		Status:      booking.StatusPending,
	}
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid booking", func(t *testing.T) {
		b, err := booking.NewBooking(validDetails(), now)
		require.NoError(t, err)
		assert.Equal(t, "traveller@example.com", b.UserEmail().Value())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("same-day trip is allowed", func(t *testing.T) {
		d := validDetails()
		d.ToDate = d.FromDate
		_, err := booking.NewBooking(d, now)
		assert.NoError(t, err)
	})

	testCases := []struct {
		name   string
		mutate func(*booking.Details)
		errIs  error
	}{
		{name: "bad email", mutate: func(d *booking.Details) { d.UserEmail = "x@" }, errIs: contact.ErrInvalidEmail},
		{name: "no package id", mutate: func(d *booking.Details) { d.PackageID = 0 }, errIs: booking.ErrInvalidPackage},
		{name: "no package name", mutate: func(d *booking.Details) { d.PackageName = " " }, errIs: booking.ErrInvalidPackage},
		{name: "inverted range", mutate: func(d *booking.Details) { d.ToDate = d.FromDate.AddDate(0, 0, -1) }, errIs: booking.ErrInvalidDateRange},
		{name: "missing start", mutate: func(d *booking.Details) { d.FromDate = time.Time{} }, errIs: booking.ErrInvalidDateRange},
		{name: "unknown status", mutate: func(d *booking.Details) { d.Status = "archived" }, errIs: booking.ErrInvalidStatus},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDetails()
			tc.mutate(&d)
			_, err := booking.NewBooking(d, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestCheckConvertible(t *testing.T) {
	assert.NoError(t, booking.CheckConvertible(booking.StatusConfirmed, 0))
	assert.ErrorIs(t, booking.CheckConvertible(booking.StatusPending, 0), booking.ErrNotConfirmed)
	assert.ErrorIs(t, booking.CheckConvertible(booking.StatusCancelled, 0), booking.ErrNotConfirmed)
	assert.ErrorIs(t, booking.CheckConvertible(booking.StatusConfirmed, 1), booking.ErrAlreadyInvoiced)
}

func TestCheckDeletable(t *testing.T) {
	assert.NoError(t, booking.CheckDeletable(0))
	assert.ErrorIs(t, booking.CheckDeletable(2), booking.ErrHasInvoices)
}
