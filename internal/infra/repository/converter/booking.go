package converter

import (
	"travel-backoffice/internal/domain/booking"
	"travel-backoffice/internal/domain/contact"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		UserEmail:   b.UserEmail().Value(),
		PackageID:   pgconv.IntToInt32(b.PackageID()),
		PackageName: b.PackageName(),
		FromDate:    pgconv.DateToPgtype(b.FromDate()),
		ToDate:      pgconv.DateToPgtype(b.ToDate()),
		Status:      b.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:          b.ID(),
		UserEmail:   b.UserEmail().Value(),
		PackageID:   pgconv.IntToInt32(b.PackageID()),
		PackageName: b.PackageName(),
		FromDate:    pgconv.DateToPgtype(b.FromDate()),
		ToDate:      pgconv.DateToPgtype(b.ToDate()),
		Status:      b.Status().String(),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow trusts stored rows; values were validated on the way in.
func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	email, err := contact.NewEmail(row.UserEmail)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID,
		email,
		int(row.PackageID),
		row.PackageName,
		pgconv.DateFromPgtype(row.FromDate),
		pgconv.DateFromPgtype(row.ToDate),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
