//go:build unit || e2e

package builder

import (
	"time"

	"travel-backoffice/internal/domain/booking"
	"travel-backoffice/internal/domain/contact"
	reqdto "travel-backoffice/internal/handler/dto/request"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID          int64
	UserEmail   string
	PackageID   int
	PackageName string
	FromDate    time.Time
	ToDate      time.Time
	Status      string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          42,
		UserEmail:   "jane.doe@example.com",
		PackageID:   1,
		PackageName: "Bali Paradise Tour",
		FromDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ToDate:      time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		Status:      "confirmed",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Details() booking.Details {
	return booking.Details{
		UserEmail:   b.UserEmail,
		PackageID:   b.PackageID,
		PackageName: b.PackageName,
		FromDate:    b.FromDate,
		ToDate:      b.ToDate,
		Status:      booking.Status(b.Status),
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.Details(), FixedNow)
}

func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	email, _ := contact.NewEmail(b.UserEmail)
	return booking.ReconstructBooking(b.ID, email, b.PackageID, b.PackageName, b.FromDate, b.ToDate,
		booking.Status(b.Status), FixedNow, FixedNow)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:          b.ID,
		UserEmail:   b.UserEmail,
		PackageID:   int32(b.PackageID), // #nosec G115 -- small test values
		PackageName: b.PackageName,
		FromDate:    pgtype.Date{Time: b.FromDate, Valid: true},
		ToDate:      pgtype.Date{Time: b.ToDate, Valid: true},
		Status:      b.Status,
		CreatedAt:   pgtype.Timestamptz{Time: FixedNow, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: FixedNow, Valid: true},
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.UserEmail = email
	return b
}

func (b *BookingBuilder) WithPackage(id int, name string) *BookingBuilder {
	b.PackageID = id
	b.PackageName = name
	return b
}

func (b *BookingBuilder) WithDates(from, to time.Time) *BookingBuilder {
	b.FromDate = from
	b.ToDate = to
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		UserEmail: b.UserEmail,
		PackageID: b.PackageID,
		FromDate:  b.FromDate.Format(reqdto.DateLayout),
		ToDate:    b.ToDate.Format(reqdto.DateLayout),
		Status:    b.Status,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		UserEmail:   b.UserEmail,
		PackageID:   b.PackageID,
		PackageName: b.PackageName,
		FromDate:    b.FromDate,
		ToDate:      b.ToDate,
		Status:      b.Status,
		CreatedAt:   FixedNow,
		UpdatedAt:   FixedNow,
	}
}
