package booking

import (
	"errors"
	"strings"
	"time"

	"travel-backoffice/internal/domain/contact"
)

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrInvalidPackage   = errors.New("package is required")
	ErrInvalidDateRange = errors.New("travel dates are required and the end date must not precede the start date")
	ErrNotConfirmed     = errors.New("only confirmed bookings can be invoiced")
	ErrAlreadyInvoiced  = errors.New("booking already has an invoice")
	ErrHasInvoices      = errors.New("Cannot delete booking. There are invoices associated with this booking.")
)

// Details carries the editable fields of a booking.
type Details struct {
	UserEmail   string
	PackageID   int
	PackageName string
	FromDate    time.Time
	ToDate      time.Time
	Status      Status
}

type Booking struct {
	id          int64
	userEmail   contact.Email
	packageID   int
	packageName string
	fromDate    time.Time
	toDate      time.Time
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(d Details, now time.Time) (*Booking, error) {
	b := &Booking{createdAt: now}
	if err := b.apply(d, now); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBooking(id int64, userEmail contact.Email, packageID int, packageName string, fromDate, toDate time.Time, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:          id,
		userEmail:   userEmail,
		packageID:   packageID,
		packageName: packageName,
		fromDate:    fromDate,
		toDate:      toDate,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) Revise(d Details, now time.Time) error {
	return b.apply(d, now)
}

func (b *Booking) apply(d Details, now time.Time) error {
	email, err := contact.NewEmail(d.UserEmail)
	if err != nil {
		return err
	}
	if d.PackageID <= 0 || strings.TrimSpace(d.PackageName) == "" {
		return ErrInvalidPackage
	}
	if d.FromDate.IsZero() || d.ToDate.IsZero() || d.ToDate.Before(d.FromDate) {
		return ErrInvalidDateRange
	}
	if !d.Status.IsValid() {
		return ErrInvalidStatus
	}

	b.userEmail = email
	b.packageID = d.PackageID
	b.packageName = d.PackageName
	b.fromDate = d.FromDate
	b.toDate = d.ToDate
	b.status = d.Status
	b.updatedAt = now
	return nil
}

// CheckConvertible reports whether a booking may be turned into an invoice.
func CheckConvertible(status Status, invoiceCount int64) error {
	if status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if invoiceCount > 0 {
		return ErrAlreadyInvoiced
	}
	return nil
}

// CheckDeletable refuses deletion while invoices still reference the booking.
func CheckDeletable(invoiceCount int64) error {
	if invoiceCount > 0 {
		return ErrHasInvoices
	}
	return nil
}

func (b *Booking) ID() int64                { return b.id }
func (b *Booking) UserEmail() contact.Email { return b.userEmail }
func (b *Booking) PackageID() int           { return b.packageID }
func (b *Booking) PackageName() string      { return b.packageName }
func (b *Booking) FromDate() time.Time      { return b.fromDate }
func (b *Booking) ToDate() time.Time        { return b.toDate }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
