package commands

import (
	"context"
	"time"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/domain/booking"
	"travel-backoffice/internal/domain/invoice"
	"travel-backoffice/internal/domain/pricing"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type BookingInput struct {
	UserEmail string
	PackageID int
	FromDate  time.Time
	ToDate    time.Time
	Status    string
}

type ConvertResult struct {
	InvoiceID     int64
	InvoiceNumber string
}

type BookingCommands interface {
	Create(ctx context.Context, in BookingInput, actor audit.Actor) (int64, error)
	Update(ctx context.Context, id int64, in BookingInput, actor audit.Actor) error
	Delete(ctx context.Context, id int64, actor audit.Actor) error
	ConvertToInvoice(ctx context.Context, id int64, actor audit.Actor) (*ConvertResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	catalog  *pricing.Catalog
	pricer   pricing.PriceCalculator
	auditLog shared.AuditLog
	cache    shared.Cache
	clock    clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	catalog *pricing.Catalog,
	pricer pricing.PriceCalculator,
	auditLog shared.AuditLog,
	cache shared.Cache,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		catalog:  catalog,
		pricer:   pricer,
		auditLog: auditLog,
		cache:    cache,
		clock:    clk,
	}
}

// details resolves the package name from the catalog; clients only send the id.
func (uc *bookingUseCaseImpl) details(in BookingInput) (booking.Details, error) {
	pkg, err := uc.catalog.ByID(in.PackageID)
	if err != nil {
		return booking.Details{}, invalid(err)
	}
	status, err := booking.NewStatus(in.Status)
	if err != nil {
		return booking.Details{}, invalid(err)
	}
	return booking.Details{
		UserEmail:   in.UserEmail,
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		FromDate:    clock.DateOf(in.FromDate),
		ToDate:      clock.DateOf(in.ToDate),
		Status:      status,
	}, nil
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, in BookingInput, actor audit.Actor) (int64, error) {
	d, err := uc.details(in)
	if err != nil {
		return 0, err
	}
	now := uc.clock.Now()
	b, err := booking.NewBooking(d, now)
	if err != nil {
		return 0, invalid(err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return repoErr(derr, ErrBookingNotFound)
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.auditLog.Record(ctx, audit.BookingCreated(actor, id, b.UserEmail().String(), now))
	return id, nil
}

func (uc *bookingUseCaseImpl) Update(ctx context.Context, id int64, in BookingInput, actor audit.Actor) error {
	d, err := uc.details(in)
	if err != nil {
		return err
	}
	now := uc.clock.Now()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return repoErr(derr, ErrBookingNotFound)
		}
		if derr = b.Revise(d, now); derr != nil {
			return invalid(derr)
		}
		return repoErr(tx.Bookings().Update(ctx, tx.DB(), b), ErrBookingNotFound)
	})
	if err != nil {
		return err
	}

	uc.auditLog.Record(ctx, audit.BookingUpdated(actor, id, now))
	return nil
}

func (uc *bookingUseCaseImpl) Delete(ctx context.Context, id int64, actor audit.Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), id); derr != nil {
			return repoErr(derr, ErrBookingNotFound)
		}
		count, derr := tx.Bookings().CountInvoices(ctx, tx.DB(), id)
		if derr != nil {
			return repoErr(derr, ErrBookingNotFound)
		}
		if derr = booking.CheckDeletable(count); derr != nil {
			return errs.Mark(derr, errs.ErrIntegrity)
		}
		derr = tx.Bookings().Delete(ctx, tx.DB(), id)
		mapped := repoErr(derr, ErrBookingNotFound)
		// An invoice inserted concurrently still trips the foreign key.
		if mapped != nil && errs.Is(mapped, errs.ErrIntegrity) {
			return errs.Mark(booking.ErrHasInvoices, errs.ErrIntegrity)
		}
		return mapped
	})
	if err != nil {
		return err
	}

	uc.auditLog.Record(ctx, audit.BookingDeleted(actor, id, uc.clock.Now()))
	return nil
}

// ConvertToInvoice prices the booking and issues a pending invoice for it.
// Status and existing-invoice checks belong to the caller; every call issues
// a new invoice.
func (uc *bookingUseCaseImpl) ConvertToInvoice(ctx context.Context, id int64, actor audit.Actor) (*ConvertResult, error) {
	now := uc.clock.Now()
	var res ConvertResult

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return repoErr(derr, ErrBookingNotFound)
		}
		s, derr := tx.Reads().Settings(ctx)
		if derr != nil {
			return errs.Mark(derr, errs.ErrPersistence)
		}
		price := uc.pricer.Price(b.PackageName(), b.FromDate(), b.ToDate())

		issued, derr := tx.InvoiceSequence().Reserve(ctx, tx.DB(), shared.InvoiceSequenceName)
		if derr != nil {
			return errs.Mark(derr, errs.ErrPersistence)
		}
		number := invoice.NextNumber(issued, s.InvoicePrefix)

		bookingID := b.ID()
		email := b.UserEmail()
		inv, derr := invoice.NewInvoice(number, invoice.Draft{
			BookingID:     &bookingID,
			InvoiceDate:   clock.DateOf(now),
			CustomerName:  invoice.CustomerNameFromEmail(email),
			CustomerEmail: email.String(),
			PackageName:   b.PackageName(),
			PackagePrice:  price,
			TaxRate:       s.TaxRate,
			Discount:      decimal.Zero,
			Status:        invoice.StatusPending,
		}, now)
		if derr != nil {
			return invalid(derr)
		}

		invoiceID, derr := tx.Invoices().Create(ctx, tx.DB(), inv)
		if derr != nil {
			return repoErr(derr, ErrInvoiceNotFound)
		}
		res = ConvertResult{InvoiceID: invoiceID, InvoiceNumber: number}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.auditLog.Record(ctx, audit.InvoiceFromBooking(actor, res.InvoiceNumber, id, now))
	invalidateReports(ctx, uc.cache)
	return &res, nil
}
