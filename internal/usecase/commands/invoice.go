package commands

import (
	"context"
	"time"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/domain/invoice"
	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type InvoiceInput struct {
	BookingID     *int64
	InvoiceDate   time.Time
	CustomerName  string
	CustomerEmail string
	PackageName   string
	PackagePrice  decimal.Decimal
	TaxRate       decimal.Decimal
	Discount      decimal.Decimal
	PaymentStatus string
}

type CreateInvoiceResult struct {
	InvoiceID     int64
	InvoiceNumber string
}

type InvoiceCommands interface {
	Create(ctx context.Context, in InvoiceInput, actor audit.Actor) (*CreateInvoiceResult, error)
	Update(ctx context.Context, id int64, in InvoiceInput, actor audit.Actor) error
	UpdateStatus(ctx context.Context, id int64, status string, actor audit.Actor) error
	Delete(ctx context.Context, id int64, actor audit.Actor) error
}

type invoiceUseCaseImpl struct {
	uow      shared.UnitOfWork
	auditLog shared.AuditLog
	cache    shared.Cache
	clock    clock.Clock
}

func NewInvoiceUseCase(uow shared.UnitOfWork, auditLog shared.AuditLog, cache shared.Cache, clk clock.Clock) InvoiceCommands {
	return &invoiceUseCaseImpl{
		uow:      uow,
		auditLog: auditLog,
		cache:    cache,
		clock:    clk,
	}
}

func draftOf(in InvoiceInput) (invoice.Draft, error) {
	status, err := invoice.NewPaymentStatus(in.PaymentStatus)
	if err != nil {
		return invoice.Draft{}, invalid(err)
	}
	return invoice.Draft{
		BookingID:     in.BookingID,
		InvoiceDate:   clock.DateOf(in.InvoiceDate),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		PackageName:   in.PackageName,
		PackagePrice:  in.PackagePrice,
		TaxRate:       in.TaxRate,
		Discount:      in.Discount,
		Status:        status,
	}, nil
}

// invoiceWriteErr reports a dangling booking reference as a validation problem.
func invoiceWriteErr(err error) error {
	if err != nil && infra.IsKind(err, infra.KindForeignKeyViolated) {
		return ErrUnknownBooking
	}
	return repoErr(err, ErrInvoiceNotFound)
}

func (uc *invoiceUseCaseImpl) Create(ctx context.Context, in InvoiceInput, actor audit.Actor) (*CreateInvoiceResult, error) {
	d, err := draftOf(in)
	if err != nil {
		return nil, err
	}
	if in.InvoiceDate.IsZero() {
		d.InvoiceDate = clock.Today(uc.clock)
	}
	now := uc.clock.Now()
	var res CreateInvoiceResult

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Reads().Settings(ctx)
		if derr != nil {
			return errs.Mark(derr, errs.ErrPersistence)
		}
		issued, derr := tx.InvoiceSequence().Reserve(ctx, tx.DB(), shared.InvoiceSequenceName)
		if derr != nil {
			return errs.Mark(derr, errs.ErrPersistence)
		}
		number := invoice.NextNumber(issued, s.InvoicePrefix)

		inv, derr := invoice.NewInvoice(number, d, now)
		if derr != nil {
			return invalid(derr)
		}
		id, derr := tx.Invoices().Create(ctx, tx.DB(), inv)
		if derr != nil {
			return invoiceWriteErr(derr)
		}
		res = CreateInvoiceResult{InvoiceID: id, InvoiceNumber: number}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.auditLog.Record(ctx, audit.InvoiceCreated(actor, res.InvoiceNumber, now))
	invalidateReports(ctx, uc.cache)
	return &res, nil
}

func (uc *invoiceUseCaseImpl) Update(ctx context.Context, id int64, in InvoiceInput, actor audit.Actor) error {
	d, err := draftOf(in)
	if err != nil {
		return err
	}
	now := uc.clock.Now()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, derr := tx.Invoices().FindByID(ctx, tx.DB(), id)
		if derr != nil {
			return repoErr(derr, ErrInvoiceNotFound)
		}
		if in.InvoiceDate.IsZero() {
			d.InvoiceDate = inv.InvoiceDate()
		}
		if derr = inv.Revise(d, now); derr != nil {
			return invalid(derr)
		}
		return invoiceWriteErr(tx.Invoices().Update(ctx, tx.DB(), inv))
	})
	if err != nil {
		return err
	}

	uc.auditLog.Record(ctx, audit.InvoiceUpdated(actor, id, now))
	invalidateReports(ctx, uc.cache)
	return nil
}

func (uc *invoiceUseCaseImpl) UpdateStatus(ctx context.Context, id int64, status string, actor audit.Actor) error {
	s, err := invoice.NewPaymentStatus(status)
	if err != nil {
		return invalid(err)
	}
	now := uc.clock.Now()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Invoices().UpdateStatus(ctx, tx.DB(), id, s, now), ErrInvoiceNotFound)
	})
	if err != nil {
		return err
	}

	uc.auditLog.Record(ctx, audit.InvoiceUpdated(actor, id, now))
	invalidateReports(ctx, uc.cache)
	return nil
}

func (uc *invoiceUseCaseImpl) Delete(ctx context.Context, id int64, actor audit.Actor) error {
	var number string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Invoices().Delete(ctx, tx.DB(), id)
		if derr != nil {
			return repoErr(derr, ErrInvoiceNotFound)
		}
		number = n
		return nil
	})
	if err != nil {
		return err
	}

	uc.auditLog.Record(ctx, audit.InvoiceDeleted(actor, number, uc.clock.Now()))
	invalidateReports(ctx, uc.cache)
	return nil
}
