package repository

import (
	"context"
	"time"

	"travel-backoffice/internal/domain/invoice"
	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/repository/converter"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
)

type InvoiceWriteQueries interface {
	CreateInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInvoiceParams) (int64, error)
	UpdateInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInvoiceParams) (int64, error)
	UpdateInvoiceStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInvoiceStatusParams) (int64, error)
	DeleteInvoice(ctx context.Context, db sqlc.DBTX, id int64) (string, error)
	GetInvoice(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Invoices, error)
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(queries InvoiceWriteQueries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) (int64, error) {
	id, err := r.queries.CreateInvoice(ctx, tx, converter.InvoiceToCreateParams(inv))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create invoice", err)
	}
	return id, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error {
	affected, err := r.queries.UpdateInvoice(ctx, tx, converter.InvoiceToUpdateParams(inv))
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status invoice.PaymentStatus, now time.Time) error {
	affected, err := r.queries.UpdateInvoiceStatus(ctx, tx, sqlc.UpdateInvoiceStatusParams{
		ID:            id,
		PaymentStatus: status.String(),
		UpdatedAt:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete returns the number of the removed invoice.
func (r *InvoiceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) (string, error) {
	number, err := r.queries.DeleteInvoice(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to delete invoice", err)
	}
	return number, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*invoice.Invoice, error) {
	row, err := r.queries.GetInvoice(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load invoice", err)
	}
	inv, err := converter.InvoiceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map invoice row", err)
	}
	return inv, nil
}
