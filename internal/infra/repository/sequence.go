package repository

import (
	"context"

	"travel-backoffice/internal/infra"
	sqlc "travel-backoffice/internal/infra/sqlc/generated"
	"travel-backoffice/internal/pkg/pgconv"
)

type SequenceQueries interface {
	ReserveSequenceValue(ctx context.Context, db sqlc.DBTX, name string) (int64, error)
}

type InvoiceSequenceRepository struct {
	queries SequenceQueries
	db      sqlc.DBTX
}

func NewInvoiceSequenceRepository(queries SequenceQueries, db sqlc.DBTX) *InvoiceSequenceRepository {
	return &InvoiceSequenceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceSequenceRepository) Reserve(ctx context.Context, tx sqlc.DBTX, name string) (int64, error) {
	v, err := r.queries.ReserveSequenceValue(ctx, tx, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("sequence "+name+" not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to reserve sequence value", err)
	}
	return v, nil
}
