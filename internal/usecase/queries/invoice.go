package queries

import (
	"context"

	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/filter"
	"travel-backoffice/internal/pkg/errs"
)

var ErrInvoiceNotFound = errs.Mark(errs.New("invoice not found"), errs.ErrNotFound)

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id int64) (*InvoiceView, error)
	List(ctx context.Context, c filter.Criteria, p filter.Page) ([]*InvoiceView, error)
	Count(ctx context.Context, c filter.Criteria) (int64, error)
	Stats(ctx context.Context) (*InvoiceStats, error)
}

type InvoiceQueries interface {
	GetByID(ctx context.Context, id int64) (*InvoiceView, error)
	List(ctx context.Context, c filter.Criteria, p filter.Page) (*InvoicePage, error)
	Stats(ctx context.Context) (*InvoiceStats, error)
}

type invoiceQueriesImpl struct {
	readStore InvoiceReadStore
}

func NewInvoiceQueries(readStore InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{readStore: readStore}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, id int64) (*InvoiceView, error) {
	inv, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return inv, nil
}

func (q *invoiceQueriesImpl) List(ctx context.Context, c filter.Criteria, p filter.Page) (*InvoicePage, error) {
	items, err := q.readStore.List(ctx, c, p)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	total, err := q.readStore.Count(ctx, c)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	if items == nil {
		items = []*InvoiceView{}
	}
	return &InvoicePage{Items: items, Total: total, Limit: p.Limit, Offset: p.Offset}, nil
}

func (q *invoiceQueriesImpl) Stats(ctx context.Context) (*InvoiceStats, error) {
	s, err := q.readStore.Stats(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return s, nil
}
