package queries

import (
	"context"

	"travel-backoffice/internal/infra"
	"travel-backoffice/internal/infra/filter"
	"travel-backoffice/internal/pkg/errs"
)

var ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, c filter.Criteria, p filter.Page) ([]*BookingView, error)
	Count(ctx context.Context, c filter.Criteria) (int64, error)
	Stats(ctx context.Context) (*BookingStats, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, c filter.Criteria, p filter.Page) (*BookingPage, error)
	Stats(ctx context.Context) (*BookingStats, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return b, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, c filter.Criteria, p filter.Page) (*BookingPage, error) {
	items, err := q.readStore.List(ctx, c, p)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	total, err := q.readStore.Count(ctx, c)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	if items == nil {
		items = []*BookingView{}
	}
	return &BookingPage{Items: items, Total: total, Limit: p.Limit, Offset: p.Offset}, nil
}

func (q *bookingQueriesImpl) Stats(ctx context.Context) (*BookingStats, error) {
	s, err := q.readStore.Stats(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return s, nil
}
