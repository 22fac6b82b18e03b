package queries

import (
	"context"

	"travel-backoffice/internal/pkg/errs"
)

type UserReadStore interface {
	List(ctx context.Context) ([]*UserView, error)
}

type UserQueries interface {
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	users, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	if users == nil {
		users = []*UserView{}
	}
	return users, nil
}
