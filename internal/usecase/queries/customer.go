package queries

import (
	"context"

	"gin-booking/internal/livequery"
	"gin-booking/internal/usecase/shared"
)

type CustomerQueries interface {
	ListCustomers(ctx context.Context) ([]*CustomerView, error)
	WatchCustomers() *livequery.Live[*CustomerView]
}

type customerQueriesImpl struct {
	repo shared.CustomerRepository
}

func NewCustomerQueries(repo shared.CustomerRepository) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) ListCustomers(ctx context.Context) ([]*CustomerView, error) {
	list, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toCustomerView), nil
}

func (q *customerQueriesImpl) WatchCustomers() *livequery.Live[*CustomerView] {
	return livequery.Map(q.repo.Watch(), toCustomerView)
}
