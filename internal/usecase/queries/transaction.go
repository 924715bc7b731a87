package queries

import (
	"context"

	"gin-booking/internal/infra"
	"gin-booking/internal/livequery"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/shared"
)

type TransactionQueries interface {
	ListTransactions(ctx context.Context) ([]*TransactionView, error)
	GetTransaction(ctx context.Context, id string) (*TransactionView, error)
	WatchTransactions() *livequery.Live[*TransactionView]
	ListAppointments(ctx context.Context, uid string) ([]*TransactionView, error)
	WatchAppointments(uid string) *livequery.Live[*TransactionView]
}

type transactionQueriesImpl struct {
	repo shared.TransactionRepository
}

func NewTransactionQueries(repo shared.TransactionRepository) TransactionQueries {
	return &transactionQueriesImpl{repo: repo}
}

// ListTransactions is newest first.
func (q *transactionQueriesImpl) ListTransactions(ctx context.Context) ([]*TransactionView, error) {
	list, err := q.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toTransactionView), nil
}

func (q *transactionQueriesImpl) GetTransaction(ctx context.Context, id string) (*TransactionView, error) {
	tx, err := q.repo.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, err
	}
	return toTransactionView(tx), nil
}

func (q *transactionQueriesImpl) WatchTransactions() *livequery.Live[*TransactionView] {
	return livequery.Map(q.repo.WatchAll(), toTransactionView)
}

// ListAppointments returns the customer's own transactions, newest first.
func (q *transactionQueriesImpl) ListAppointments(ctx context.Context, uid string) ([]*TransactionView, error) {
	list, err := q.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toTransactionView), nil
}

func (q *transactionQueriesImpl) WatchAppointments(uid string) *livequery.Live[*TransactionView] {
	return livequery.Map(q.repo.WatchByUser(uid), toTransactionView)
}
