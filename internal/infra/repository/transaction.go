package repository

import (
	"context"
	"log/slog"

	"gin-booking/internal/domain/transaction"
	"gin-booking/internal/infra"
	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/repository/converter"
	"gin-booking/internal/livequery"
)

type TransactionRepository struct {
	store  docstore.Store
	logger *slog.Logger
}

func NewTransactionRepository(store docstore.Store, logger *slog.Logger) *TransactionRepository {
	return &TransactionRepository{store: store, logger: logger}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) (string, error) {
	id, err := r.store.Add(ctx, converter.CollectionTransactions, converter.TransactionToFields(tx))
	if err != nil {
		return "", infra.FromStoreErr(r.logger, "failed to create transaction", err)
	}
	return id, nil
}

func (r *TransactionRepository) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	doc, err := r.store.Get(ctx, converter.CollectionTransactions, id)
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "transaction not found", err)
	}
	return converter.TransactionFromDocument(doc)
}

func (r *TransactionRepository) SetStatus(ctx context.Context, id string, status transaction.Status) error {
	err := r.store.Update(ctx, converter.CollectionTransactions, id,
		map[string]any{converter.FieldStatus: status.String()})
	return infra.FromStoreErr(r.logger, "failed to update transaction status", err)
}

func (r *TransactionRepository) ListAll(ctx context.Context) ([]*transaction.Transaction, error) {
	docs, err := r.store.Query(ctx, allTransactionsQuery())
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "failed to list transactions", err)
	}
	return mapDocuments(docs, converter.TransactionFromDocument)
}

func (r *TransactionRepository) ListByUser(ctx context.Context, uid string) ([]*transaction.Transaction, error) {
	docs, err := r.store.Query(ctx, userTransactionsQuery(uid))
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "failed to list user transactions", err)
	}
	docstore.Sort(docs, newestFirst)
	return mapDocuments(docs, converter.TransactionFromDocument)
}

func (r *TransactionRepository) WatchAll() *livequery.Live[*transaction.Transaction] {
	return livequery.New(r.store, allTransactionsQuery(), converter.TransactionFromDocument)
}

func (r *TransactionRepository) WatchByUser(uid string) *livequery.Live[*transaction.Transaction] {
	return livequery.New(r.store, userTransactionsQuery(uid), converter.TransactionFromDocument).
		SortedLocally(newestFirst.Field, newestFirst.Direction)
}

func allTransactionsQuery() docstore.Query {
	return docstore.NewQuery(converter.CollectionTransactions).Ordered(converter.FieldCreatedAt, docstore.Desc)
}

var newestFirst = docstore.Order{Field: converter.FieldCreatedAt, Direction: docstore.Desc}

// userTransactionsQuery filters only. Filter plus order would need a composite
// index on Firestore, so callers sort with newestFirst in process.
func userTransactionsQuery(uid string) docstore.Query {
	return docstore.NewQuery(converter.CollectionTransactions).
		WhereEqual(converter.FieldUserID, uid)
}
