package repository

import (
	"context"
	"log/slog"

	"gin-booking/internal/domain/customer"
	"gin-booking/internal/infra"
	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/repository/converter"
	"gin-booking/internal/livequery"
)

type CustomerRepository struct {
	store  docstore.Store
	logger *slog.Logger
}

func NewCustomerRepository(store docstore.Store, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{store: store, logger: logger}
}

func (r *CustomerRepository) Create(ctx context.Context, uid, name, email string) error {
	err := r.store.Set(ctx, converter.CollectionCustomers, uid, map[string]any{
		converter.FieldName:      name,
		converter.FieldEmail:     email,
		converter.FieldCreatedAt: docstore.ServerTimestamp,
	})
	return infra.FromStoreErr(r.logger, "failed to create customer profile", err)
}

func (r *CustomerRepository) Get(ctx context.Context, uid string) (*customer.Profile, error) {
	doc, err := r.store.Get(ctx, converter.CollectionCustomers, uid)
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "customer not found", err)
	}
	return converter.CustomerFromDocument(doc)
}

func (r *CustomerRepository) UpdateName(ctx context.Context, uid, name string) error {
	err := r.store.Set(ctx, converter.CollectionCustomers, uid,
		map[string]any{converter.FieldName: name}, docstore.Merge)
	return infra.FromStoreErr(r.logger, "failed to update customer name", err)
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Profile, error) {
	docs, err := r.store.Query(ctx, customersQuery())
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "failed to list customers", err)
	}
	return mapDocuments(docs, converter.CustomerFromDocument)
}

func (r *CustomerRepository) Watch() *livequery.Live[*customer.Profile] {
	return livequery.New(r.store, customersQuery(), converter.CustomerFromDocument)
}

func customersQuery() docstore.Query {
	return docstore.NewQuery(converter.CollectionCustomers)
}
