package repository

import (
	"context"
	"log/slog"

	"gin-booking/internal/domain/service"
	"gin-booking/internal/infra"
	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/repository/converter"
	"gin-booking/internal/livequery"
)

type ServiceRepository struct {
	store  docstore.Store
	logger *slog.Logger
}

func NewServiceRepository(store docstore.Store, logger *slog.Logger) *ServiceRepository {
	return &ServiceRepository{store: store, logger: logger}
}

func (r *ServiceRepository) List(ctx context.Context) ([]*service.Service, error) {
	docs, err := r.store.Query(ctx, servicesQuery())
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "failed to list services", err)
	}
	return mapDocuments(docs, converter.ServiceFromDocument)
}

func (r *ServiceRepository) Get(ctx context.Context, id string) (*service.Service, error) {
	doc, err := r.store.Get(ctx, converter.CollectionServices, id)
	if err != nil {
		return nil, infra.FromStoreErr(r.logger, "service not found", err)
	}
	return converter.ServiceFromDocument(doc)
}

func (r *ServiceRepository) Create(ctx context.Context, svc *service.Service) (string, error) {
	id, err := r.store.Add(ctx, converter.CollectionServices, svc.Fields())
	if err != nil {
		return "", infra.FromStoreErr(r.logger, "failed to create service", err)
	}
	return id, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, changes service.Changes) error {
	err := r.store.Update(ctx, converter.CollectionServices, id, changes.Fields())
	return infra.FromStoreErr(r.logger, "failed to update service", err)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	err := r.store.Delete(ctx, converter.CollectionServices, id)
	return infra.FromStoreErr(r.logger, "failed to delete service", err)
}

func (r *ServiceRepository) Watch() *livequery.Live[*service.Service] {
	return livequery.New(r.store, servicesQuery(), converter.ServiceFromDocument)
}

func servicesQuery() docstore.Query {
	return docstore.NewQuery(converter.CollectionServices).Ordered(converter.FieldName, docstore.Asc)
}
