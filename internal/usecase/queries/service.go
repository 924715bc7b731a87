package queries

import (
	"context"

	"gin-booking/internal/infra"
	"gin-booking/internal/livequery"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/shared"
)

type ServiceQueries interface {
	ListServices(ctx context.Context) ([]*ServiceView, error)
	GetService(ctx context.Context, id string) (*ServiceView, error)
	WatchServices() *livequery.Live[*ServiceView]
}

type serviceQueriesImpl struct {
	repo shared.ServiceRepository
}

func NewServiceQueries(repo shared.ServiceRepository) ServiceQueries {
	return &serviceQueriesImpl{repo: repo}
}

// ListServices is ordered by name.
func (q *serviceQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	list, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toServiceView), nil
}

func (q *serviceQueriesImpl) GetService(ctx context.Context, id string) (*ServiceView, error) {
	svc, err := q.repo.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, err
	}
	return toServiceView(svc), nil
}

func (q *serviceQueriesImpl) WatchServices() *livequery.Live[*ServiceView] {
	return livequery.Map(q.repo.Watch(), toServiceView)
}
