package commands

import (
	"context"

	"gin-booking/internal/domain/service"
	"gin-booking/internal/infra"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/shared"
)

type ServiceCommands interface {
	CreateService(ctx context.Context, req CreateServiceRequest) (*CreateServiceResult, error)
	UpdateService(ctx context.Context, id string, patch service.Patch) error
	DeleteService(ctx context.Context, id string) error
}

type CreateServiceRequest struct {
	Name        string
	Description string
	Price       string
}

type CreateServiceResult struct {
	ServiceID string
}

type serviceCommandsImpl struct {
	services shared.ServiceRepository
}

func NewServiceCommands(services shared.ServiceRepository) ServiceCommands {
	return &serviceCommandsImpl{services: services}
}

// CreateService validates every field before anything is written.
func (uc *serviceCommandsImpl) CreateService(ctx context.Context, req CreateServiceRequest) (*CreateServiceResult, error) {
	svc, err := service.NewService(req.Name, req.Description, req.Price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := uc.services.Create(ctx, svc)
	if err != nil {
		return nil, err
	}
	return &CreateServiceResult{ServiceID: id}, nil
}

func (uc *serviceCommandsImpl) UpdateService(ctx context.Context, id string, patch service.Patch) error {
	changes, err := patch.Validate()
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := uc.services.Update(ctx, id, changes); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrServiceNotFound
		}
		return err
	}
	return nil
}

// DeleteService succeeds for an id that no longer exists.
func (uc *serviceCommandsImpl) DeleteService(ctx context.Context, id string) error {
	return uc.services.Delete(ctx, id)
}
