package commands

import (
	"context"

	"gin-booking/internal/domain/admin"
	"gin-booking/internal/domain/customer"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/shared"
)

type ProfileCommands interface {
	UpdateCustomerName(ctx context.Context, uid, name string) error
	UpdateAdminDisplayName(ctx context.Context, uid, displayName string) error
}

type profileCommandsImpl struct {
	customers shared.CustomerRepository
	admins    shared.AdminRepository
	gateway   shared.CredentialGateway
}

func NewProfileCommands(customers shared.CustomerRepository, admins shared.AdminRepository, gateway shared.CredentialGateway) ProfileCommands {
	return &profileCommandsImpl{customers: customers, admins: admins, gateway: gateway}
}

func (uc *profileCommandsImpl) UpdateCustomerName(ctx context.Context, uid, name string) error {
	n, err := customer.NewName(name)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return uc.customers.UpdateName(ctx, uid, n)
}

// UpdateAdminDisplayName writes the admin record first, then the account name.
func (uc *profileCommandsImpl) UpdateAdminDisplayName(ctx context.Context, uid, displayName string) error {
	n, err := admin.NewDisplayName(displayName)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := uc.admins.SetDisplayName(ctx, uid, n); err != nil {
		return err
	}
	return uc.gateway.UpdateDisplayName(ctx, uid, n)
}
