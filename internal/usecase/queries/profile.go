package queries

import (
	"context"

	"gin-booking/internal/domain/admin"
	"gin-booking/internal/domain/identity"
	"gin-booking/internal/infra"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/shared"
)

type ProfileQueries interface {
	GetCustomerProfile(ctx context.Context, who *identity.Identity) (*CustomerView, error)
	GetAdminProfile(ctx context.Context, who *identity.Identity) (*AdminProfileView, error)
}

type profileQueriesImpl struct {
	customers shared.CustomerRepository
	admins    shared.AdminRepository
}

func NewProfileQueries(customers shared.CustomerRepository, admins shared.AdminRepository) ProfileQueries {
	return &profileQueriesImpl{customers: customers, admins: admins}
}

func (q *profileQueriesImpl) GetCustomerProfile(ctx context.Context, who *identity.Identity) (*CustomerView, error) {
	if who.IsZero() {
		return nil, errs.ErrLoginRequired
	}
	p, err := q.customers.Get(ctx, who.UID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProfileNotFound
		}
		return nil, err
	}
	return toCustomerView(p), nil
}

// GetAdminProfile falls back to the account's display name when the admin record has none.
func (q *profileQueriesImpl) GetAdminProfile(ctx context.Context, who *identity.Identity) (*AdminProfileView, error) {
	if who.IsZero() {
		return nil, errs.ErrLoginRequired
	}
	p, err := q.admins.Get(ctx, who.UID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProfileNotFound
		}
		return nil, err
	}
	if p.DisplayName() == "" && who.DisplayName != "" {
		p = admin.Reconstruct(p.UID(), who.DisplayName)
	}
	return toAdminProfileView(p, who.Email), nil
}
