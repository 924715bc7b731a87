package access

import (
	"context"
	"log/slog"

	"gin-booking/internal/domain/identity"
)

type AdminChecker interface {
	Exists(ctx context.Context, uid string) (bool, error)
}

// RoleResolver maps an identity to its role. It never fails: a read error
// is logged and the identity is treated as a customer.
type RoleResolver struct {
	admins AdminChecker
	logger *slog.Logger
}

func NewRoleResolver(admins AdminChecker, logger *slog.Logger) *RoleResolver {
	return &RoleResolver{admins: admins, logger: logger}
}

func (r *RoleResolver) ResolveRole(ctx context.Context, id *identity.Identity) identity.Role {
	if id.IsZero() {
		return identity.RoleCustomer
	}

	ok, err := r.admins.Exists(ctx, id.UID)
	if err != nil {
		r.logger.Warn("role lookup failed, falling back to customer", "uid", id.UID, "error", err.Error())
		return identity.RoleCustomer
	}
	if ok {
		return identity.RoleAdmin
	}
	return identity.RoleCustomer
}
