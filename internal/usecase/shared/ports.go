package shared

import (
	"context"

	"gin-booking/internal/domain/admin"
	"gin-booking/internal/domain/customer"
	"gin-booking/internal/domain/identity"
	"gin-booking/internal/domain/service"
	"gin-booking/internal/domain/transaction"
	"gin-booking/internal/livequery"
)

type AdminRepository interface {
	// Exists reports whether admins/{uid} is present; that alone grants the admin role.
	Exists(ctx context.Context, uid string) (bool, error)
	Get(ctx context.Context, uid string) (*admin.Profile, error)
	SetDisplayName(ctx context.Context, uid, displayName string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, uid, name, email string) error
	Get(ctx context.Context, uid string) (*customer.Profile, error)
	UpdateName(ctx context.Context, uid, name string) error
	List(ctx context.Context) ([]*customer.Profile, error)
	Watch() *livequery.Live[*customer.Profile]
}

type ServiceRepository interface {
	List(ctx context.Context) ([]*service.Service, error)
	Get(ctx context.Context, id string) (*service.Service, error)
	Create(ctx context.Context, svc *service.Service) (string, error)
	Update(ctx context.Context, id string, changes service.Changes) error
	Delete(ctx context.Context, id string) error
	Watch() *livequery.Live[*service.Service]
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *transaction.Transaction) (string, error)
	Get(ctx context.Context, id string) (*transaction.Transaction, error)
	SetStatus(ctx context.Context, id string, status transaction.Status) error
	ListAll(ctx context.Context) ([]*transaction.Transaction, error)
	ListByUser(ctx context.Context, uid string) ([]*transaction.Transaction, error)
	WatchAll() *livequery.Live[*transaction.Transaction]
	WatchByUser(uid string) *livequery.Live[*transaction.Transaction]
}

// CredentialGateway is the managed authentication provider.
type CredentialGateway interface {
	SignIn(ctx context.Context, email, password string) (*AuthSession, error)
	CreateUser(ctx context.Context, email, password, displayName string) (*identity.Identity, error)
	// DeleteUser removes the account; it rolls back a registration that failed halfway.
	DeleteUser(ctx context.Context, uid string) error
	SendPasswordResetEmail(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, code, newPassword string) error
	// SignOut revokes every session token issued to uid.
	SignOut(ctx context.Context, uid string) error
	TokenVerifier
	UpdateDisplayName(ctx context.Context, uid, displayName string) error
}

type TokenVerifier interface {
	// VerifyToken resolves a session token to the identity it was issued for.
	VerifyToken(ctx context.Context, token string) (*identity.Identity, error)
}
