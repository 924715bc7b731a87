package commands

import (
	"context"
	"log/slog"
	"strings"

	"gin-booking/internal/domain/auth"
	"gin-booking/internal/domain/identity"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/shared"
)

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*SignInResult, error)
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	SendPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, code, newPassword string) error
	SignOut(ctx context.Context, who *identity.Identity) (*access.Snapshot, error)
}

type RegisterRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type SignInResult struct {
	Session *shared.AuthSession
	Gate    access.Snapshot
}

type authCommandsImpl struct {
	gateway   shared.CredentialGateway
	customers shared.CustomerRepository
	sessions  *access.Sessions
	logger    *slog.Logger
}

func NewAuthCommands(gateway shared.CredentialGateway, customers shared.CustomerRepository, sessions *access.Sessions, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		gateway:   gateway,
		customers: customers,
		sessions:  sessions,
		logger:    logger,
	}
}

// Register creates the account and its customer profile, then signs in.
func (uc *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*SignInResult, error) {
	reg, err := auth.NewRegistration(req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	creds := reg.Credentials()

	created, err := uc.gateway.CreateUser(ctx, creds.Email().Value(), creds.Password(), reg.Name())
	if err != nil {
		return nil, err
	}

	email := created.Email
	if email == "" {
		email = creds.Email().Value()
	}
	if err := uc.customers.Create(ctx, created.UID, reg.Name(), email); err != nil {
		// without a customer record the account could sign in but never book
		if delErr := uc.gateway.DeleteUser(ctx, created.UID); delErr != nil {
			uc.logger.Error("failed to roll back account after customer create failed",
				"uid", created.UID, "error", delErr.Error())
		}
		return nil, err
	}
	uc.logger.Info("customer registered", "uid", created.UID)

	return uc.SignIn(ctx, creds.Email().Value(), creds.Password())
}

func (uc *authCommandsImpl) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	creds, err := auth.NewCredentials(email, password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	session, err := uc.gateway.SignIn(ctx, creds.Email().Value(), creds.Password())
	if err != nil {
		return nil, err
	}

	gate, err := uc.sessions.Open(ctx, &session.Identity)
	if err != nil {
		return nil, err
	}
	return &SignInResult{Session: session, Gate: gate.Snapshot()}, nil
}

func (uc *authCommandsImpl) SendPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.Mark(auth.ErrEmailRequired, errs.ErrDomainValidation)
	}
	return uc.gateway.SendPasswordResetEmail(ctx, strings.TrimSpace(email))
}

func (uc *authCommandsImpl) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	if strings.TrimSpace(code) == "" || newPassword == "" {
		return errs.Mark(auth.ErrFieldsRequired, errs.ErrDomainValidation)
	}
	return uc.gateway.ConfirmPasswordReset(ctx, code, newPassword)
}

// SignOut revokes the identity's sessions and returns the signed-out gate.
func (uc *authCommandsImpl) SignOut(ctx context.Context, who *identity.Identity) (*access.Snapshot, error) {
	if who.IsZero() {
		return nil, errs.ErrLoginRequired
	}

	gate, err := uc.sessions.Open(ctx, who)
	if err != nil {
		return nil, err
	}
	if err := uc.gateway.SignOut(ctx, who.UID); err != nil {
		return nil, err
	}
	if err := gate.SignOut(ctx); err != nil {
		return nil, err
	}
	snap := gate.Snapshot()
	return &snap, nil
}
