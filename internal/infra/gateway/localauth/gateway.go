// Package localauth is a self-hosted credential gateway: accounts live in
// the document store, sessions are HS256 tokens, and sign-out bumps the
// account's session generation so older tokens stop verifying.
package localauth

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"gin-booking/internal/domain/identity"
	"gin-booking/internal/infra/mailer"
	"gin-booking/internal/infra/repository"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/pkg/jwt"
	"gin-booking/internal/pkg/password"
	"gin-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccountStore interface {
	Create(ctx context.Context, acc repository.Account) error
	Get(ctx context.Context, uid string) (*repository.Account, error)
	FindByEmail(ctx context.Context, email string) (*repository.Account, error)
	SetPassword(ctx context.Context, uid, passwordHash string) error
	BumpGeneration(ctx context.Context, uid string) error
	SetDisplayName(ctx context.Context, uid, displayName string) error
	Delete(ctx context.Context, uid string) error
}

type Gateway struct {
	accounts AccountStore
	tokens   *jwt.Service
	mailer   mailer.Mailer
	resetURL string
	logger   *slog.Logger
}

var _ shared.CredentialGateway = (*Gateway)(nil)

func New(accounts AccountStore, tokens *jwt.Service, m mailer.Mailer, resetURL string, logger *slog.Logger) *Gateway {
	return &Gateway{
		accounts: accounts,
		tokens:   tokens,
		mailer:   m,
		resetURL: resetURL,
		logger:   logger,
	}
}

var (
	errInvalidCredentials = &shared.AuthError{Code: shared.AuthCodeInvalidCredentials, Message: "The email or password is incorrect."}
	errEmailExists        = &shared.AuthError{Code: shared.AuthCodeEmailExists, Message: "The email address is already in use by another account."}
	errEmailNotFound      = &shared.AuthError{Code: shared.AuthCodeEmailNotFound, Message: "There is no user record corresponding to this email."}
	errWeakPassword       = &shared.AuthError{Code: shared.AuthCodeWeakPassword, Message: "Password should be at least 6 characters."}
	errInvalidCode        = &shared.AuthError{Code: shared.AuthCodeInvalidOobCode, Message: "The password reset code is invalid. It may have been used already."}
	errExpiredCode        = &shared.AuthError{Code: shared.AuthCodeExpiredOobCode, Message: "The password reset code has expired."}
)

func (g *Gateway) SignIn(ctx context.Context, email, pw string) (*shared.AuthSession, error) {
	acc, err := g.accounts.FindByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if err := password.ComparePassword(acc.PasswordHash, pw); err != nil {
		return nil, errInvalidCredentials
	}

	token, err := g.tokens.GenerateSessionToken(acc.UID, acc.Email, acc.DisplayName, acc.SessionGeneration)
	if err != nil {
		return nil, errs.Wrap(err, "issue session token")
	}
	return &shared.AuthSession{
		Identity:  accountIdentity(acc),
		IDToken:   token,
		ExpiresIn: g.tokens.TokenDuration(),
	}, nil
}

func (g *Gateway) CreateUser(ctx context.Context, email, pw, displayName string) (*identity.Identity, error) {
	hash, err := password.HashPassword(pw)
	if err != nil {
		if errors.Is(err, password.ErrTooShort) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, errWeakPassword
		}
		return nil, errs.Wrap(err, "hash password")
	}

	acc := repository.Account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	}
	if err := g.accounts.Create(ctx, acc); err != nil {
		if repository.IsDuplicate(err) {
			return nil, errEmailExists
		}
		return nil, err
	}

	created, err := g.accounts.Get(ctx, acc.UID)
	if err != nil {
		return nil, err
	}
	g.logger.Info("account created", "uid", created.UID)
	id := accountIdentity(created)
	return &id, nil
}

func (g *Gateway) DeleteUser(ctx context.Context, uid string) error {
	if err := g.accounts.Delete(ctx, uid); err != nil {
		return err
	}
	g.logger.Info("account deleted", "uid", uid)
	return nil
}

func (g *Gateway) SendPasswordResetEmail(ctx context.Context, email string) error {
	acc, err := g.accounts.FindByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return errEmailNotFound
		}
		return err
	}

	code, err := g.tokens.GenerateResetToken(acc.UID, acc.Email, acc.SessionGeneration)
	if err != nil {
		return errs.Wrap(err, "issue reset code")
	}
	return g.mailer.SendPasswordReset(ctx, acc.Email, g.resetLink(code))
}

// ConfirmPasswordReset accepts a code once: the new password bumps the
// generation the code was bound to.
func (g *Gateway) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	claims, err := g.tokens.ValidateToken(code, jwt.PurposePasswordReset)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return errExpiredCode
		}
		return errInvalidCode
	}

	acc, err := g.accounts.Get(ctx, claims.UID)
	if err != nil {
		if repository.IsNotFound(err) {
			return errInvalidCode
		}
		return err
	}
	if acc.SessionGeneration != claims.Generation {
		return errInvalidCode
	}

	hash, err := password.HashPassword(newPassword)
	if err != nil {
		if errors.Is(err, password.ErrTooShort) || errors.Is(err, password.ErrInvalidPassword) {
			return errWeakPassword
		}
		return errs.Wrap(err, "hash password")
	}
	return g.accounts.SetPassword(ctx, acc.UID, hash)
}

func (g *Gateway) SignOut(ctx context.Context, uid string) error {
	return g.accounts.BumpGeneration(ctx, uid)
}

func (g *Gateway) VerifyToken(ctx context.Context, token string) (*identity.Identity, error) {
	claims, err := g.tokens.ValidateToken(token, jwt.PurposeSession)
	if err != nil {
		return nil, shared.ErrInvalidSession
	}

	acc, err := g.accounts.Get(ctx, claims.UID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, shared.ErrInvalidSession
		}
		return nil, err
	}
	if acc.SessionGeneration != claims.Generation {
		return nil, shared.ErrInvalidSession
	}

	id := accountIdentity(acc)
	return &id, nil
}

func (g *Gateway) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	return g.accounts.SetDisplayName(ctx, uid, displayName)
}

func (g *Gateway) resetLink(code string) string {
	u, err := url.Parse(g.resetURL)
	if err != nil {
		return g.resetURL + "?code=" + url.QueryEscape(code)
	}
	q := u.Query()
	q.Set("code", code)
	u.RawQuery = q.Encode()
	return u.String()
}

func accountIdentity(acc *repository.Account) identity.Identity {
	return identity.Identity{
		UID:         acc.UID,
		Email:       acc.Email,
		DisplayName: acc.DisplayName,
	}
}
