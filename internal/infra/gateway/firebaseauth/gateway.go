// Package firebaseauth implements the credential gateway on Firebase
// Authentication: the Admin SDK for token checks and account management,
// the Identity Toolkit REST API for password flows.
package firebaseauth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gin-booking/internal/domain/identity"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/pkg/password"
	"gin-booking/internal/usecase/shared"

	"firebase.google.com/go/v4/auth"
)

// AdminClient is the subset of *auth.Client the gateway uses.
type AdminClient interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

var _ AdminClient = (*auth.Client)(nil)

type Gateway struct {
	admin  AdminClient
	rest   *restClient
	logger *slog.Logger
}

var _ shared.CredentialGateway = (*Gateway)(nil)

func New(admin AdminClient, baseURL, apiKey string, logger *slog.Logger) *Gateway {
	return &Gateway{
		admin:  admin,
		rest:   newRestClient(baseURL, apiKey),
		logger: logger,
	}
}

func (g *Gateway) SignIn(ctx context.Context, email, pw string) (*shared.AuthSession, error) {
	var out signInResponse
	err := g.rest.post(ctx, "/accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          pw,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return nil, err
	}

	return &shared.AuthSession{
		Identity: identity.Identity{
			UID:         out.LocalID,
			Email:       out.Email,
			DisplayName: out.DisplayName,
		},
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    out.expiresIn(),
	}, nil
}

func (g *Gateway) CreateUser(ctx context.Context, email, pw, displayName string) (*identity.Identity, error) {
	if len(pw) < password.MinLength {
		return nil, authError(codeWeakPassword)
	}

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(pw)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	rec, err := g.admin.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, authError(shared.AuthCodeEmailExists)
		}
		return nil, errs.Wrap(err, "create firebase user")
	}
	return &identity.Identity{
		UID:         rec.UID,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
	}, nil
}

func (g *Gateway) DeleteUser(ctx context.Context, uid string) error {
	if err := g.admin.DeleteUser(ctx, uid); err != nil && !auth.IsUserNotFound(err) {
		return errs.Wrap(err, "delete firebase user")
	}
	return nil
}

func (g *Gateway) SendPasswordResetEmail(ctx context.Context, email string) error {
	return g.rest.post(ctx, "/accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

func (g *Gateway) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	return g.rest.post(ctx, "/accounts:resetPassword", map[string]any{
		"oobCode":     code,
		"newPassword": newPassword,
	}, nil)
}

// SignOut revokes the refresh tokens; VerifyToken rejects ID tokens issued before.
func (g *Gateway) SignOut(ctx context.Context, uid string) error {
	if err := g.admin.RevokeRefreshTokens(ctx, uid); err != nil {
		return errs.Wrap(err, "revoke firebase refresh tokens")
	}
	return nil
}

func (g *Gateway) VerifyToken(ctx context.Context, token string) (*identity.Identity, error) {
	tok, err := g.admin.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		g.logger.Debug("firebase id token rejected", "error", err.Error())
		return nil, shared.ErrInvalidSession
	}

	id := &identity.Identity{UID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		id.Email = email
	}
	if name, ok := tok.Claims["name"].(string); ok {
		id.DisplayName = name
	}
	return id, nil
}

func (g *Gateway) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	if _, err := g.admin.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).DisplayName(displayName)); err != nil {
		return errs.Wrap(err, "update firebase display name")
	}
	return nil
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

func (r signInResponse) expiresIn() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(r.ExpiresIn) + "s")
	if err != nil {
		return 0
	}
	return d
}
