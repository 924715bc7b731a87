package shared

import (
	"errors"
	"time"

	"gin-booking/internal/domain/identity"
)

var ErrInvalidSession = errors.New("invalid or expired session")

type AuthSession struct {
	Identity     identity.Identity
	IDToken      string
	RefreshToken string
	ExpiresIn    time.Duration
}

// AuthError is a provider-reported authentication failure. Message is shown to the user as is.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Code + ": " + e.Message
}

func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

const (
	AuthCodeEmailExists        = "EMAIL_EXISTS"
	AuthCodeInvalidCredentials = "INVALID_LOGIN_CREDENTIALS"
	AuthCodeEmailNotFound      = "EMAIL_NOT_FOUND"
	AuthCodeWeakPassword       = "WEAK_PASSWORD"
	AuthCodeInvalidEmail       = "INVALID_EMAIL"
	AuthCodeInvalidOobCode     = "INVALID_OOB_CODE"
	AuthCodeExpiredOobCode     = "EXPIRED_OOB_CODE"
)
