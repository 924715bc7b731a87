//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gin-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// ForeignToken signs a session token with a secret the server does not know.
func ForeignToken(t *testing.T, uid, email string) string {
	t.Helper()
	service := jwt.NewService("not-the-server-secret", time.Hour, time.Hour)
	token, err := service.GenerateSessionToken(uid, email, "", 0)
	require.NoError(t, err)
	return token
}
