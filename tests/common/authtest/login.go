//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"gin-booking/internal/handler/dto/request"
	"gin-booking/internal/handler/dto/response"
	"gin-booking/internal/pkg/cookie"
	"gin-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// RegisterUser signs up a customer and returns the issued session.
func RegisterUser(t *testing.T, router *gin.Engine, name, email, password string) response.LoginResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		request.RegisterRequest{Name: name, Email: email, Password: password, ConfirmPassword: password}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.NotEmpty(t, res.IDToken)
	return res
}

// LoginUser signs in and returns the session cookie value.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionTokenCookieName)
	require.NotNil(t, sessionCookie, "session cookie not found")
	require.NotEmpty(t, sessionCookie.Value, "session cookie is empty")

	return sessionCookie.Value
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) response.SessionResponse {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.SessionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}
