package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"gin-booking/internal/domain/identity"
	"gin-booking/internal/handler/httperr"
	"gin-booking/internal/pkg/cookie"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/pkg/i18n"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	ctxIdentityKey = "identity"
	ctxGateKey     = "gate"

	// ClientIDHeader distinguishes browser tabs of one user for live streams.
	ClientIDHeader = "X-Client-Id"

	// PromptLoginRequired tells clients to show the login screen.
	PromptLoginRequired = "login_required"
)

var errScreenNotAllowed = errors.New("screen not allowed for role")

type AuthMiddleware struct {
	verifier shared.TokenVerifier
	sessions *access.Sessions
	logger   *slog.Logger
}

func NewAuthMiddleware(verifier shared.TokenVerifier, sessions *access.Sessions, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
}

// Authenticate resolves the caller's identity and opens its gate. A missing
// or rejected token leaves the request signed out; guards decide what that means.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var who *identity.Identity
		if token := extractToken(c); token != "" {
			id, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Warn("token verification failed", "error", err.Error())
			} else {
				who = id
				c.Set(ctxIdentityKey, id)
			}
		}

		gate, err := m.sessions.Open(ctx, who)
		if err != nil {
			httperr.AbortLocalized(c, http.StatusInternalServerError, err, i18n.MsgSessionLoadFailed, nil)
			return
		}
		c.Set(ctxGateKey, gate)
		c.Next()
	}
}

// RequireAuth rejects signed-out callers with the login prompt.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		gate, ok := GetGate(c)
		if !ok || !gate.IsAuthenticated() {
			abortLoginRequired(c)
			return
		}
		c.Next()
	}
}

// RequireScreen admits only signed-in callers whose mounted tree contains screen.
func (m *AuthMiddleware) RequireScreen(screen access.Screen) gin.HandlerFunc {
	return func(c *gin.Context) {
		gate, ok := GetGate(c)
		if !ok || !gate.IsAuthenticated() {
			abortLoginRequired(c)
			return
		}
		if !gate.Allows(screen) {
			httperr.AbortLocalized(c, http.StatusForbidden, errScreenNotAllowed, i18n.MsgScreenUnavailable,
				gin.H{"screen": screen, "state": gate.State()})
			return
		}
		c.Next()
	}
}

// AllowScreen lets signed-out callers through to the handler; signed-in
// callers still need screen in their tree.
func (m *AuthMiddleware) AllowScreen(screen access.Screen) gin.HandlerFunc {
	return func(c *gin.Context) {
		gate, ok := GetGate(c)
		if ok && gate.IsAuthenticated() && !gate.Allows(screen) {
			httperr.AbortLocalized(c, http.StatusForbidden, errScreenNotAllowed, i18n.MsgScreenUnavailable,
				gin.H{"screen": screen, "state": gate.State()})
			return
		}
		c.Next()
	}
}

func abortLoginRequired(c *gin.Context) {
	httperr.AbortLocalized(c, http.StatusUnauthorized, errs.ErrLoginRequired, i18n.MsgUnauthorized,
		gin.H{"prompt": PromptLoginRequired})
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetIdentity returns the verified caller; nil when signed out.
func GetIdentity(c *gin.Context) *identity.Identity {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return nil
	}
	id, _ := v.(*identity.Identity)
	return id
}

func GetGate(c *gin.Context) (*access.Gate, bool) {
	v, exists := c.Get(ctxGateKey)
	if !exists {
		return nil, false
	}
	gate, ok := v.(*access.Gate)
	return gate, ok
}

// SetIdentity stores a verified caller; used by tests that bypass token checks.
func SetIdentity(c *gin.Context, id *identity.Identity) {
	c.Set(ctxIdentityKey, id)
}

// SetGate stores a settled gate; used by tests that bypass token checks.
func SetGate(c *gin.Context, gate *access.Gate) {
	c.Set(ctxGateKey, gate)
}
