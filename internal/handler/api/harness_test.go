//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"gin-booking/internal/domain/identity"
	"gin-booking/internal/handler"
	"gin-booking/internal/handler/api"
	"gin-booking/internal/handler/dto/request"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/livequery"
	"gin-booking/internal/pkg/config"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/shared"
	commandsmock "gin-booking/tests/mock/commands"
	queriesmock "gin-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	adminToken    = "admin-token"
	customerToken = "customer-token"
)

var (
	adminID    = &identity.Identity{UID: "u1", Email: "boss@example.com", DisplayName: "Boss"}
	customerID = &identity.Identity{UID: "u2", Email: "lan@example.com"}
	discard    = slog.New(slog.DiscardHandler)
)

// tokenTable verifies the two fixed test tokens.
type tokenTable struct{}

func (tokenTable) VerifyToken(_ context.Context, token string) (*identity.Identity, error) {
	switch token {
	case adminToken:
		return adminID, nil
	case customerToken:
		return customerID, nil
	default:
		return nil, shared.ErrInvalidSession
	}
}

// roleTable grants admin to u1 only.
type roleTable struct{}

func (roleTable) ResolveRole(_ context.Context, id *identity.Identity) identity.Role {
	if id != nil && id.UID == adminID.UID {
		return identity.RoleAdmin
	}
	return identity.RoleCustomer
}

type harness struct {
	router  *gin.Engine
	tracker *livequery.Tracker

	authCmds    *commandsmock.MockAuthCommands
	serviceCmds *commandsmock.MockServiceCommands
	orderCmds   *commandsmock.MockOrderCommands
	txCmds      *commandsmock.MockTransactionCommands
	profileCmds *commandsmock.MockProfileCommands

	sessionQ  *queriesmock.MockSessionQueries
	serviceQ  *queriesmock.MockServiceQueries
	txQ       *queriesmock.MockTransactionQueries
	customerQ *queriesmock.MockCustomerQueries
	profileQ  *queriesmock.MockProfileQueries
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, request.RegisterValidators())
	ctrl := gomock.NewController(t)

	h := &harness{
		router:      gin.New(),
		tracker:     livequery.NewTracker(discard),
		authCmds:    commandsmock.NewMockAuthCommands(ctrl),
		serviceCmds: commandsmock.NewMockServiceCommands(ctrl),
		orderCmds:   commandsmock.NewMockOrderCommands(ctrl),
		txCmds:      commandsmock.NewMockTransactionCommands(ctrl),
		profileCmds: commandsmock.NewMockProfileCommands(ctrl),
		sessionQ:    queriesmock.NewMockSessionQueries(ctrl),
		serviceQ:    queriesmock.NewMockServiceQueries(ctrl),
		txQ:         queriesmock.NewMockTransactionQueries(ctrl),
		customerQ:   queriesmock.NewMockCustomerQueries(ctrl),
		profileQ:    queriesmock.NewMockProfileQueries(ctrl),
	}

	cfg := config.NewTestConfig()
	streams := api.NewStreamer(h.tracker, discard)
	sessions := access.NewSessions(roleTable{}, discard)

	handler.NewRouter(h.router, cfg, handler.Handlers{
		Auth:          api.NewAuthHandler(h.authCmds, h.sessionQ, cfg),
		Service:       api.NewServiceHandler(h.serviceCmds, h.serviceQ, streams),
		Order:         api.NewOrderHandler(h.orderCmds),
		Transaction:   api.NewTransactionHandler(h.txCmds, h.txQ, streams),
		Customer:      api.NewCustomerHandler(h.customerQ, streams),
		Profile:       api.NewProfileHandler(h.profileCmds, h.profileQ),
		AuthMw:        middleware.NewAuthMiddleware(tokenTable{}, sessions, discard),
		RequestLogger: middleware.NewLogger(cfg.Log),
	})
	return h
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
