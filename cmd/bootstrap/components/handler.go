package components

import (
	"context"
	"log/slog"

	"gin-booking/internal/handler"
	"gin-booking/internal/handler/api"
	"gin-booking/internal/handler/dto/request"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/livequery"
	"gin-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewTracker,
		api.NewStreamer,
		api.NewAuthHandler,
		api.NewServiceHandler,
		api.NewOrderHandler,
		api.NewTransactionHandler,
		api.NewCustomerHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(RegisterRoutes),
)

// NewTracker releases every open list subscription on shutdown.
func NewTracker(lc fx.Lifecycle, logger *slog.Logger) *livequery.Tracker {
	tracker := livequery.NewTracker(logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			tracker.ReleaseAll()
			return nil
		},
	})
	return tracker
}

type RouteParams struct {
	fx.In

	Engine        *gin.Engine
	Config        config.Config
	Auth          *api.AuthHandler
	Service       *api.ServiceHandler
	Order         *api.OrderHandler
	Transaction   *api.TransactionHandler
	Customer      *api.CustomerHandler
	Profile       *api.ProfileHandler
	AuthMw        *middleware.AuthMiddleware
	RequestLogger *middleware.Logger
}

func RegisterRoutes(p RouteParams) error {
	if err := request.RegisterValidators(); err != nil {
		return err
	}

	handler.NewRouter(p.Engine, p.Config, handler.Handlers{
		Auth:          p.Auth,
		Service:       p.Service,
		Order:         p.Order,
		Transaction:   p.Transaction,
		Customer:      p.Customer,
		Profile:       p.Profile,
		AuthMw:        p.AuthMw,
		RequestLogger: p.RequestLogger,
	})
	return nil
}
