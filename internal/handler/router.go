package handler

import (
	"net/http"

	"gin-booking/internal/handler/api"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/pkg/config"
	"gin-booking/internal/usecase/access"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth          *api.AuthHandler
	Service       *api.ServiceHandler
	Order         *api.OrderHandler
	Transaction   *api.TransactionHandler
	Customer      *api.CustomerHandler
	Profile       *api.ProfileHandler
	AuthMw        *middleware.AuthMiddleware
	RequestLogger *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg, h.RequestLogger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Language(cfg.I18n))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := h.AuthMw
	screen := authMw.RequireScreen

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMw.Authenticate())
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/password-reset", Handler: h.Auth.RequestPasswordReset},
				{Method: http.MethodPost, Path: "/password-reset/confirm", Handler: h.Auth.ConfirmPasswordReset},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/session", Handler: h.Auth.Session},

			// customer tree
			{Method: http.MethodGet, Path: "/services", Handler: h.Service.List, Mw: []gin.HandlerFunc{screen(access.ScreenCustomerServices)}},
			{Method: http.MethodGet, Path: "/services/stream", Handler: h.Service.Stream(access.ScreenCustomerServices), Mw: []gin.HandlerFunc{screen(access.ScreenCustomerServices)}},
			{Method: http.MethodPost, Path: "/orders", Handler: h.Order.Place, Mw: []gin.HandlerFunc{authMw.AllowScreen(access.ScreenCustomerServices)}},
			{Method: http.MethodGet, Path: "/appointments", Handler: h.Transaction.ListAppointments, Mw: []gin.HandlerFunc{screen(access.ScreenAppointments)}},
			{Method: http.MethodGet, Path: "/appointments/stream", Handler: h.Transaction.StreamAppointments, Mw: []gin.HandlerFunc{screen(access.ScreenAppointments)}},
			{Method: http.MethodGet, Path: "/profile", Handler: h.Profile.GetCustomer, Mw: []gin.HandlerFunc{screen(access.ScreenCustomerProfile)}},
			{Method: http.MethodPut, Path: "/profile", Handler: h.Profile.UpdateCustomer, Mw: []gin.HandlerFunc{screen(access.ScreenCustomerProfile)}},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/services", Handler: h.Service.List, Mw: []gin.HandlerFunc{screen(access.ScreenAdminServices)}},
				{Method: http.MethodGet, Path: "/services/stream", Handler: h.Service.Stream(access.ScreenAdminServices), Mw: []gin.HandlerFunc{screen(access.ScreenAdminServices)}},
				{Method: http.MethodPost, Path: "/services", Handler: h.Service.Create, Mw: []gin.HandlerFunc{screen(access.ScreenAdminServices)}},
				{Method: http.MethodPut, Path: "/services/:id", Handler: h.Service.Update, Mw: []gin.HandlerFunc{screen(access.ScreenAdminServices)}},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Service.Delete, Mw: []gin.HandlerFunc{screen(access.ScreenAdminServices)}},

				{Method: http.MethodGet, Path: "/transactions", Handler: h.Transaction.List, Mw: []gin.HandlerFunc{screen(access.ScreenTransactions)}},
				{Method: http.MethodGet, Path: "/transactions/stream", Handler: h.Transaction.Stream, Mw: []gin.HandlerFunc{screen(access.ScreenTransactions)}},
				{Method: http.MethodGet, Path: "/transactions/:id", Handler: h.Transaction.Get, Mw: []gin.HandlerFunc{screen(access.ScreenTransactions)}},
				{Method: http.MethodPatch, Path: "/transactions/:id/status", Handler: h.Transaction.SetStatus, Mw: []gin.HandlerFunc{screen(access.ScreenTransactions)}},

				{Method: http.MethodGet, Path: "/customers", Handler: h.Customer.List, Mw: []gin.HandlerFunc{screen(access.ScreenCustomers)}},
				{Method: http.MethodGet, Path: "/customers/stream", Handler: h.Customer.Stream, Mw: []gin.HandlerFunc{screen(access.ScreenCustomers)}},

				{Method: http.MethodGet, Path: "/profile", Handler: h.Profile.GetAdmin, Mw: []gin.HandlerFunc{screen(access.ScreenAdminProfile)}},
				{Method: http.MethodPut, Path: "/profile", Handler: h.Profile.UpdateAdmin, Mw: []gin.HandlerFunc{screen(access.ScreenAdminProfile)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
