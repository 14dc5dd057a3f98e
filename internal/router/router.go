// Package router builds the echo instance: global middleware, the error
// handler and every route.
package router

import (
	"io/fs"
	"net/http"

	"github.com/deppfellow/accounts-service/internal/handler"
	"github.com/deppfellow/accounts-service/internal/middleware"
	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware in dependency order: request id first so every
// later layer can log it, then the New Relic transaction, then the
// request-scoped logger that reads both.
func NewRouter(s *server.Server, h *handler.Handlers, assets fs.FS) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h, assets)
	registerAccountRoutes(router, h, middlewares)

	return router
}

func registerAccountRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	accounts := h.Accounts
	requireJSON := m.ContentType.RequireJSON()

	g := r.Group("/accounts")

	g.POST("", handler.Handle(accounts.Handler, accounts.CreateAccount, http.StatusCreated), requireJSON)
	g.GET("", handler.Handle(accounts.Handler, accounts.ListAccounts, http.StatusOK))
	g.GET("/:id", handler.Handle(accounts.Handler, accounts.GetAccount, http.StatusOK)).Name = handler.RouteGetAccount
	g.PUT("/:id", handler.Handle(accounts.Handler, accounts.UpdateAccount, http.StatusOK), requireJSON)
	g.DELETE("/:id", handler.HandleNoContent(accounts.Handler, accounts.DeleteAccount, http.StatusNoContent))
}
