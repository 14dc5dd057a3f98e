package router

import (
	"io/fs"

	"github.com/deppfellow/accounts-service/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not account CRUD:
// liveness, readiness, service info and the docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, assets fs.FS) {
	r.GET("/health", h.Health.Health)
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/", h.Root.Index)

	r.StaticFS("/static", assets)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
