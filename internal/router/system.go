package router

import (
	"github.com/deppfellow/club-feedback/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the API:
// health, docs UI and the static docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.StaticFS("/static", h.OpenAPI.StaticFS())
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
