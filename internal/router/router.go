// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/club-feedback/internal/handler"
	"github.com/deppfellow/club-feedback/internal/middleware"
	"github.com/deppfellow/club-feedback/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance: global error handler, middleware
// chain, system routes and the /api group.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request ID and the New Relic transaction must exist
	// before the context logger is built from them.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerFeedbackRoutes(api, h)

	return router
}

func registerFeedbackRoutes(api *echo.Group, h *handler.Handlers) {
	api.GET("/department", handler.Handle(
		h.Feedback.Handler,
		h.Feedback.GetDepartmentFeedback,
		http.StatusOK,
		&handler.DepartmentFeedbackRequest{},
	))
}
