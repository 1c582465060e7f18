package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/club-feedback/internal/middleware"
	"github.com/deppfellow/club-feedback/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

var errDatabaseNotConfigured = errors.New("database not configured")

// pinger is the database dependency of the health check.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service and its database are reachable.
type HealthHandler struct {
	Handler
	db pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	if s.DB != nil {
		h.db = s.DB
	}
	return h
}

// CheckHealth answers 200 when every check passes and 503 otherwise.
//
// Failure details are logged and recorded as HealthCheckError events; the
// body only carries each check's status and response time.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      statusHealthy,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if h.server.Config.Observability.HealthChecks.Enabled {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
		defer cancel()

		dbStart := time.Now()
		err := h.pingDatabase(ctx)
		elapsed := time.Since(dbStart)

		if err != nil {
			checks["database"] = map[string]any{
				"status":        statusUnhealthy,
				"response_time": elapsed.String(),
			}
			response["status"] = statusUnhealthy

			logger.Error().
				Err(err).
				Dur("response_time", elapsed).
				Msg("database health check failed")

			h.recordHealthCheckError("database", map[string]any{
				"error_type":       "database_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		} else {
			checks["database"] = map[string]any{
				"status":        statusHealthy,
				"response_time": elapsed.String(),
			}

			logger.Debug().
				Dur("response_time", elapsed).
				Msg("database health check passed")
		}
	}

	if response["status"] != statusHealthy {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return errDatabaseNotConfigured
	}
	return h.db.Ping(ctx)
}

func (h *HealthHandler) recordHealthCheckError(checkType string, attrs map[string]any) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attrs["check_type"] = checkType
	attrs["operation"] = "health_check"
	app.RecordCustomEvent("HealthCheckError", attrs)
}
