package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/accounts-service/internal/config"
	"github.com/deppfellow/accounts-service/internal/middleware"
	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/labstack/echo/v4"
)

var errDatabaseNotConfigured = errors.New("database not configured")

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Health is the liveness probe. It never touches dependencies.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

// CheckHealth is the readiness probe. It runs every configured check within
// the health-check timeout and answers 200 when all pass, 503 otherwise.
// With checks disabled it answers 200 without running any.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !cfg.Enabled {
		return c.JSON(http.StatusOK, response)
	}

	isHealthy := true
	for _, name := range cfg.Checks {
		checkStart := time.Now()
		err := h.runCheck(c.Request().Context(), name, cfg.Timeout)
		responseTime := time.Since(checkStart)

		if err != nil {
			isHealthy = false
			checks[name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": responseTime.String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Str("check", name).
				Dur("response_time", responseTime).
				Msg("health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
					"check_type":       name,
					"operation":        "health_check",
					"error_type":       name + "_unhealthy",
					"response_time_ms": responseTime.Milliseconds(),
					"error_message":    err.Error(),
				})
			}
			continue
		}

		checks[name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": responseTime.String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) runCheck(ctx context.Context, name string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch name {
	case config.CheckDatabase:
		if h.server.DB == nil {
			return errDatabaseNotConfigured
		}
		return h.server.DB.Ping(ctx)
	default:
		return errors.New("unknown check " + name)
	}
}
