package handlers

import (
	"net/http"
	"time"

	"studioops/internal/logging"
	"studioops/internal/sim"
	"studioops/pkg/models"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	logger := logging.GetGlobalLogger()
	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID(c)})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests
func ReadinessHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID(c)})

		checks := map[string]string{
			"api":        "ok",
			"simulation": "ok",
		}
		status := "ready"
		if session == nil {
			checks["simulation"] = "uninitialized"
			status = "not_ready"
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		code := http.StatusOK
		if status != "ready" {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	logger := logging.GetGlobalLogger()
	logger.Debug("Liveness check requested", map[string]interface{}{"request_id": requestID(c)})

	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler reports detailed service status including the simulation
// clock and queue depths.
func StatusHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		logger.Debug("Status check requested", map[string]interface{}{"request_id": requestID(c)})

		company := session.Company()
		stats := session.ComplaintStatistics()

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "operational",
			"timestamp": time.Now(),
			"version":   "1.0.0",
			"uptime":    time.Since(startTime).String(),
			"simulation": map[string]interface{}{
				"date":      company.Date.String(),
				"funds":     company.Funds,
				"fans":      company.Fans,
				"employees": company.Employees,
				"products":  len(company.Products),
			},
			"complaints": map[string]interface{}{
				"pending":     stats.TotalPending,
				"in_progress": stats.TotalInProgress,
			},
		})
	}
}
