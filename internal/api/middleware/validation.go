package middleware

import (
	"net/http"
	"time"

	"studioops/pkg/models"
	"studioops/pkg/utils"

	"github.com/labstack/echo/v4"
)

// maxRequestBody caps POST payloads. Every write endpoint here carries a
// small JSON body, so anything above 1MB is rejected before binding.
const maxRequestBody = 1 << 20

// RequestValidation tags each request with a generated ID, echoes it back
// in the X-Request-ID header, and rejects oversized POST bodies.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost && c.Request().ContentLength > maxRequestBody {
				return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
					Error:     "request_too_large",
					Message:   "Request body too large",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			return next(c)
		}
	}
}
