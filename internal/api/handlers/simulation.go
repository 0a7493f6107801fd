package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studioops/internal/logging"
	"studioops/internal/sim"
	"studioops/pkg/models"
)

// AdvanceDayHandler moves the simulation clock forward, one day at a time.
// The optional days field runs several consecutive days in one call.
func AdvanceDayHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		req := models.AdvanceRequest{Days: 1}
		if c.Request().ContentLength > 0 {
			if ok, respErr := bindAndValidate(c, reqID, &req); !ok {
				return respErr
			}
			if req.Days == 0 {
				req.Days = 1
			}
		}

		reports := session.AdvanceDays(req.Days)
		last := reports[len(reports)-1]
		logger.Info("Simulation advanced", map[string]interface{}{
			"days": req.Days,
			"date": last.Date.String(),
		})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"date":    last.Date,
			"reports": reports,
		})
	}
}

// AdvanceMonthHandler runs days until the next month boundary.
func AdvanceMonthHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		reports := session.AdvanceMonth()
		last := reports[len(reports)-1]
		logger.Info("Simulation advanced to next month", map[string]interface{}{
			"days": len(reports),
			"date": last.Date.String(),
		})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"date":    last.Date,
			"reports": reports,
		})
	}
}
