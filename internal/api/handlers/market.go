package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"studioops/internal/logging"
	"studioops/internal/sim"
	"studioops/internal/talent"
	"studioops/pkg/models"
)

// MarketHandler lists the open candidate pool. Filter and sort criteria
// come in as query parameters.
func MarketHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		candidates := session.Market()

		criteria := talent.FilterCriteria{
			Query:         c.QueryParam("q"),
			MinSalary:     intQuery(c, "min_salary"),
			MaxSalary:     intQuery(c, "max_salary"),
			MinExperience: intQuery(c, "min_experience"),
			MaxExperience: intQuery(c, "max_experience"),
			MinSkillLevel: intQuery(c, "min_skill"),
		}
		if pos := c.QueryParam("position"); pos != "" {
			criteria.Positions = []models.Position{models.Position(pos)}
		}
		candidates = talent.Filter(candidates, criteria)

		switch c.QueryParam("sort") {
		case "skill":
			candidates = talent.SortBySkill(candidates)
		case "salary":
			candidates = talent.SortBySalary(candidates)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"candidates": candidates,
			"stats":      talent.Stats(candidates),
		})
	}
}

// RefreshMarketHandler regenerates the candidate pool.
func RefreshMarketHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		candidates := session.RefreshMarket()
		logger.Info("Talent market refreshed", map[string]interface{}{"candidates": len(candidates)})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"candidates": candidates,
		})
	}
}

// QuoteFeeHandler itemizes the recruitment fee for one candidate.
func QuoteFeeHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		breakdown, err := session.QuoteFee(c.Param("id"))
		if err != nil {
			return errorJSON(c, reqID, err)
		}
		return c.JSON(http.StatusOK, breakdown)
	}
}

// HireFromMarketHandler hires a candidate out of the pool, charging the
// recruitment fee.
func HireFromMarketHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		employee, cost, err := session.HireFromMarket(c.Param("id"))
		if err != nil {
			logger.Warn("Market hire refused", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, reqID, err)
		}

		logger.Info("Candidate hired from market", map[string]interface{}{
			"employee_id": employee.ID,
			"position":    employee.Position,
			"cost":        cost,
		})
		return c.JSON(http.StatusOK, models.HireResponse{Employee: employee, Cost: cost})
	}
}

func intQuery(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
