package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"studioops/internal/logging"
	"studioops/internal/sim"
	"studioops/pkg/models"
)

// CompanyHandler returns the company snapshot.
func CompanyHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, session.Company())
	}
}

// ListEmployeesHandler returns the roster.
func ListEmployeesHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"employees": session.Employees(),
		})
	}
}

// DismissEmployeeHandler removes an employee from the roster.
func DismissEmployeeHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "employee id must be an integer",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		if err := session.DismissEmployee(id); err != nil {
			return errorJSON(c, reqID, err)
		}

		logger.Info("Employee dismissed", map[string]interface{}{"employee_id": id})
		return c.NoContent(http.StatusNoContent)
	}
}

// AddProductHandler registers a product with the catalog.
func AddProductHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.AddProductRequest
		if ok, respErr := bindAndValidate(c, reqID, &req); !ok {
			return respErr
		}

		product, err := session.AddProduct(req.Name, models.BusinessModel(req.BusinessModel), req.Released)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		logger.Info("Product registered", map[string]interface{}{
			"product_id": product.ID,
			"released":   product.Released,
		})
		return c.JSON(http.StatusCreated, product)
	}
}
