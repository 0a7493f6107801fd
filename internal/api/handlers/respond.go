package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"studioops/pkg/models"
	"studioops/pkg/utils"
)

var validate = validator.New()

// requestID returns the id set by the validation middleware, generating a
// fresh one for requests that bypassed it.
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

// errorJSON maps an engine error onto the HTTP response. CustomError
// carries its own status code and reason; anything else is a 500.
func errorJSON(c echo.Context, reqID string, err error) error {
	var ce *utils.CustomError
	if errors.As(err, &ce) {
		return c.JSON(ce.Code, models.ErrorResponse{
			Error:     ce.Reason,
			Message:   ce.Error(),
			RequestID: reqID,
			Timestamp: time.Now(),
		})
	}
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:     "internal_error",
		Message:   err.Error(),
		RequestID: reqID,
		Timestamp: time.Now(),
	})
}

// bindAndValidate decodes the request body and runs struct validation,
// writing the 400 response itself on failure.
func bindAndValidate(c echo.Context, reqID string, req interface{}) (ok bool, respErr error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "invalid_request",
			Message:   "Invalid request format",
			RequestID: reqID,
			Timestamp: time.Now(),
		})
	}
	if err := validate.Struct(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "validation_failed",
			Message:   err.Error(),
			RequestID: reqID,
			Timestamp: time.Now(),
		})
	}
	return true, nil
}
