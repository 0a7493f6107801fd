package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable failure reasons returned by engine operations. Callers
// branch on the reason and present feedback; none of these are panics.
const (
	ReasonNotFound          = "not_found"
	ReasonInvalidState      = "invalid_state"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonRosterFull        = "roster_full"
	ReasonValidation        = "validation_failed"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// HasReason reports whether err is a CustomError carrying the given reason.
func HasReason(err error, reason string) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Reason == reason
	}
	return false
}

// Common error constructors

func NewNotFoundError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusNotFound,
		Reason:  ReasonNotFound,
		Message: "Resource not found",
		Detail:  detail,
	}
}

func NewInvalidStateError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusConflict,
		Reason:  ReasonInvalidState,
		Message: "Operation not allowed in current state",
		Detail:  detail,
	}
}

func NewInsufficientFundsError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusPaymentRequired,
		Reason:  ReasonInsufficientFunds,
		Message: "Insufficient funds",
		Detail:  detail,
	}
}

func NewRosterFullError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusConflict,
		Reason:  ReasonRosterFull,
		Message: "Roster is at capacity",
		Detail:  detail,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Reason:  ReasonValidation,
		Message: "Validation failed",
		Detail:  detail,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Reason:  "internal_error",
		Message: message,
	}
}
