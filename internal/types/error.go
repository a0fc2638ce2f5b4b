package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error kinds carried by CustomError. Match them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`

	kind error
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Unwrap exposes the error kind so callers can use errors.Is.
func (e *CustomError) Unwrap() error {
	return e.kind
}

// NewNotFoundError builds a 404 error for an id that does not resolve.
func NewNotFoundError(message, errorType string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusNotFound,
		Message: message,
		Type:    errorType,
		kind:    ErrNotFound,
	}
}

// NewValidationError builds a 400 error for a rejected field value.
func NewValidationError(message, errorType string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusBadRequest,
		Message: message,
		Type:    errorType,
		kind:    ErrValidation,
	}
}
