package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/types"
	"github.com/Rosvend/REST-Api-NoSQL/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator reports fields by their json names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bodyError is a rejected request body
type bodyError struct {
	status    int
	message   string
	errorType string
}

func (e *bodyError) render(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, e.message, e.status, e.errorType)
}

// parseBody decodes the JSON body and checks that every required field is present.
// Presence only: empty values reach the service, which owns the semantic checks.
func parseBody(c *fiber.Ctx, body interface{}) *bodyError {
	if err := c.BodyParser(body); err != nil {
		return &bodyError{fiber.StatusBadRequest, "Invalid input", "validation.input"}
	}

	if err := validate.Struct(body); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return &bodyError{fiber.StatusUnprocessableEntity, "Field required: " + strings.Join(missing, ", "), "validation.missing"}
		}
		return &bodyError{fiber.StatusBadRequest, err.Error(), "validation.input"}
	}
	return nil
}

// renderError writes NotFound and ValidationFailure with their own status and
// anything else as a 500
func renderError(c *fiber.Ctx, log *logging.Logger, err error, errorType string) error {
	var ce *types.CustomError
	if errors.As(err, &ce) {
		return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
	}

	log.Error("Request failed", "path", c.Path(), "method", c.Method(), "error", err)
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}

func isBoundaryError(err error) bool {
	var ce *types.CustomError
	return errors.As(err, &ce)
}
