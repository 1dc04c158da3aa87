// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates an echo-compatible request validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate validates a bound request struct against its validate tags.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
