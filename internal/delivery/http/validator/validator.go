// Package validator adapts go-playground/validator to Echo's Validator.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator installed on the Echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and converts failures into 400 responses.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
