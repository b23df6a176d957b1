package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// getUserID extracts the user_id stored by the JWT middleware and
// normalizes it to uint64.  JWT numeric claims decode as float64, so a
// type switch covers the representations the middleware may hand us.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// Validator adapts go-playground/validator to Echo's Validator interface
// so handlers can bind-then-validate request bodies in one step.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator with the default tag rules.
func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

// Validate checks struct tags and converts failures into a 400 response.
func (val *Validator) Validate(i interface{}) error {
	if err := val.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
