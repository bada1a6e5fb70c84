// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// adulthoodYears is the minimum account-holder age.
const adulthoodYears = 18

// RequestValidator validates request DTOs against their `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator with the custom rules registered.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// adult: the field holds a YYYY-MM-DD birth date at least 18 years in
	// the past. Pair it with datetime=2006-01-02 so format failures report
	// as format failures, not age failures.
	_ = v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		birthDate, err := time.Parse(time.DateOnly, fl.Field().String())
		if err != nil {
			return false
		}

		return !birthDate.After(time.Now().AddDate(-adulthoodYears, 0, 0))
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Validation failures surface as
// validator.ValidationErrors so the error handler can map them per field.
func (rv *RequestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}
