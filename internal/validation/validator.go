// Package validation adapts go-playground/validator to Echo's validation
// interface and formats field errors for API responses.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harrisonbray/tackle"
)

// Validator implements echo.Validator using go-playground/validator struct tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate validates a struct using its validation tags. Failures are returned
// as a tackle validation error carrying per-field messages, so the transport
// layer maps them to a 400 with a fields object.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return tackle.Invalid("Invalid request")
	}
	return tackle.ErrorWithFields(formatValidationErrors(validationErrors))
}

// formatValidationErrors converts validator errors to user-friendly messages
// keyed by lowercased field name.
func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		name := strings.ToLower(fieldErr.Field())

		switch fieldErr.Tag() {
		case "required":
			fields[name] = "is required"
		case "email":
			fields[name] = "must be a valid email address"
		case "uuid":
			fields[name] = "must be a valid UUID"
		case "min":
			fields[name] = fmt.Sprintf("must be at least %s", fieldErr.Param())
		case "max":
			fields[name] = fmt.Sprintf("must be no more than %s", fieldErr.Param())
		case "oneof":
			fields[name] = fmt.Sprintf("must be one of: %s", fieldErr.Param())
		case "gt":
			fields[name] = fmt.Sprintf("must be greater than %s", fieldErr.Param())
		case "dive":
			fields[name] = "contains an invalid entry"
		default:
			fields[name] = fmt.Sprintf("failed validation: %s", fieldErr.Tag())
		}
	}
	return fields
}
