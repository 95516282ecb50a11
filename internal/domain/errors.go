package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is wrapped together with the validator's field errors.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidSearchOption is returned when a property search option
	// cannot be interpreted.
	ErrInvalidSearchOption = errors.New("invalid search option")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs struct-tag validation and wraps any failure in ErrValidation.
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
