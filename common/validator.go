package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a struct against its `validate` tags.
func Validate(payload interface{}) *AppError {
	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewAppError(OutcomeInvalidRequest, validationErrors.Error(), err)
		}
		return NewAppError(OutcomeInvalidRequest, "Invalid request", err)
	}
	return nil
}
