package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a gin binding error into a field-level error
// detail where the underlying cause is a validator failure.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		return NewErrorDetail(ErrorCodeValidationFailed, message).WithField(field)
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}
