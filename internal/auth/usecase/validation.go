package usecase

import (
	"errors"
	"strings"

	"todo-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the validator over a normalized DTO and converts the
// failures into the per-field error list the API surfaces.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Internal(err)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return apperror.Validation(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch strings.ToLower(fe.Field()) {
	case "name":
		return "name required"
	case "email":
		return "valid email required"
	case "password":
		if fe.Tag() == "min" {
			return "password min 6 chars"
		}
		return "password required"
	default:
		return "invalid value"
	}
}
