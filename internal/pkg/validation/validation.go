package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hri-companion-be/internal/entity"
	"hri-companion-be/internal/pkg/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("environment", func(fl validator.FieldLevel) bool {
		return entity.ValidateEnvironment(fl.Field().String()) == nil
	})
	return v
}

// Struct validates a request DTO and converts validator failures into a
// single validation error with per-field details.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation("request validation failed").WithCause(err)
	}

	details := make(map[string]interface{}, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[strings.ToLower(fieldErr.Field())] = fmt.Sprintf(
			"failed %q validation", fieldErr.Tag())
	}
	return apperror.Validation("request validation failed").WithDetails(details)
}
