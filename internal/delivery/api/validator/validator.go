// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"greenlake/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validate.Struct(i))
}

// FieldErrors flattens validation failures into "field: rule" strings, or returns nil
// when err is not a validation failure.
func FieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		detail := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			detail += "=" + fe.Param()
		}
		details = append(details, detail)
	}

	return details
}
