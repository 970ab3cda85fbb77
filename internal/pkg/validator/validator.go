package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// Report field names as their json tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks a request struct against its validate tags and returns a
// human-readable error for the first failing field.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if _, ok := err.(*validator.InvalidValidationError); ok {
		return fmt.Errorf("invalid validation target: %w", err)
	}

	validationErrors := err.(validator.ValidationErrors)
	firstErr := validationErrors[0]
	fieldName := firstErr.Field()
	param := firstErr.Param()

	switch firstErr.Tag() {
	case "required":
		return fmt.Errorf("field '%s' is required", fieldName)
	case "email":
		return fmt.Errorf("field '%s' must be a valid email address", fieldName)
	case "min":
		return fmt.Errorf("field '%s' must be at least %s characters long", fieldName, param)
	case "len":
		return fmt.Errorf("field '%s' must be exactly %s characters long", fieldName, param)
	case "numeric":
		return fmt.Errorf("field '%s' must contain only digits", fieldName)
	default:
		return fmt.Errorf("field '%s' failed validation on '%s'", fieldName, firstErr.Tag())
	}
}
