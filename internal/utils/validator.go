// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var colorTokenPattern = regexp.MustCompile("^#[0-9A-Fa-f]{6}$")

func init() {
	validate = validator.New()
	validate.RegisterValidation("color_token", validateColorToken)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Color tokens are hex colors like "#FF0000", matching the catalog's color
// variant encoding.
func validateColorToken(fl validator.FieldLevel) bool {
	return colorTokenPattern.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "color_token":
		return e.Field() + " must be a hex color token like #FF0000"
	default:
		return e.Field() + " is invalid"
	}
}
