// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("cgpa", validateCGPA)
	validate.RegisterValidation("semester", validateSemester)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// CGPA is on a 0-10 scale.
func validateCGPA(fl validator.FieldLevel) bool {
	cgpa := fl.Field().Float()
	return cgpa >= 0 && cgpa <= 10
}

// Semesters run 1-8.
func validateSemester(fl validator.FieldLevel) bool {
	semester := fl.Field().Int()
	return semester >= 1 && semester <= 8
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

// ValidationMessage flattens a validation error into one human-readable line.
func ValidationMessage(err error) string {
	errs := GetValidationErrors(err)
	if len(errs) == 0 {
		return "invalid request payload"
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, "; ")
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must have at least " + e.Param() + " entries or characters"
	case "max":
		return e.Field() + " must have at most " + e.Param() + " entries or characters"
	case "cgpa":
		return "CGPA must be between 0 and 10"
	case "semester":
		return "Semester must be between 1 and 8"
	default:
		return e.Field() + " is invalid"
	}
}
