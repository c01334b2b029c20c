package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/avasilenko2017/blog-account-service/internal/models"
)

// CollectValidationErrors turns field-level validation errors into a
// display-ready map keyed by "valid_<field>". When the same field appears
// more than once the last message wins.
func CollectValidationErrors(errs []models.FieldError) map[string]string {
	result := make(map[string]string, len(errs))

	for _, e := range errs {
		key := fmt.Sprintf("valid_%s", e.Field)
		result[key] = e.Message
	}

	return result
}

// FieldErrorsFromValidator adapts go-playground validation errors to the
// (field, message) pairs CollectValidationErrors consumes. Field names are
// lowercased to match their JSON form.
func FieldErrorsFromValidator(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if err == nil {
		return nil
	}
	if ok := asValidationErrors(err, &verrs); !ok {
		return []models.FieldError{{Field: "request", Message: err.Error()}}
	}

	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(fe),
		})
	}
	return out
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid format"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
