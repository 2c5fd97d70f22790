package lib

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError represents a clean validation error for APIs
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a structured validation error
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ExtractAndValidateBody extracts and validates the request body into the provided struct type T
func ExtractAndValidateBody[T any](r *http.Request) (*T, error) {
	defer r.Body.Close()

	var body T

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		return nil, err
	}

	if err := ValidateStruct(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

// ValidateStruct runs tag validation on any model, mapping validator output
// into API-friendly field errors.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return mapValidationErrors(ve)
		}
		return err
	}
	return nil
}

func mapValidationErrors(errs validator.ValidationErrors) *ValidationError {
	out := &ValidationError{}

	for _, e := range errs {
		field := strings.ToLower(e.Field())

		var message string
		switch e.Tag() {
		case "required":
			message = "is required"
		case "numeric":
			message = "must contain only digits"
		case "min":
			message = "must be at least " + e.Param() + " characters"
		case "max":
			message = "must be at most " + e.Param() + " characters"
		case "oneof":
			message = "must be one of: " + e.Param()
		case "dive":
			continue
		default:
			message = "is invalid"
		}

		out.Errors = append(out.Errors, FieldError{
			Field:   field,
			Message: message,
		})
	}

	return out
}
