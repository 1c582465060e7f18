package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/club-feedback/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request types that validate themselves,
// usually by running validator.Struct on the receiver.
type Validatable interface {
	Validate() error
}

// FailureMessager lets a request type choose the message sent to the client
// when binding or validation fails. Without it the generic
// "Validation failed" message is used.
type FailureMessager interface {
	FailureMessage() string
}

// CustomValidationError is a single validation issue that cannot be
// expressed with validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

const defaultFailureMessage = "Validation failed"

// BindAndValidate binds request data into payload and validates it.
//
// payload must be a pointer to a struct. Any failure is returned as a 400
// *errs.HTTPError; bind errors never leak echo's internal message.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(failureMessage(payload), false, nil, []errs.FieldError{
			{Field: "request", Error: bindErrorMessage(err)},
		})
	}

	if err := payload.Validate(); err != nil {
		fieldErrors, ok := extractValidationError(err)
		if !ok {
			return errs.ValidationError(err)
		}
		return errs.NewBadRequestError(failureMessage(payload), true, nil, fieldErrors)
	}

	return nil
}

func failureMessage(payload Validatable) string {
	if m, ok := payload.(FailureMessager); ok {
		if msg := m.FailureMessage(); msg != "" {
			return msg
		}
	}
	return defaultFailureMessage
}

func bindErrorMessage(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}

// extractValidationError converts validator or custom errors into field
// errors. ok is false for any other error type.
func extractValidationError(err error) ([]errs.FieldError, bool) {
	var fieldErrors []errs.FieldError

	switch ve := err.(type) {
	case CustomValidationErrors:
		for _, e := range ve {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return fieldErrors, true

	case validator.ValidationErrors:
		for _, e := range ve {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: fieldName(e),
				Error: tagMessage(e),
			})
		}
		return fieldErrors, true
	}

	return nil, false
}

func fieldName(e validator.FieldError) string {
	return strings.ToLower(e.Field())
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	}

	if e.Param() != "" {
		return fmt.Sprintf("%s: %s:%s", fieldName(e), e.Tag(), e.Param())
	}
	return fmt.Sprintf("%s: %s", fieldName(e), e.Tag())
}
