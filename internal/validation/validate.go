// Package validation implements the shared validation gate: a single
// declarative pass over a request struct that collects every violation
// before failing, rather than stopping at the first.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rayzor/contacts-api/internal/domain"
)

// validate is the shared validator instance. validator.Validate caches
// struct metadata, so a single instance is reused across all requests.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field names as their JSON names so error messages match
	// what the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Normalizer is implemented by request types that apply defaults
// (e.g., search paging) before validation runs.
type Normalizer interface {
	Normalize()
}

// Validate runs the declarative rules of v's struct tags, applying
// defaults first when the type implements Normalizer. All violations
// are evaluated in one pass and aggregated into a single
// domain.ValidationError; nil means v passed and carries its coerced,
// defaulted values.
func Validate(v any) error {
	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Non-field error (e.g., passing a non-struct); still a caller bug
		// surfaced as a validation failure.
		return domain.NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}

	return domain.NewValidationError(strings.Join(messages, ". "))
}

// fieldMessage maps a single failed rule to a human-readable message
// naming the offending field.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "max":
		return fmt.Sprintf("%q must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%q must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", fe.Field())
	case "gt":
		return fmt.Sprintf("%q must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%q must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%q must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%q failed on the %q rule", fe.Field(), fe.Tag())
	}
}
