package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rayzor/contacts-api/internal/domain"
)

// DecodeJSON decodes the request body into the given struct with a
// closed schema: any field the struct does not declare is a validation
// error, not silently dropped.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}

	// A body with trailing content after the first JSON value is malformed.
	if dec.More() {
		return domain.NewValidationError("request body must contain a single JSON object")
	}

	return nil
}

// decodeError converts a JSON decoding failure into a ValidationError
// with a message naming the offending field where possible.
func decodeError(err error) error {
	msg := err.Error()

	// json exposes unknown fields only through the error string.
	if strings.Contains(msg, "unknown field") {
		if i := strings.Index(msg, "unknown field"); i >= 0 {
			return domain.NewValidationError(msg[i:] + " is not allowed")
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewValidationError(
			fmt.Sprintf("%q must be of type %s", typeErr.Field, typeErr.Type))
	}

	return domain.NewValidationError("invalid request body")
}
