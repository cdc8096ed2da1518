package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for request structs
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct. A type with its own
// Validate method takes precedence over tag-based validation.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}
