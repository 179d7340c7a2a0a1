package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/placecards/placecards-api/internal/domain"
)

// Global validator instance for reuse
var validate = newValidator()

// newValidator builds the validator with the custom tags used by the
// request DTOs.
// ALLOW-PANIC: registration fails only on a nil function, a programmer error.
func newValidator() *validator.Validate {
	v := validator.New()

	// cardurl accepts the http(s) URL shape allowed for avatars and card links.
	if err := v.RegisterValidation("cardurl", func(fl validator.FieldLevel) bool {
		return domain.ValidURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return validate.Struct(v)
}
