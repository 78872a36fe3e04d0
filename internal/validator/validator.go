package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json names
	validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validator.RegisterValidation("stripe_id", validateStripeID)
	validator.RegisterValidation("metadata", validateMetadata)

	return validator
}

// validateStripeID checks that an object id carries the prefix given as the
// tag parameter, e.g. `stripe_id=cus_`.
func validateStripeID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	prefix := fl.Param()

	return strings.HasPrefix(id, prefix) && len(id) > len(prefix)
}

// Stripe limits metadata to 50 keys of up to 40 characters with values of up
// to 500 characters.
func validateMetadata(fl validator.FieldLevel) bool {
	metadata, ok := fl.Field().Interface().(map[string]string)
	if !ok {
		return false
	}

	if len(metadata) > 50 {
		return false
	}

	for k, v := range metadata {
		if k == "" || len(k) > 40 || len(v) > 500 {
			return false
		}
	}

	return true
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "stripe_id":
		return fmt.Sprintf("must be an id starting with %q", err.Param())
	case "metadata":
		return "must have at most 50 keys of up to 40 characters with values of up to 500 characters"
	default:
		return "is invalid"
	}
}
