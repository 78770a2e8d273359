package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// Per-tag message templates. {field} and {param} are substituted from the
// failed validation.
var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"email":    "{field} must be a valid email address",
}

// message renders the first validation error as a human-readable string,
// falling back to the raw error text for tags without a template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		msg := strings.ReplaceAll(template, "{field}", valErr.Field())

		return strings.ReplaceAll(msg, "{param}", valErr.Param())
	}

	return valErrors.Error()
}
