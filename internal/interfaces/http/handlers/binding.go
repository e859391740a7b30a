// Package handlers implements the gin HTTP handlers of the admin API.
package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrorMessage turns a gin binding failure into a readable
// message. Validator failures name the offending fields; anything else
// is reported as a malformed body.
func bindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		parts := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		return "validation failed: " + strings.Join(parts, ", ")
	}
	return "invalid request body"
}
