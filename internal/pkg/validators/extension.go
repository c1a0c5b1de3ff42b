// Package validators provides custom validation functions registered with
// go-playground/validator.
package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ExtensionValidation checks that a file extension is non-empty, lowercase
// and carries a leading dot, e.g. ".txt" or ".go".
func ExtensionValidation(fl validator.FieldLevel) bool {
	ext := fl.Field().String()
	if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
		return false
	}
	return ext == strings.ToLower(ext) && !strings.ContainsAny(ext[1:], "./\\ ")
}
