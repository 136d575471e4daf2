// Package emailcheck decides whether a sender address is worth replying to:
// a local structural check followed by a remote deliverability lookup.
package emailcheck

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// local@label(.label)+ with no whitespace and a single @
var addressRegex = regexp.MustCompile(`^[^\s@]+@[^\s@.]+(\.[^\s@.]+)+$`)

// ValidFormat reports whether addr looks like local@domain.tld.
// No length limits are enforced.
func ValidFormat(addr string) bool {
	return addressRegex.MatchString(addr)
}

// RegisterValidators registers the "address" tag backed by ValidFormat.
// Empty values pass so the tag composes with omitempty/required.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" {
			return true
		}
		return ValidFormat(val)
	})
}
