package validation

import (
	"portfolio-backend/pkg/emailcheck"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the custom tags registered.
// The tags are static, so a registration failure is a programming error.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) error {
	return emailcheck.RegisterValidators(v)
}
