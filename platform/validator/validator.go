// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"github.com/go-playground/validator/v10"

	"nanp_normalizer/platform/phone"
)

const (
	// TagNANP accepts strings that normalize to a canonical NANP number.
	TagNANP = "nanp"
	// TagNANPAssigned additionally requires the number to be assigned in the numbering plan.
	TagNANPAssigned = "nanp_assigned"
)

// Validator wraps the go-playground validator for structured validation.
// Using a struct allows for dependency injection and easier testing.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance with the phone number tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation(TagNANP, validateNANP)
	_ = v.RegisterValidation(TagNANPAssigned, validateNANPAssigned)
	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

func validateNANP(fl validator.FieldLevel) bool {
	p, err := phone.NewFromValue(fl.Field().Interface())
	if err != nil {
		return false
	}
	return !p.IsErrorNumber()
}

func validateNANPAssigned(fl validator.FieldLevel) bool {
	p, err := phone.NewFromValue(fl.Field().Interface())
	if err != nil {
		return false
	}
	return p.Assigned()
}
