// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	domainerrors "github.com/adiritzhakii/food-by-me/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance for Echo.
type Validator struct {
	validate *playground.Validate
}

// New creates the Echo request validator.
func New() *Validator {
	return &Validator{validate: playground.New()}
}

// Validate checks struct tags and maps failures onto the application error
// taxonomy so the error handler reports them uniformly.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
