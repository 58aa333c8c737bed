// Package validator wraps the go-playground/validator library behind a small
// declarative API. Structs opt into validation with `validate` tags and all
// violations are reported as a single multi-error chain rooted at
// ErrValidationFailed, so callers can branch on validation failures with
// errors.Is without inspecting individual field errors.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain whenever one or more
// validation rules are violated.
var ErrValidationFailed = errors.New("struct validation failed")

// fieldErrFormat describes a single field violation.
//
// Example: "'Receiver': value '' does not meet the requirements for the 'required' validation"
const fieldErrFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// validate is the singleton instance, built on package load.
var validate *gvalidator.Validate

func init() {
	validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError converts raw validator errors into a readable multi-error
// chain. Non-validation errors pass through untouched.
func formatError(err error) error {
	var fieldErrors gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	errs := make([]error, 0, len(fieldErrors)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fieldErr := range fieldErrors {
		errs = append(errs, fmt.Errorf(fieldErrFormat,
			fieldErr.Field(),
			fieldErr.Value(),
			fieldErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks the given struct against its `validate` tags. It returns
// nil when every rule passes, or an ErrValidationFailed chain describing each
// violated field.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
