package utils

import (
	"github.com/pkg/errors"
)

// NewConfigValidationError returns a config validation error that occurred at a given path.
func NewConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}

// NewConfigValidationFieldRequiredError is used when a field is missing or zero valued in a config.
func NewConfigValidationFieldRequiredError(path, field string) error {
	return NewConfigValidationError(path, errors.Errorf("%q is required", field))
}
