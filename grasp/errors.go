package grasp

import (
	"github.com/pkg/errors"

	"github.com/alvinsunyixiao/grasp/spatialmath"
)

var (
	// ErrShapeMismatch is returned when input list lengths or vector dimensions disagree.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrDimensionMismatch is returned for an ambient dimension other than 2 or 3.
	ErrDimensionMismatch = spatialmath.ErrDimensionMismatch
	// ErrDegenerateWrench is returned for a zero (or non-finite) contact force or wrench.
	ErrDegenerateWrench = errors.New("degenerate wrench")
	// ErrInvalidFrictionCoefficient is returned for a negative or non-finite friction coefficient.
	ErrInvalidFrictionCoefficient = errors.New("invalid friction coefficient")
	// ErrNumericalFailure is returned when the linear program cannot be solved.
	ErrNumericalFailure = errors.New("numerical failure")
)

func newShapeMismatchError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrShapeMismatch, format, args...)
}

func newDegenerateWrenchError(idx int) error {
	return errors.Wrapf(ErrDegenerateWrench, "wrench %d has zero or non-finite norm", idx)
}

func newInvalidFrictionCoefficientError(mu float64) error {
	return errors.Wrapf(ErrInvalidFrictionCoefficient, "friction coefficient must be finite and non-negative, got %v", mu)
}

func newNumericalFailureError(err error) error {
	return errors.Wrapf(ErrNumericalFailure, "solving closure program: %v", err)
}
