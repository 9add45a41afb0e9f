package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ErrDimensionMismatch is returned when vectors do not share an ambient dimension, or that dimension is
// neither 2 nor 3.
var ErrDimensionMismatch = errors.New("dimension mismatch")

func newDimensionMismatchError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDimensionMismatch, format, args...)
}

// R2FromSlice converts a length-2 slice into a planar point.
func R2FromSlice(v []float64) (r2.Point, error) {
	if len(v) != 2 {
		return r2.Point{}, newDimensionMismatchError("expected 2 components, got %d", len(v))
	}
	return r2.Point{X: v[0], Y: v[1]}, nil
}

// R3FromSlice converts a length-3 slice into a spatial vector.
func R3FromSlice(v []float64) (r3.Vector, error) {
	if len(v) != 3 {
		return r3.Vector{}, newDimensionMismatchError("expected 3 components, got %d", len(v))
	}
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
}

// R2ToSlice returns the components of p.
func R2ToSlice(p r2.Point) []float64 {
	return []float64{p.X, p.Y}
}

// R3ToSlice returns the components of v.
func R3ToSlice(v r3.Vector) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// RotateR2 rotates p counter-clockwise by theta radians about the origin.
func RotateR2(p r2.Point, theta float64) r2.Point {
	sin, cos := math.Sincos(theta)
	return r2.Point{X: cos*p.X - sin*p.Y, Y: sin*p.X + cos*p.Y}
}

// OrthonormalBasis returns two unit vectors that together with the normalized axis form a right-handed
// orthonormal frame.
func OrthonormalBasis(axis r3.Vector) (r3.Vector, r3.Vector) {
	n := axis.Normalize()
	u := n.Ortho()
	return u, n.Cross(u)
}
