package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestSliceConversions(t *testing.T) {
	p, err := R2FromSlice([]float64{1, 2})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p, test.ShouldResemble, r2.Point{X: 1, Y: 2})

	_, err = R2FromSlice([]float64{1, 2, 3})
	test.That(t, errors.Is(err, ErrDimensionMismatch), test.ShouldBeTrue)

	v, err := R3FromSlice([]float64{1, 2, 3})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, R3ToSlice(v), test.ShouldResemble, []float64{1, 2, 3})

	_, err = R3FromSlice(nil)
	test.That(t, errors.Is(err, ErrDimensionMismatch), test.ShouldBeTrue)
}

func TestRotateR2(t *testing.T) {
	rotated := RotateR2(r2.Point{X: 1, Y: 0}, math.Pi/2)
	test.That(t, rotated.X, test.ShouldAlmostEqual, 0)
	test.That(t, rotated.Y, test.ShouldAlmostEqual, 1)

	rotated = RotateR2(r2.Point{X: 1, Y: 0}, -math.Pi/4)
	test.That(t, rotated.X, test.ShouldAlmostEqual, math.Sqrt2/2)
	test.That(t, rotated.Y, test.ShouldAlmostEqual, -math.Sqrt2/2)
	test.That(t, rotated.Norm(), test.ShouldAlmostEqual, 1)
}

func TestOrthonormalBasis(t *testing.T) {
	for _, axis := range []r3.Vector{
		{X: 1},
		{Z: -2},
		{X: 1, Y: 1, Z: 1},
		{X: 0.1, Y: -3, Z: 0.5},
	} {
		u, v := OrthonormalBasis(axis)
		n := axis.Normalize()
		test.That(t, u.Norm(), test.ShouldAlmostEqual, 1)
		test.That(t, v.Norm(), test.ShouldAlmostEqual, 1)
		test.That(t, u.Dot(n), test.ShouldAlmostEqual, 0)
		test.That(t, v.Dot(n), test.ShouldAlmostEqual, 0)
		test.That(t, u.Dot(v), test.ShouldAlmostEqual, 0)
		// right-handed
		test.That(t, u.Cross(v).Dot(n), test.ShouldAlmostEqual, 1)
	}
}
