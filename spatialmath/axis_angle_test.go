package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestR4AARotateVector(t *testing.T) {
	r4 := NewR4AAFromAxis(r3.Vector{Z: 2}, math.Pi/2)
	rotated := r4.RotateVector(r3.Vector{X: 1})
	test.That(t, rotated.X, test.ShouldAlmostEqual, 0)
	test.That(t, rotated.Y, test.ShouldAlmostEqual, 1)
	test.That(t, rotated.Z, test.ShouldAlmostEqual, 0)

	// vectors along the axis are fixed
	along := NewR4AAFromAxis(r3.Vector{X: 1, Y: 1}, 1.3).RotateVector(r3.Vector{X: 2, Y: 2})
	test.That(t, along.X, test.ShouldAlmostEqual, 2)
	test.That(t, along.Y, test.ShouldAlmostEqual, 2)
	test.That(t, along.Z, test.ShouldAlmostEqual, 0)

	// a full turn is the identity
	v := r3.Vector{X: 0.3, Y: -0.7, Z: 1.1}
	full := NewR4AAFromAxis(r3.Vector{X: 1, Y: 2, Z: 3}, 2*math.Pi).RotateVector(v)
	test.That(t, full.Sub(v).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, full.Norm(), test.ShouldAlmostEqual, v.Norm())
}

func TestR4AANormalize(t *testing.T) {
	r4 := &R4AA{Theta: 1, RX: 3, RZ: 4}
	r4.Normalize()
	test.That(t, r4.RX, test.ShouldAlmostEqual, 0.6)
	test.That(t, r4.RZ, test.ShouldAlmostEqual, 0.8)
	test.That(t, r4.Theta, test.ShouldEqual, 1.)

	zero := &R4AA{Theta: 1}
	zero.Normalize()
	test.That(t, zero.RZ, test.ShouldEqual, 1.)
}
