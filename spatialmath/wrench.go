package spatialmath

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
)

// Wrench dimensions for planar and spatial rigid bodies.
const (
	PlanarWrenchDim  = 3
	SpatialWrenchDim = 6
)

// A Wrench is a generalized force about the body origin. Planar wrenches are [fx, fy, m] and spatial
// wrenches are [fx, fy, fz, mx, my, mz], where the moment is point x force.
type Wrench []float64

// NewPlanarWrench returns the wrench of force f applied at point p in the plane.
func NewPlanarWrench(f, p r2.Point) Wrench {
	return Wrench{f.X, f.Y, p.Cross(f)}
}

// NewSpatialWrench returns the wrench of force f applied at point p.
func NewSpatialWrench(f, p r3.Vector) Wrench {
	m := p.Cross(f)
	return Wrench{f.X, f.Y, f.Z, m.X, m.Y, m.Z}
}

// NewWrench returns the wrench of force applied at point. Both must have 2 or 3 components.
func NewWrench(force, point []float64) (Wrench, error) {
	if len(force) != len(point) {
		return nil, newDimensionMismatchError("force has %d components but point has %d", len(force), len(point))
	}
	switch len(force) {
	case 2:
		return NewPlanarWrench(r2.Point{X: force[0], Y: force[1]}, r2.Point{X: point[0], Y: point[1]}), nil
	case 3:
		return NewSpatialWrench(
			r3.Vector{X: force[0], Y: force[1], Z: force[2]},
			r3.Vector{X: point[0], Y: point[1], Z: point[2]},
		), nil
	default:
		return nil, newDimensionMismatchError("unsupported ambient dimension %d", len(force))
	}
}

// WrenchDim returns the wrench dimension for a body living in n dimensions.
func WrenchDim(n int) (int, error) {
	switch n {
	case 2:
		return PlanarWrenchDim, nil
	case 3:
		return SpatialWrenchDim, nil
	default:
		return 0, newDimensionMismatchError("unsupported ambient dimension %d", n)
	}
}

// Dim returns the number of components of the wrench.
func (w Wrench) Dim() int {
	return len(w)
}

// Norm returns the euclidean norm of the wrench.
func (w Wrench) Norm() float64 {
	return floats.Norm(w, 2)
}

// Normalize returns a unit-norm copy of w. The zero wrench is returned unchanged.
func (w Wrench) Normalize() Wrench {
	out := make(Wrench, len(w))
	copy(out, w)
	// Divide rather than scale by the reciprocal, which overflows for subnormal norms.
	if norm := w.Norm(); norm > 0 {
		for i := range out {
			out[i] /= norm
		}
	}
	return out
}
