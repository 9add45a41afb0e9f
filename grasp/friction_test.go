package grasp

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/alvinsunyixiao/grasp/spatialmath"
)

func TestFrictionlessConeIsNominalForce(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	force := []float64{0, 0, -2}
	edges, err := analyzer.FrictionConeEdges(Contact{Force: force, Point: []float64{1, 1, 1}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, edges, test.ShouldResemble, [][]float64{{0, 0, -2}})

	// The edge is a copy.
	edges[0][2] = 5
	test.That(t, force[2], test.ShouldEqual, -2.)
}

func TestPlanarFrictionCone(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	edges, err := analyzer.FrictionConeEdges(Contact{Force: []float64{2, 0}, Point: []float64{-1, 0}, Friction: 1})
	test.That(t, err, test.ShouldBeNil)

	expected := [][]float64{{math.Sqrt2, math.Sqrt2}, {math.Sqrt2, -math.Sqrt2}}
	test.That(t, cmp.Equal(edges, expected, cmpopts.EquateApprox(0, 1e-12)), test.ShouldBeTrue)

	// Whatever the coefficient, a planar cone has two edges atan(mu) either side of the force.
	for _, mu := range []float64{0.1, 0.5, 3} {
		edges, err := analyzer.FrictionConeEdges(Contact{Force: []float64{0, 1}, Point: []float64{0, 0}, Friction: mu})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(edges), test.ShouldEqual, 2)
		for _, edge := range edges {
			test.That(t, math.Hypot(edge[0], edge[1]), test.ShouldAlmostEqual, 1)
			test.That(t, math.Abs(math.Atan2(edge[0], edge[1])), test.ShouldAlmostEqual, math.Atan(mu))
		}
		test.That(t, edges[0][0], test.ShouldAlmostEqual, -edges[1][0])
	}
}

func TestSpatialFrictionCone(t *testing.T) {
	for _, tc := range []struct {
		force    r3.Vector
		mu       float64
		numEdges int
	}{
		{r3.Vector{X: 1}, 1, DefaultFrictionConeEdges},
		{r3.Vector{Z: -3}, 0.4, 4},
		{r3.Vector{X: 1, Y: -2, Z: 0.5}, 0.8, 5},
	} {
		cfg := DefaultConfig()
		cfg.FrictionConeEdges = tc.numEdges
		analyzer, err := NewAnalyzer(cfg, nil)
		test.That(t, err, test.ShouldBeNil)

		edges, err := analyzer.FrictionConeEdges(Contact{
			Force:    spatialmath.R3ToSlice(tc.force),
			Point:    []float64{0, 0, 0},
			Friction: tc.mu,
		})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(edges), test.ShouldEqual, tc.numEdges)

		axis := tc.force.Normalize()
		var sum r3.Vector
		for _, e := range edges {
			edge, err := spatialmath.R3FromSlice(e)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, edge.Norm(), test.ShouldAlmostEqual, tc.force.Norm(), 1e-9)
			test.That(t, edge.Angle(axis).Radians(), test.ShouldAlmostEqual, math.Atan(tc.mu), 1e-9)
			sum = sum.Add(edge)
		}
		// Evenly spaced edges cancel out around the axis.
		expected := axis.Mul(float64(tc.numEdges) * tc.force.Norm() * math.Cos(math.Atan(tc.mu)))
		test.That(t, sum.Sub(expected).Norm(), test.ShouldAlmostEqual, 0, 1e-9)
	}
}

func TestFrictionConeErrors(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	_, err := analyzer.FrictionConeEdges(Contact{Force: []float64{1, 0}, Point: []float64{0, 0}, Friction: -1})
	test.That(t, errors.Is(err, ErrInvalidFrictionCoefficient), test.ShouldBeTrue)

	_, err = analyzer.FrictionConeEdges(Contact{Force: []float64{1, 0}, Point: []float64{0, 0}, Friction: math.NaN()})
	test.That(t, errors.Is(err, ErrInvalidFrictionCoefficient), test.ShouldBeTrue)

	_, err = analyzer.FrictionConeEdges(Contact{Force: []float64{0, 0, 0}, Point: []float64{0, 0, 0}, Friction: 1})
	test.That(t, errors.Is(err, ErrDegenerateWrench), test.ShouldBeTrue)
}

func TestFrictionConeWrenches(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	wrenches, err := analyzer.frictionConeWrenches(Contact{Force: []float64{1, 0}, Point: []float64{-1, 0}, Friction: 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(wrenches), test.ShouldEqual, 2)
	for _, w := range wrenches {
		test.That(t, w.Dim(), test.ShouldEqual, spatialmath.PlanarWrenchDim)
		// moment = -1 * fy
		test.That(t, w[2], test.ShouldAlmostEqual, -w[1])
	}
}
