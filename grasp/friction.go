package grasp

import (
	"math"

	"github.com/alvinsunyixiao/grasp/spatialmath"
)

// FrictionConeEdges returns force vectors spanning a polyhedral approximation of the contact's Coulomb
// friction cone. A frictionless contact yields its nominal force only. A planar contact with friction yields
// the nominal force rotated by +-atan(mu). A spatial contact yields Config.FrictionConeEdges forces evenly
// spaced around the nominal direction, each atan(mu) away from it. Every edge has the magnitude of the
// nominal force.
func (a *Analyzer) FrictionConeEdges(c Contact) ([][]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Friction == 0 {
		return [][]float64{append([]float64(nil), c.Force...)}, nil
	}

	theta := halfAngle(c.Friction)
	if c.Dim() == 2 {
		f, err := spatialmath.R2FromSlice(c.Force)
		if err != nil {
			return nil, err
		}
		return [][]float64{
			spatialmath.R2ToSlice(spatialmath.RotateR2(f, theta)),
			spatialmath.R2ToSlice(spatialmath.RotateR2(f, -theta)),
		}, nil
	}

	f, err := spatialmath.R3FromSlice(c.Force)
	if err != nil {
		return nil, err
	}
	axis := f.Normalize()
	u, _ := spatialmath.OrthonormalBasis(axis)
	sin, cos := math.Sincos(theta)
	generator := axis.Mul(cos).Add(u.Mul(sin)).Mul(f.Norm())

	numEdges := a.cfg.FrictionConeEdges
	edges := make([][]float64, 0, numEdges)
	for j := 0; j < numEdges; j++ {
		around := spatialmath.NewR4AAFromAxis(axis, 2*math.Pi*float64(j)/float64(numEdges))
		edges = append(edges, spatialmath.R3ToSlice(around.RotateVector(generator)))
	}
	return edges, nil
}

// frictionConeWrenches returns the wrenches of every friction cone edge of c, applied at c's point.
func (a *Analyzer) frictionConeWrenches(c Contact) ([]spatialmath.Wrench, error) {
	edges, err := a.FrictionConeEdges(c)
	if err != nil {
		return nil, err
	}
	wrenches := make([]spatialmath.Wrench, 0, len(edges))
	for _, edge := range edges {
		w, err := spatialmath.NewWrench(edge, c.Point)
		if err != nil {
			return nil, err
		}
		wrenches = append(wrenches, w)
	}
	return wrenches, nil
}

// halfAngle returns the half-angle of the Coulomb cone for friction coefficient mu.
func halfAngle(mu float64) float64 {
	return math.Atan(mu)
}
