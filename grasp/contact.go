package grasp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/alvinsunyixiao/grasp/spatialmath"
	"github.com/alvinsunyixiao/grasp/utils"
)

// A Contact is a force applied to a rigid body at a point, both expressed in the body frame. Force and Point
// have the same dimension, 2 for planar bodies and 3 for spatial ones. Friction is the Coulomb coefficient of
// the contact; zero restricts the contact to its nominal force direction.
type Contact struct {
	Force    []float64
	Point    []float64
	Friction float64
}

// Dim returns the ambient dimension of the contact.
func (c Contact) Dim() int {
	return len(c.Force)
}

// Wrench returns the wrench of the nominal contact force.
func (c Contact) Wrench() (spatialmath.Wrench, error) {
	return spatialmath.NewWrench(c.Force, c.Point)
}

// Validate checks that the contact is well formed on its own.
func (c Contact) Validate() error {
	if len(c.Force) != len(c.Point) {
		return newShapeMismatchError("force has %d components but point has %d", len(c.Force), len(c.Point))
	}
	if _, err := spatialmath.WrenchDim(len(c.Force)); err != nil {
		return err
	}
	if !utils.IsFinite(c.Force...) || !utils.IsFinite(c.Point...) || floats.Norm(c.Force, 2) == 0 {
		return errors.Wrap(ErrDegenerateWrench, "contact force must be finite and non-zero")
	}
	if !utils.IsFinite(c.Friction) || c.Friction < 0 {
		return newInvalidFrictionCoefficientError(c.Friction)
	}
	return nil
}

// NewContacts zips forces, points and friction coefficients into contacts. frictionCoeffs may be nil, in
// which case every contact is frictionless. All contacts must share one ambient dimension.
func NewContacts(forces, points [][]float64, frictionCoeffs []float64) ([]Contact, error) {
	if len(forces) == 0 {
		return nil, newShapeMismatchError("at least one contact is required")
	}
	if len(forces) != len(points) {
		return nil, newShapeMismatchError("%d forces but %d points", len(forces), len(points))
	}
	if frictionCoeffs != nil && len(frictionCoeffs) != len(forces) {
		return nil, newShapeMismatchError("%d forces but %d friction coefficients", len(forces), len(frictionCoeffs))
	}

	dim := len(forces[0])
	contacts := make([]Contact, 0, len(forces))
	for i := range forces {
		c := Contact{Force: forces[i], Point: points[i]}
		if frictionCoeffs != nil {
			c.Friction = frictionCoeffs[i]
		}
		if c.Dim() != dim || len(c.Point) != dim {
			return nil, newShapeMismatchError("contact %d is not %d-dimensional", i, dim)
		}
		if err := c.Validate(); err != nil {
			return nil, errors.Wrapf(err, "contact %d", i)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}
