// Package grasp decides whether contacts on a rigid body immobilize it.
//
// Form closure uses the nominal contact force directions only. Force closure lets every contact push
// anywhere inside its Coulomb friction cone, approximated by a finite set of cone edges. Both reduce to
// asking whether a set of wrenches positively spans wrench space, which is answered with a linear program.
// Planar (2-D) and spatial (3-D) bodies are supported.
//
// Every function here is a pure function of its inputs. An Analyzer is immutable once built and may be shared
// between goroutines.
package grasp

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/alvinsunyixiao/grasp/logging"
	"github.com/alvinsunyixiao/grasp/spatialmath"
	"github.com/alvinsunyixiao/grasp/utils"
)

// simplexFunc solves a standard form linear program; lp.Simplex is the only production implementation.
type simplexFunc func(c []float64, A mat.Matrix, b []float64, tol float64, initialBasic []int) (float64, []float64, error)

// An Analyzer runs closure tests with a fixed configuration.
type Analyzer struct {
	cfg     Config
	logger  logging.Logger
	simplex simplexFunc
}

// NewAnalyzer validates cfg and returns an Analyzer using it. A nil cfg means DefaultConfig, and a nil logger
// discards all output.
func NewAnalyzer(cfg *Config, logger logging.Logger) (*Analyzer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate("grasp"); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("grasp")
	}
	return &Analyzer{cfg: *cfg, logger: logger, simplex: lp.Simplex}, nil
}

func newDefaultAnalyzer() *Analyzer {
	logger := logging.NewBlankLogger("grasp")
	logger.SetLevel(logging.WARN)
	return &Analyzer{cfg: *DefaultConfig(), logger: logger, simplex: lp.Simplex}
}

// Config returns a copy of the analyzer's configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// IsInFormClosure reports whether frictionless forces applied at points hold the body in form closure. See
// Analyzer.IsInFormClosure.
func IsInFormClosure(forces, points [][]float64) (bool, error) {
	return newDefaultAnalyzer().IsInFormClosure(forces, points)
}

// IsInForceClosure reports whether forces applied at points, each free to move inside its friction cone,
// hold the body in force closure. See Analyzer.IsInForceClosure.
func IsInForceClosure(forces, points [][]float64, frictionCoeffs []float64) (bool, error) {
	return newDefaultAnalyzer().IsInForceClosure(forces, points, frictionCoeffs)
}

// IsInFormClosure reports whether the contact forces, applied at points and combined with non-negative
// weights, can resist every disturbance wrench. forces and points must have the same non-zero length and all
// vectors must share a dimension of 2 or 3.
func (a *Analyzer) IsInFormClosure(forces, points [][]float64) (bool, error) {
	contacts, err := NewContacts(forces, points, nil)
	if err != nil {
		return false, err
	}
	return a.ContactsInFormClosure(contacts)
}

// IsInForceClosure is IsInFormClosure with friction: contact i may apply any force inside the Coulomb cone of
// half-angle atan(frictionCoeffs[i]) around forces[i].
func (a *Analyzer) IsInForceClosure(forces, points [][]float64, frictionCoeffs []float64) (bool, error) {
	if len(frictionCoeffs) != len(forces) {
		return false, newShapeMismatchError("%d forces but %d friction coefficients", len(forces), len(frictionCoeffs))
	}
	contacts, err := NewContacts(forces, points, frictionCoeffs)
	if err != nil {
		return false, err
	}
	return a.ContactsInForceClosure(contacts)
}

// ContactsInFormClosure tests form closure of contacts, ignoring their friction coefficients.
func (a *Analyzer) ContactsInFormClosure(contacts []Contact) (bool, error) {
	if err := validateContacts(contacts); err != nil {
		return false, err
	}
	wrenches := make([]spatialmath.Wrench, 0, len(contacts))
	for i, c := range contacts {
		w, err := c.Wrench()
		if err != nil {
			return false, errors.Wrapf(err, "contact %d", i)
		}
		wrenches = append(wrenches, w)
	}
	return a.WrenchesInClosure(wrenches)
}

// ContactsInForceClosure tests force closure of contacts. Each contact is replaced by the edges of its friction
// cone and the union of all edge wrenches is tested for closure.
func (a *Analyzer) ContactsInForceClosure(contacts []Contact) (bool, error) {
	if err := validateContacts(contacts); err != nil {
		return false, err
	}
	perContact := make([][]spatialmath.Wrench, 0, len(contacts))
	for i, c := range contacts {
		wrenches, err := a.frictionConeWrenches(c)
		if err != nil {
			return false, errors.Wrapf(err, "contact %d", i)
		}
		// Edges are checked per contact so errors name the contact rather than a position in the edge union.
		if _, err := validateWrenches(wrenches); err != nil {
			return false, errors.Wrapf(err, "contact %d", i)
		}
		if c.Friction > 0 {
			a.logger.Debugw("discretized friction cone",
				"contact", i, "edges", len(wrenches), "half_angle_deg", utils.RadToDeg(halfAngle(c.Friction)))
		}
		perContact = append(perContact, wrenches)
	}
	return a.WrenchesInClosure(lo.Flatten(perContact))
}

func validateContacts(contacts []Contact) error {
	if len(contacts) == 0 {
		return newShapeMismatchError("at least one contact is required")
	}
	dim := contacts[0].Dim()
	for i, c := range contacts {
		if c.Dim() != dim {
			return newShapeMismatchError("contact %d is not %d-dimensional", i, dim)
		}
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, "contact %d", i)
		}
	}
	return nil
}
