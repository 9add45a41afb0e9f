package grasp

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/alvinsunyixiao/grasp/spatialmath"
	"github.com/alvinsunyixiao/grasp/utils"
)

// WrenchesInClosure reports whether the wrenches positively span their space, i.e. whether any wrench can be
// balanced by a non-negative combination of them. Wrenches are normalized first, so only their directions
// matter.
//
// The test solves
//
//	maximize t  s.t.  sum k_i w_i = 0,  sum k_i = 1,  k_i >= t
//
// over the unit wrenches w_i and reports closure iff the optimum exceeds Config.ClosureTolerance.
func (a *Analyzer) WrenchesInClosure(wrenches []spatialmath.Wrench) (bool, error) {
	k, err := validateWrenches(wrenches)
	if err != nil {
		return false, err
	}

	// Positively spanning R^k takes at least k+1 vectors.
	if len(wrenches) < k+1 {
		a.logger.Debugw("too few wrenches for closure", "wrenches", len(wrenches), "dim", k)
		return false, nil
	}

	normalized := lo.Map(wrenches, func(w spatialmath.Wrench, _ int) spatialmath.Wrench {
		return w.Normalize()
	})
	slack, err := a.closureSlack(normalized)
	if err != nil {
		return false, err
	}
	inClosure := slack > a.cfg.ClosureTolerance
	a.logger.Debugw("closure program solved", "wrenches", len(wrenches), "dim", k, "slack", slack, "closure", inClosure)
	return inClosure, nil
}

// closureSlack returns the optimal t of the closure program for unit wrenches. When [W; 1^T] does not have
// full row rank the wrenches either lie in a proper subspace or in an open half-space, and no strictly
// positive combination can vanish; zero is returned without solving.
func (a *Analyzer) closureSlack(wrenches []spatialmath.Wrench) (float64, error) {
	k, m := wrenches[0].Dim(), len(wrenches)

	// Equalities over k_i: W k = 0 and 1^T k = 1.
	balance := mat.NewDense(k+1, m, nil)
	for j, w := range wrenches {
		balance.SetCol(j, append(append([]float64(nil), w...), 1))
	}

	var svd mat.SVD
	// Factorize only fails to converge on non-finite input, which validateWrenches rejects.
	if ok := svd.Factorize(balance, mat.SVDNone); !ok {
		return 0, newNumericalFailureError(errors.New("singular value decomposition failed"))
	}
	if rank := svd.Rank(a.cfg.RankTolerance); rank < k+1 {
		a.logger.Debugw("closure constraints are rank deficient", "rank", rank, "required", k+1)
		return 0, nil
	}

	// Standard form over x = [s_1 .. s_m, t+, t-] >= 0 with k_i = s_i + t and t = t+ - t-.
	// The t columns are the row sums of the balance matrix.
	rowSums := make([]float64, k+1)
	for i := range rowSums {
		rowSums[i] = floats.Sum(balance.RawRowView(i))
	}
	aEq := mat.NewDense(k+1, m+2, nil)
	aEq.Slice(0, k+1, 0, m).(*mat.Dense).Copy(balance)
	aEq.SetCol(m, rowSums)
	floats.Scale(-1, rowSums)
	aEq.SetCol(m+1, rowSums)

	b := make([]float64, k+1)
	b[k] = 1
	c := make([]float64, m+2)
	c[m], c[m+1] = -1, 1

	_, x, err := a.simplex(c, aEq, b, a.cfg.SolverTolerance, nil)
	if err != nil {
		return 0, newNumericalFailureError(err)
	}
	return x[m] - x[m+1], nil
}

// validateWrenches checks that wrenches is a non-empty list of finite, non-zero wrenches of one supported
// dimension and returns that dimension. Only exactly zero wrenches are degenerate: closure depends on
// directions alone, so no magnitude is too small.
func validateWrenches(wrenches []spatialmath.Wrench) (int, error) {
	if len(wrenches) == 0 {
		return 0, newShapeMismatchError("no wrenches to test")
	}
	k := wrenches[0].Dim()
	if k != spatialmath.PlanarWrenchDim && k != spatialmath.SpatialWrenchDim {
		return 0, errors.Wrapf(ErrDimensionMismatch, "unsupported wrench dimension %d", k)
	}
	for i, w := range wrenches {
		if w.Dim() != k {
			return 0, newShapeMismatchError("wrench %d has %d components, expected %d", i, w.Dim(), k)
		}
		if !utils.IsFinite(w...) {
			return 0, newDegenerateWrenchError(i)
		}
		if norm := w.Norm(); norm == 0 || math.IsInf(norm, 0) {
			return 0, newDegenerateWrenchError(i)
		}
	}
	return k, nil
}
