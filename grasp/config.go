package grasp

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/alvinsunyixiao/grasp/utils"
)

const (
	// DefaultFrictionConeEdges is the number of edges used to approximate a spatial friction cone. The
	// polyhedral cone is inscribed in the true Coulomb cone, so more edges give a tighter and less conservative
	// approximation at the cost of a larger linear program. Planar cones always have exactly two edges.
	DefaultFrictionConeEdges = 8
	// MinFrictionConeEdges is the smallest edge count that still yields a cone with a non-empty interior.
	MinFrictionConeEdges = 3

	// DefaultClosureTolerance is the smallest optimal slack accepted as closure. Slacks at or below it report
	// no closure.
	DefaultClosureTolerance = 1e-7
	// DefaultSolverTolerance is handed to the simplex solver.
	DefaultSolverTolerance = 1e-10
	// DefaultRankTolerance is the relative singular value cutoff for the constraint matrix rank test.
	DefaultRankTolerance = 1e-9
)

// Config tunes an Analyzer.
type Config struct {
	FrictionConeEdges int     `json:"friction_cone_edges"`
	ClosureTolerance  float64 `json:"closure_tolerance"`
	SolverTolerance   float64 `json:"solver_tolerance"`
	RankTolerance     float64 `json:"rank_tolerance"`
}

// DefaultConfig returns the configuration used by IsInFormClosure and IsInForceClosure.
func DefaultConfig() *Config {
	return &Config{
		FrictionConeEdges: DefaultFrictionConeEdges,
		ClosureTolerance:  DefaultClosureTolerance,
		SolverTolerance:   DefaultSolverTolerance,
		RankTolerance:     DefaultRankTolerance,
	}
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	var errs error
	if cfg.FrictionConeEdges < MinFrictionConeEdges {
		errs = multierr.Append(errs, utils.NewConfigValidationError(path,
			errors.Errorf("friction_cone_edges must be at least %d, got %d", MinFrictionConeEdges, cfg.FrictionConeEdges)))
	}
	if !(cfg.ClosureTolerance > 0) {
		errs = multierr.Append(errs, utils.NewConfigValidationFieldRequiredError(path, "closure_tolerance"))
	}
	if !(cfg.SolverTolerance > 0) {
		errs = multierr.Append(errs, utils.NewConfigValidationFieldRequiredError(path, "solver_tolerance"))
	}
	if !(cfg.RankTolerance > 0) {
		errs = multierr.Append(errs, utils.NewConfigValidationFieldRequiredError(path, "rank_tolerance"))
	}
	return errs
}

// NewConfigFromAttributes decodes attributes on top of DefaultConfig and validates the result. Unknown
// attributes are an error.
func NewConfigFromAttributes(attributes utils.AttributeMap) (*Config, error) {
	conf := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: conf, ErrorUnused: true})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(map[string]interface{}(attributes)); err != nil {
		return nil, errors.Wrap(err, "decoding grasp attributes")
	}
	if err := conf.Validate("grasp"); err != nil {
		return nil, err
	}
	return conf, nil
}
