package sampler

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/aterrel/specsim/internal/modeling"
)

// Sampler drives one external nested-sampling engine over a parameter
// set. The engine does all the heavy lifting; Sampler owns only the
// adapter plumbing around it.
//
// A Sampler holds no result state between runs: diagnostics travel in
// the returned Result, never on the Sampler itself. Concurrent runs over
// the same Parameters value are disallowed (consolidation mutates the
// parameters in place).
type Sampler struct {
	engine Engine
	opts   Options
}

// New creates a Sampler for the given engine. Options are validated up
// front; an invalid configuration never reaches the engine.
func New(engine Engine, opts Options) (*Sampler, error) {
	if engine == nil {
		return nil, fmt.Errorf("%w: no engine configured", ErrUnsupportedBackend)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("sampler options: %w", err)
	}
	return &Sampler{engine: engine, opts: opts}, nil
}

// Result is an immutable snapshot of a completed sampling run.
type Result struct {
	// NumCalls is the number of likelihood evaluations the engine made.
	NumCalls int

	// Converged reports the engine's convergence diagnostic. Its exact
	// meaning depends on the backend.
	Converged bool

	// Parameters is the parameter set at completion, already updated
	// with posterior means and stdevs.
	Parameters *modeling.Parameters

	// Covariance is the sample covariance of the free parameters.
	Covariance *modeling.Covariance

	// Samples is the raw posterior sample matrix (rows = draws).
	Samples *mat.Dense

	// Raw is the engine's native result payload, untouched.
	Raw map[string]any
}

// Run executes one sampling run: it checks that every free parameter
// carries a prior, builds the likelihood adapter and prior transform,
// delegates to the engine, then consolidates the posterior onto the
// parameter set and attaches the covariance.
//
// The prior check happens before any likelihood evaluation. Engine
// failures propagate unmodified.
func (s *Sampler) Run(ctx context.Context, params *modeling.Parameters, stat StatFunc) (*Result, error) {
	free := params.Free()
	for _, par := range free {
		if par.Prior == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingPrior, par.Name)
		}
	}

	like := &Likelihood{Stat: stat, Parameters: params}
	problem := Problem{
		Names:         params.FreeNames(),
		LogLikelihood: like.Evaluate,
		PriorTransform: func(cube []float64) []float64 {
			values := make([]float64, len(free))
			for i, par := range free {
				values[i] = par.Prior.InverseCDF(cube[i])
			}
			return values
		},
	}

	raw, err := s.engine.Run(ctx, problem, s.opts)
	if err != nil {
		return nil, err
	}

	cov, err := Consolidate(free, raw.PosteriorMean, raw.PosteriorStdev, raw.Samples)
	if err != nil {
		return nil, err
	}
	params.SetCovariance(cov)

	return &Result{
		NumCalls:   raw.NumCalls,
		Converged:  raw.Converged,
		Parameters: params,
		Covariance: cov,
		Samples:    raw.Samples,
		Raw:        raw.Raw,
	}, nil
}
