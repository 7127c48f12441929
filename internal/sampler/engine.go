package sampler

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/aterrel/specsim/internal/constants"
)

// Problem is the sampling problem handed to an engine: parameter names,
// a log-likelihood callable and the prior transform mapping the unit
// cube to parameter space.
type Problem struct {
	Names          []string
	LogLikelihood  func(values []float64) float64
	PriorTransform func(cube []float64) []float64
}

// Options configures an engine run. LogDir and Resume are opaque
// pass-throughs for engines that checkpoint to disk; this package never
// interprets them.
type Options struct {
	LivePoints  int
	FracRemain  float64
	LogDir      string
	Resume      string
	StepSampler bool
	NSteps      int
}

// DefaultOptions returns the default engine options.
func DefaultOptions() Options {
	return Options{
		LivePoints: constants.DefaultLivePoints,
		FracRemain: constants.DefaultFracRemain,
		Resume:     constants.DefaultResumeMode,
		NSteps:     constants.DefaultNSteps,
	}
}

// Validate checks option ranges. FracRemain must lie in (0, 1].
func (o Options) Validate() error {
	if o.LivePoints <= 0 {
		return fmt.Errorf("live points must be positive, got %d", o.LivePoints)
	}
	if o.FracRemain <= 0 || o.FracRemain > 1 {
		return fmt.Errorf("frac remain must be in (0, 1], got %v", o.FracRemain)
	}
	if o.StepSampler && o.NSteps <= 0 {
		return fmt.Errorf("step sampler enabled with nsteps %d", o.NSteps)
	}
	return nil
}

// RawResult is the payload an engine returns from a completed run.
// Samples has one row per posterior draw and one column per parameter,
// in Problem.Names order. Raw carries the engine's native result
// untouched for diagnostics.
type RawResult struct {
	NumCalls       int
	Converged      bool
	PosteriorMean  []float64
	PosteriorStdev []float64
	Samples        *mat.Dense
	Raw            map[string]any
}

// Engine is a nested-sampling backend. Run blocks until the engine has
// finished (or ctx is cancelled) and returns the raw posterior payload.
// Engine errors propagate to the caller unmodified.
type Engine interface {
	Name() string
	Run(ctx context.Context, problem Problem, opts Options) (*RawResult, error)
}

var (
	enginesMu sync.RWMutex
	engines   = map[string]func() Engine{}
)

// RegisterEngine makes an engine constructor available to NewEngine
// under the given name. Engines live in external packages; this core
// ships none of its own.
func RegisterEngine(name string, constructor func() Engine) {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	engines[name] = constructor
}

// NewEngine resolves a backend by name. An unknown name is a fatal
// configuration error, never a fallback to a default backend.
func NewEngine(name string) (Engine, error) {
	enginesMu.RLock()
	constructor, ok := engines[name]
	enginesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnsupportedBackend, name, engineNames())
	}
	return constructor(), nil
}

func engineNames() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
