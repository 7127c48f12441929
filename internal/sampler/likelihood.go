// Package sampler adapts a parameter set and a fit statistic to an
// external nested-sampling engine, and consolidates the engine's
// posterior output back onto the parameters.
package sampler

import (
	"fmt"

	"github.com/aterrel/specsim/internal/modeling"
)

// StatFunc is the scalar fit statistic of a dataset collection
// (a chi-square/Cash-like "stat sum"). It reads the current parameter
// values and is re-evaluated on every call; the adapter never caches.
type StatFunc func() float64

// Likelihood wraps a fit statistic as the log-likelihood callable a
// nested sampler expects. Evaluate assigns the proposed values into the
// parameter set, then rescales the statistic by -0.5 to convert it into
// a log-likelihood-proportional quantity.
type Likelihood struct {
	Stat       StatFunc
	Parameters *modeling.Parameters
}

// Evaluate assigns values to the free parameters (in free-parameter
// order) and returns -0.5 times the statistic. The engine owns the
// callback signature, so a dimension mismatch here can only be a
// programming error and panics rather than failing silently.
func (l *Likelihood) Evaluate(values []float64) float64 {
	if err := l.Parameters.SetFreeValues(values); err != nil {
		panic(fmt.Sprintf("sampler: likelihood evaluation: %v", err))
	}
	return -0.5 * l.Stat()
}
