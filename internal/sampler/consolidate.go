package sampler

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/aterrel/specsim/internal/modeling"
)

// Consolidate writes posterior point estimates back onto the free
// parameters and recomputes the covariance from the raw sample matrix.
//
// For each free parameter at index i, Value becomes means[i] and Error
// becomes stdevs[i]. The covariance is the unbiased sample covariance of
// samples (rows = draws, columns = free parameters, in the same order).
// The parameters are mutated in place; the returned covariance is the
// only new value.
//
// A length mismatch between the parameters, the statistics and the
// sample columns is a programming error and fails with
// ErrDimensionMismatch before any parameter is touched. Zero free
// parameters is a valid no-op yielding an empty covariance.
func Consolidate(free []*modeling.Parameter, means, stdevs []float64, samples mat.Matrix) (*modeling.Covariance, error) {
	n := len(free)
	if len(means) != n || len(stdevs) != n {
		return nil, fmt.Errorf("%w: %d parameters, %d means, %d stdevs",
			ErrDimensionMismatch, n, len(means), len(stdevs))
	}
	if n > 0 {
		if _, cols := samples.Dims(); cols != n {
			return nil, fmt.Errorf("%w: %d parameters, %d sample columns",
				ErrDimensionMismatch, n, cols)
		}
	}

	names := make([]string, n)
	for i, par := range free {
		par.Value = means[i]
		par.Error = stdevs[i]
		names[i] = par.Name
	}

	cov, err := modeling.NewCovarianceFromSamples(names, samples)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
	return cov, nil
}
