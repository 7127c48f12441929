package modeling

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Covariance is the symmetric covariance matrix of a set of free
// parameters. Rows and columns are aligned index-for-index with the
// free-parameter order used to build it.
type Covariance struct {
	names []string
	m     *mat.SymDense
}

// NewCovarianceFromSamples computes the unbiased (N-1 denominator)
// sample covariance of a posterior sample matrix. Rows of samples are
// draws, columns are free parameters in the order given by names.
//
// A zero-length names slice yields a valid empty covariance; samples is
// ignored in that case. Otherwise samples must have len(names) columns
// and at least two rows.
func NewCovarianceFromSamples(names []string, samples mat.Matrix) (*Covariance, error) {
	if len(names) == 0 {
		return &Covariance{}, nil
	}
	rows, cols := samples.Dims()
	if cols != len(names) {
		return nil, fmt.Errorf("sample matrix has %d columns for %d parameters", cols, len(names))
	}
	if rows < 2 {
		return nil, fmt.Errorf("sample covariance needs at least 2 draws, got %d", rows)
	}

	m := mat.NewSymDense(cols, nil)
	stat.CovarianceMatrix(m, samples, nil)

	return &Covariance{names: append([]string(nil), names...), m: m}, nil
}

// Dim returns the matrix dimension (the number of free parameters).
func (c *Covariance) Dim() int {
	if c.m == nil {
		return 0
	}
	return c.m.SymmetricDim()
}

// At returns the covariance between parameters i and j.
func (c *Covariance) At(i, j int) float64 {
	return c.m.At(i, j)
}

// Get looks up the covariance between two parameters by name.
// The second return is false if either name is not in the matrix.
func (c *Covariance) Get(ni, nj string) (float64, bool) {
	i := c.index(ni)
	j := c.index(nj)
	if i < 0 || j < 0 {
		return 0, false
	}
	return c.m.At(i, j), true
}

// Names returns the parameter names in matrix order.
func (c *Covariance) Names() []string {
	return append([]string(nil), c.names...)
}

// Sym exposes the underlying symmetric matrix for callers that need to
// do further linear algebra. The returned matrix must not be mutated.
func (c *Covariance) Sym() *mat.SymDense {
	return c.m
}

func (c *Covariance) index(name string) int {
	for i, n := range c.names {
		if n == name {
			return i
		}
	}
	return -1
}
