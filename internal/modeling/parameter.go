// Package modeling provides the parameter model shared by the sampler
// adapter and the simulator: named fit parameters with priors, an ordered
// free-parameter view, and the covariance matrix attached to a parameter
// set after a sampling run.
package modeling

import (
	"fmt"
)

// Parameter is a single model parameter. A Parameter is mutated in place
// when posterior results are consolidated, so parameter sets share
// pointers rather than copies.
type Parameter struct {
	// Name identifies the parameter within its set, e.g. "index".
	Name string

	// Value is the current point estimate.
	Value float64

	// Error is the 1-sigma uncertainty on Value. Zero until a fit or
	// sampling run has populated it.
	Error float64

	// Frozen excludes the parameter from the free view when true.
	Frozen bool

	// Prior maps the sampler's unit cube onto parameter space.
	// Required on every free parameter before a sampling run.
	Prior Prior
}

// Parameters is an ordered collection of parameters. Insertion order is
// significant: the free view, posterior statistics and sample-matrix
// columns are all aligned index-for-index.
type Parameters struct {
	params     []*Parameter
	covariance *Covariance
}

// NewParameters creates a parameter set from the given parameters,
// preserving their order.
func NewParameters(params ...*Parameter) *Parameters {
	return &Parameters{params: params}
}

// Add appends a parameter to the set.
func (p *Parameters) Add(par *Parameter) {
	p.params = append(p.params, par)
}

// Len returns the total number of parameters, frozen included.
func (p *Parameters) Len() int {
	return len(p.params)
}

// At returns the parameter at index i in insertion order.
func (p *Parameters) At(i int) *Parameter {
	return p.params[i]
}

// Free returns the free (non-frozen) parameters in insertion order.
// The returned slice shares the underlying Parameter pointers.
func (p *Parameters) Free() []*Parameter {
	free := make([]*Parameter, 0, len(p.params))
	for _, par := range p.params {
		if !par.Frozen {
			free = append(free, par)
		}
	}
	return free
}

// FreeNames returns the names of the free parameters in insertion order.
func (p *Parameters) FreeNames() []string {
	free := p.Free()
	names := make([]string, len(free))
	for i, par := range free {
		names[i] = par.Name
	}
	return names
}

// FreeValues returns the current values of the free parameters in
// insertion order.
func (p *Parameters) FreeValues() []float64 {
	free := p.Free()
	values := make([]float64, len(free))
	for i, par := range free {
		values[i] = par.Value
	}
	return values
}

// SetFreeValues assigns values to the free parameters in insertion
// order. The length of values must match the number of free parameters.
func (p *Parameters) SetFreeValues(values []float64) error {
	free := p.Free()
	if len(values) != len(free) {
		return fmt.Errorf("got %d values for %d free parameters", len(values), len(free))
	}
	for i, par := range free {
		par.Value = values[i]
	}
	return nil
}

// SetCovariance attaches a covariance matrix to the set. Called by the
// sampler after posterior consolidation.
func (p *Parameters) SetCovariance(cov *Covariance) {
	p.covariance = cov
}

// Covariance returns the covariance attached by the last sampling run,
// or nil if no run has completed.
func (p *Parameters) Covariance() *Covariance {
	return p.covariance
}
