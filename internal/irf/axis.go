// Package irf provides instrument response functions: energy axes,
// effective area and energy dispersion. Responses are pure tables; the
// simulator folds spectral models through them.
package irf

import (
	"errors"
	"fmt"
	"math"
)

// ErrBinningMismatch is returned when two response functions (or a
// response and a count vector) disagree on their energy binning.
var ErrBinningMismatch = errors.New("incompatible energy binning")

// EnergyAxis is an ordered set of contiguous energy bins in TeV,
// defined by its bin edges.
type EnergyAxis struct {
	edges []float64
}

// NewEnergyAxis creates an axis from bin edges. Edges must be positive
// and strictly increasing, with at least two entries.
func NewEnergyAxis(edges []float64) (*EnergyAxis, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("energy axis needs at least 2 edges, got %d", len(edges))
	}
	for i, e := range edges {
		if e <= 0 {
			return nil, fmt.Errorf("energy edge %d is not positive: %v", i, e)
		}
		if i > 0 && e <= edges[i-1] {
			return nil, fmt.Errorf("energy edges not strictly increasing at %d: %v <= %v", i, e, edges[i-1])
		}
	}
	return &EnergyAxis{edges: append([]float64(nil), edges...)}, nil
}

// LogSpacedAxis creates an axis with nbins logarithmically spaced bins
// between emin and emax (TeV).
func LogSpacedAxis(emin, emax float64, nbins int) (*EnergyAxis, error) {
	if nbins < 1 {
		return nil, fmt.Errorf("need at least 1 bin, got %d", nbins)
	}
	if emin <= 0 || emax <= emin {
		return nil, fmt.Errorf("invalid energy range [%v, %v]", emin, emax)
	}
	edges := make([]float64, nbins+1)
	logMin := math.Log(emin)
	step := (math.Log(emax) - logMin) / float64(nbins)
	for i := range edges {
		edges[i] = math.Exp(logMin + float64(i)*step)
	}
	// Pin the boundaries exactly.
	edges[0] = emin
	edges[nbins] = emax
	return &EnergyAxis{edges: edges}, nil
}

// NBins returns the number of bins.
func (a *EnergyAxis) NBins() int {
	return len(a.edges) - 1
}

// Bin returns the lower and upper edge of bin i.
func (a *EnergyAxis) Bin(i int) (lo, hi float64) {
	return a.edges[i], a.edges[i+1]
}

// Center returns the log-center (geometric mean of the edges) of bin i.
func (a *EnergyAxis) Center(i int) float64 {
	return math.Sqrt(a.edges[i] * a.edges[i+1])
}

// Edges returns a copy of the bin edges.
func (a *EnergyAxis) Edges() []float64 {
	return append([]float64(nil), a.edges...)
}

// Equal reports whether two axes share the same binning to within a
// relative tolerance of 1e-9 per edge.
func (a *EnergyAxis) Equal(other *EnergyAxis) bool {
	if other == nil || len(a.edges) != len(other.edges) {
		return false
	}
	for i, e := range a.edges {
		if math.Abs(e-other.edges[i]) > 1e-9*e {
			return false
		}
	}
	return true
}
