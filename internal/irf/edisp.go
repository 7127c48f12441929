package irf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EnergyDispersion maps counts in true-energy bins onto
// reconstructed-energy bins through a migration matrix. Row i holds
// P(reco bin j | true bin i); rows sum to at most 1, the remainder
// migrating outside the reco range.
type EnergyDispersion struct {
	eTrue *EnergyAxis
	eReco *EnergyAxis
	pdf   *mat.Dense
}

// NewEnergyDispersion creates a dispersion from an explicit migration
// matrix with eTrue.NBins() rows and eReco.NBins() columns.
func NewEnergyDispersion(eTrue, eReco *EnergyAxis, migration *mat.Dense) (*EnergyDispersion, error) {
	rows, cols := migration.Dims()
	if rows != eTrue.NBins() || cols != eReco.NBins() {
		return nil, fmt.Errorf("%w: migration matrix is %dx%d for %d true and %d reco bins",
			ErrBinningMismatch, rows, cols, eTrue.NBins(), eReco.NBins())
	}
	return &EnergyDispersion{eTrue: eTrue, eReco: eReco, pdf: migration}, nil
}

// GaussianEnergyDispersion builds a dispersion whose migration
// reco/true is normally distributed with width sigma around 1 + bias.
// Each row integrates the Gaussian over the reco bins.
func GaussianEnergyDispersion(eTrue, eReco *EnergyAxis, sigma, bias float64) (*EnergyDispersion, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("dispersion sigma must be positive, got %v", sigma)
	}

	migra := distuv.Normal{Mu: 1 + bias, Sigma: sigma}
	pdf := mat.NewDense(eTrue.NBins(), eReco.NBins(), nil)
	for i := 0; i < eTrue.NBins(); i++ {
		center := eTrue.Center(i)
		for j := 0; j < eReco.NBins(); j++ {
			lo, hi := eReco.Bin(j)
			pdf.Set(i, j, migra.CDF(hi/center)-migra.CDF(lo/center))
		}
	}
	return &EnergyDispersion{eTrue: eTrue, eReco: eReco, pdf: pdf}, nil
}

// TrueAxis returns the true-energy axis.
func (d *EnergyDispersion) TrueAxis() *EnergyAxis {
	return d.eTrue
}

// RecoAxis returns the reconstructed-energy axis.
func (d *EnergyDispersion) RecoAxis() *EnergyAxis {
	return d.eReco
}

// Prob returns the migration probability from true bin i to reco bin j.
func (d *EnergyDispersion) Prob(i, j int) float64 {
	return d.pdf.At(i, j)
}

// Apply folds a vector of expected counts per true bin into expected
// counts per reco bin.
func (d *EnergyDispersion) Apply(trueCounts []float64) ([]float64, error) {
	if len(trueCounts) != d.eTrue.NBins() {
		return nil, fmt.Errorf("%w: %d counts for %d true bins", ErrBinningMismatch, len(trueCounts), d.eTrue.NBins())
	}

	in := mat.NewVecDense(len(trueCounts), trueCounts)
	out := mat.NewVecDense(d.eReco.NBins(), nil)
	out.MulVec(d.pdf.T(), in)
	return out.RawVector().Data, nil
}
