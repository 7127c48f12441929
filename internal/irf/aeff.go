package irf

import (
	"fmt"
	"math"

	"github.com/aterrel/specsim/internal/constants"
)

// EffectiveArea is the effective collection area of the instrument in
// cm² per true-energy bin.
type EffectiveArea struct {
	axis *EnergyAxis
	area []float64
}

// NewEffectiveArea creates an effective area from an explicit table.
// area must hold one non-negative value per bin of axis.
func NewEffectiveArea(axis *EnergyAxis, area []float64) (*EffectiveArea, error) {
	if len(area) != axis.NBins() {
		return nil, fmt.Errorf("%w: %d area values for %d bins", ErrBinningMismatch, len(area), axis.NBins())
	}
	for i, a := range area {
		if a < 0 || math.IsNaN(a) {
			return nil, fmt.Errorf("invalid effective area %v in bin %d", a, i)
		}
	}
	return &EffectiveArea{axis: axis, area: append([]float64(nil), area...)}, nil
}

// ParametricEffectiveArea builds an effective area from the standard
// g1 * x^(-g2) * exp(-g3/x) parametrization, evaluated at each bin's
// log-center (x = energy in MeV).
func ParametricEffectiveArea(axis *EnergyAxis) *EffectiveArea {
	area := make([]float64, axis.NBins())
	for i := range area {
		x := axis.Center(i) * constants.MeVPerTeV
		area[i] = constants.AeffG1 * math.Pow(x, -constants.AeffG2) * math.Exp(-constants.AeffG3/x)
	}
	return &EffectiveArea{axis: axis, area: area}
}

// Axis returns the true-energy axis.
func (a *EffectiveArea) Axis() *EnergyAxis {
	return a.axis
}

// At returns the effective area (cm²) in true-energy bin i.
func (a *EffectiveArea) At(i int) float64 {
	return a.area[i]
}
