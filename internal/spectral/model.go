// Package spectral provides differential spectral flux models with
// analytic bin integrals, in units of cm⁻² s⁻¹ TeV⁻¹ over energies in
// TeV.
package spectral

// Model is a differential photon flux model.
type Model interface {
	// Evaluate returns the differential flux at the given energy (TeV).
	Evaluate(energy float64) float64

	// Integral returns the flux integrated over [lo, hi] (TeV),
	// in cm⁻² s⁻¹.
	Integral(lo, hi float64) float64
}
