package spectral

import "math"

// PowerLaw is the spectral model
//
//	dN/dE = Amplitude * (E / Reference)^(-Index)
//
// with Amplitude in cm⁻² s⁻¹ TeV⁻¹ and Reference in TeV.
type PowerLaw struct {
	Index     float64
	Amplitude float64
	Reference float64
}

// Evaluate implements Model.
func (p PowerLaw) Evaluate(energy float64) float64 {
	return p.Amplitude * math.Pow(energy/p.Reference, -p.Index)
}

// Integral implements Model using the exact antiderivative, including
// the logarithmic branch at Index == 1.
func (p PowerLaw) Integral(lo, hi float64) float64 {
	if p.Index == 1 {
		return p.Amplitude * p.Reference * math.Log(hi/lo)
	}
	g := 1 - p.Index
	return p.Amplitude * p.Reference / g *
		(math.Pow(hi/p.Reference, g) - math.Pow(lo/p.Reference, g))
}
