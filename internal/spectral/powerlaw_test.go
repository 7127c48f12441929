package spectral

import (
	"math"
	"testing"
)

func TestPowerLawEvaluate(t *testing.T) {
	pl := PowerLaw{Index: 2.3, Amplitude: 2.5e-12, Reference: 1.0}

	if got := pl.Evaluate(1.0); math.Abs(got-2.5e-12)/2.5e-12 > 1e-12 {
		t.Errorf("Evaluate(reference) = %v, want amplitude", got)
	}

	// One decade up in energy drops the flux by 10^index.
	want := 2.5e-12 * math.Pow(10, -2.3)
	if got := pl.Evaluate(10.0); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("Evaluate(10) = %v, want %v", got, want)
	}
}

func TestPowerLawIntegral(t *testing.T) {
	tests := []struct {
		name   string
		pl     PowerLaw
		lo, hi float64
	}{
		{"steep", PowerLaw{Index: 2.3, Amplitude: 2.5e-12, Reference: 1.0}, 0.1, 10},
		{"hard", PowerLaw{Index: 1.5, Amplitude: 1e-11, Reference: 1.0}, 1, 100},
		{"shifted reference", PowerLaw{Index: 3.0, Amplitude: 3e-12, Reference: 0.5}, 0.2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pl.Integral(tt.lo, tt.hi)
			want := numericIntegral(tt.pl, tt.lo, tt.hi)
			if math.Abs(got-want)/want > 1e-6 {
				t.Errorf("Integral = %v, numeric reference %v", got, want)
			}
		})
	}
}

func TestPowerLawIntegralIndexOne(t *testing.T) {
	pl := PowerLaw{Index: 1, Amplitude: 2e-12, Reference: 1.0}

	// Exact: A * ref * ln(hi/lo).
	want := 2e-12 * math.Log(10.0/0.1)
	if got := pl.Integral(0.1, 10); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("Integral = %v, want %v", got, want)
	}
}

func TestPowerLawIntegralAdditivity(t *testing.T) {
	pl := PowerLaw{Index: 2.3, Amplitude: 2.5e-12, Reference: 1.0}

	whole := pl.Integral(0.1, 10)
	split := pl.Integral(0.1, 1) + pl.Integral(1, 10)
	if math.Abs(whole-split)/whole > 1e-12 {
		t.Errorf("integral not additive: %v vs %v", whole, split)
	}
}

func TestExpCutoffPowerLaw(t *testing.T) {
	ecpl := ExpCutoffPowerLaw{Index: 2.0, Amplitude: 1e-11, Reference: 1.0, Lambda: 0.1}
	pl := PowerLaw{Index: 2.0, Amplitude: 1e-11, Reference: 1.0}

	// The cutoff only ever suppresses the flux.
	for _, e := range []float64{0.1, 1, 10, 50} {
		if ecpl.Evaluate(e) >= pl.Evaluate(e) {
			t.Errorf("no suppression at %v TeV", e)
		}
	}

	got := ecpl.Integral(0.5, 2)
	want := numericIntegral(ecpl, 0.5, 2)
	if math.Abs(got-want)/want > 1e-3 {
		t.Errorf("Integral = %v, numeric reference %v", got, want)
	}

	// Lambda -> 0 recovers the plain power law.
	noCutoff := ExpCutoffPowerLaw{Index: 2.0, Amplitude: 1e-11, Reference: 1.0, Lambda: 0}
	if math.Abs(noCutoff.Integral(0.5, 2)-pl.Integral(0.5, 2))/pl.Integral(0.5, 2) > 1e-3 {
		t.Error("Lambda=0 does not recover the power law")
	}
}

// numericIntegral is a fine midpoint-rule reference integrator.
func numericIntegral(m Model, lo, hi float64) float64 {
	const steps = 200000
	h := (hi - lo) / steps
	sum := 0.0
	for i := 0; i < steps; i++ {
		sum += m.Evaluate(lo + (float64(i)+0.5)*h)
	}
	return sum * h
}
