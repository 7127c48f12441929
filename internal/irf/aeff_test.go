package irf

import (
	"errors"
	"testing"
)

func TestNewEffectiveArea(t *testing.T) {
	axis, _ := LogSpacedAxis(0.1, 10, 4)

	aeff, err := NewEffectiveArea(axis, []float64{1e8, 5e8, 1e9, 1.2e9})
	if err != nil {
		t.Fatalf("NewEffectiveArea: %v", err)
	}
	if aeff.At(2) != 1e9 {
		t.Errorf("At(2) = %v", aeff.At(2))
	}
}

func TestNewEffectiveAreaMismatch(t *testing.T) {
	axis, _ := LogSpacedAxis(0.1, 10, 4)
	if _, err := NewEffectiveArea(axis, []float64{1e8, 5e8}); !errors.Is(err, ErrBinningMismatch) {
		t.Errorf("err = %v, want ErrBinningMismatch", err)
	}
}

func TestNewEffectiveAreaNegative(t *testing.T) {
	axis, _ := LogSpacedAxis(0.1, 10, 2)
	if _, err := NewEffectiveArea(axis, []float64{1e8, -1}); err == nil {
		t.Error("expected error for negative area")
	}
}

func TestParametricEffectiveArea(t *testing.T) {
	axis, _ := LogSpacedAxis(0.01, 100, 72)
	aeff := ParametricEffectiveArea(axis)

	for i := 0; i < axis.NBins(); i++ {
		if aeff.At(i) < 0 {
			t.Fatalf("negative area in bin %d", i)
		}
	}

	// The exponential cutoff suppresses the lowest energies: the area
	// at 10 GeV must be far below the area at 1 TeV.
	lowBin, tevBin := 0, 0
	for i := 0; i < axis.NBins(); i++ {
		if axis.Center(i) < 1.0 {
			tevBin = i
		}
	}
	if aeff.At(lowBin) > aeff.At(tevBin)/10 {
		t.Errorf("no low-energy suppression: %v at %v TeV vs %v at %v TeV",
			aeff.At(lowBin), axis.Center(lowBin), aeff.At(tevBin), axis.Center(tevBin))
	}
}
