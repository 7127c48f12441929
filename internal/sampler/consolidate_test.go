package sampler

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/aterrel/specsim/internal/modeling"
)

func TestConsolidateUpdatesParameters(t *testing.T) {
	index := &modeling.Parameter{Name: "index", Value: 2.3}
	amplitude := &modeling.Parameter{Name: "amplitude", Value: 2.5e-12}
	free := []*modeling.Parameter{index, amplitude}

	means := []float64{2.27, 2.61e-12}
	stdevs := []float64{0.05, 1.2e-13}
	samples := mat.NewDense(4, 2, []float64{
		2.25, 2.5e-12,
		2.30, 2.7e-12,
		2.24, 2.6e-12,
		2.29, 2.63e-12,
	})

	cov, err := Consolidate(free, means, stdevs, samples)
	if err != nil {
		t.Fatalf("Consolidate: %v", err)
	}

	if index.Value != 2.27 || index.Error != 0.05 {
		t.Errorf("index = %v ± %v, want 2.27 ± 0.05", index.Value, index.Error)
	}
	if amplitude.Value != 2.61e-12 || amplitude.Error != 1.2e-13 {
		t.Errorf("amplitude = %v ± %v, want 2.61e-12 ± 1.2e-13", amplitude.Value, amplitude.Error)
	}

	if cov.Dim() != 2 {
		t.Fatalf("covariance dim = %d, want 2", cov.Dim())
	}
	if cov.At(0, 1) != cov.At(1, 0) {
		t.Error("covariance not symmetric")
	}
	names := cov.Names()
	if names[0] != "index" || names[1] != "amplitude" {
		t.Errorf("covariance names out of order: %v", names)
	}
}

func TestConsolidateDimensionMismatch(t *testing.T) {
	free := []*modeling.Parameter{{Name: "a", Value: 1}, {Name: "b", Value: 2}}
	samples := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	tests := []struct {
		name   string
		means  []float64
		stdevs []float64
		m      mat.Matrix
	}{
		{"short means", []float64{1}, []float64{1, 2}, samples},
		{"short stdevs", []float64{1, 2}, []float64{1}, samples},
		{"wrong columns", []float64{1, 2}, []float64{1, 2}, mat.NewDense(3, 3, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Consolidate(free, tt.means, tt.stdevs, tt.m)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("err = %v, want ErrDimensionMismatch", err)
			}
			// Fail-fast contract: parameters are untouched on error.
			if free[0].Value != 1 || free[1].Value != 2 {
				t.Error("parameters mutated despite error")
			}
		})
	}
}

func TestConsolidateZeroParameters(t *testing.T) {
	cov, err := Consolidate(nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("zero free parameters should be a no-op: %v", err)
	}
	if cov.Dim() != 0 {
		t.Errorf("covariance dim = %d, want 0", cov.Dim())
	}
}
