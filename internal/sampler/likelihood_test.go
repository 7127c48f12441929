package sampler

import (
	"testing"

	"github.com/aterrel/specsim/internal/modeling"
)

func TestLikelihoodAssignsBeforeEvaluating(t *testing.T) {
	index := &modeling.Parameter{Name: "index", Value: 2.3}
	amplitude := &modeling.Parameter{Name: "amplitude", Value: 2.5e-12}
	params := modeling.NewParameters(index, amplitude)

	// The statistic reads the parameters, so it observes the assignment
	// side effect if and only if assignment happens first.
	stat := func() float64 {
		return index.Value + amplitude.Value
	}

	like := &Likelihood{Stat: stat, Parameters: params}

	got := like.Evaluate([]float64{2.0, 4.0})
	if want := -0.5 * 6.0; got != want {
		t.Errorf("Evaluate = %v, want %v", got, want)
	}
	if index.Value != 2.0 || amplitude.Value != 4.0 {
		t.Errorf("parameters not assigned: index=%v amplitude=%v", index.Value, amplitude.Value)
	}
}

func TestLikelihoodScaling(t *testing.T) {
	tests := []struct {
		name string
		stat float64
		want float64
	}{
		{"zero", 0, 0},
		{"positive", 42.5, -21.25},
		{"negative", -10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := modeling.NewParameters(&modeling.Parameter{Name: "p"})
			like := &Likelihood{
				Stat:       func() float64 { return tt.stat },
				Parameters: params,
			}
			if got := like.Evaluate([]float64{1.0}); got != tt.want {
				t.Errorf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLikelihoodNoCaching(t *testing.T) {
	calls := 0
	params := modeling.NewParameters(&modeling.Parameter{Name: "p"})
	like := &Likelihood{
		Stat:       func() float64 { calls++; return 1.0 },
		Parameters: params,
	}

	// Identical inputs must re-evaluate the statistic every time.
	like.Evaluate([]float64{1.0})
	like.Evaluate([]float64{1.0})
	like.Evaluate([]float64{1.0})

	if calls != 3 {
		t.Errorf("statistic evaluated %d times, want 3", calls)
	}
}
