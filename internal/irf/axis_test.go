package irf

import (
	"math"
	"testing"
)

func TestNewEnergyAxis(t *testing.T) {
	tests := []struct {
		name    string
		edges   []float64
		wantErr bool
	}{
		{"valid", []float64{0.1, 1, 10}, false},
		{"single edge", []float64{1}, true},
		{"non-increasing", []float64{1, 1, 10}, true},
		{"decreasing", []float64{10, 1}, true},
		{"non-positive edge", []float64{0, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, err := NewEnergyAxis(tt.edges)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEnergyAxis: %v", err)
			}
			if axis.NBins() != len(tt.edges)-1 {
				t.Errorf("NBins = %d, want %d", axis.NBins(), len(tt.edges)-1)
			}
		})
	}
}

func TestLogSpacedAxis(t *testing.T) {
	axis, err := LogSpacedAxis(0.01, 100, 40)
	if err != nil {
		t.Fatalf("LogSpacedAxis: %v", err)
	}
	if axis.NBins() != 40 {
		t.Fatalf("NBins = %d, want 40", axis.NBins())
	}

	edges := axis.Edges()
	if edges[0] != 0.01 || edges[40] != 100 {
		t.Errorf("boundaries not pinned: [%v, %v]", edges[0], edges[40])
	}

	// Log spacing: the edge ratio is constant.
	ratio := edges[1] / edges[0]
	for i := 1; i < len(edges)-1; i++ {
		r := edges[i+1] / edges[i]
		if math.Abs(r-ratio)/ratio > 1e-9 {
			t.Fatalf("edge ratio drifts at %d: %v vs %v", i, r, ratio)
		}
	}
}

func TestAxisCenter(t *testing.T) {
	axis, err := NewEnergyAxis([]float64{1, 4})
	if err != nil {
		t.Fatalf("NewEnergyAxis: %v", err)
	}
	if got := axis.Center(0); math.Abs(got-2) > 1e-12 {
		t.Errorf("Center = %v, want geometric mean 2", got)
	}
}

func TestAxisEqual(t *testing.T) {
	a, _ := LogSpacedAxis(0.1, 10, 20)
	b, _ := LogSpacedAxis(0.1, 10, 20)
	c, _ := LogSpacedAxis(0.1, 10, 21)

	if !a.Equal(b) {
		t.Error("identical axes reported unequal")
	}
	if a.Equal(c) {
		t.Error("different binning reported equal")
	}
	if a.Equal(nil) {
		t.Error("nil axis reported equal")
	}
}
