// Package simulate draws synthetic on/off spectral observations from a
// spectral model folded through instrument responses. Draws are
// deterministic per integer seed.
package simulate

// Observation is one synthetic observation: Poisson counts per
// reconstructed-energy bin for the signal ("on") region and, when a
// background is configured, for the background-control ("off") region.
// An Observation is immutable once returned.
type Observation struct {
	// Seed identifies the observation; it is the seed that produced it.
	Seed uint64

	// OnCounts holds the signal-region counts per reco bin.
	OnCounts []int64

	// OffCounts holds the control-region counts per reco bin, or nil
	// when no background is configured.
	OffCounts []int64

	// Alpha is the on/off exposure ratio, zero without background.
	Alpha float64
}

// TotalOn returns the summed on counts.
func (o *Observation) TotalOn() int64 {
	return sum(o.OnCounts)
}

// TotalOff returns the summed off counts, zero without background.
func (o *Observation) TotalOff() int64 {
	return sum(o.OffCounts)
}

// ResultSet holds the observations of a batch run, ordered exactly as
// the input seeds.
type ResultSet struct {
	Seeds        []uint64
	Observations []*Observation
}

// Len returns the number of observations.
func (r *ResultSet) Len() int {
	return len(r.Observations)
}

// At returns the observation at position i.
func (r *ResultSet) At(i int) *Observation {
	return r.Observations[i]
}

func sum(counts []int64) int64 {
	var total int64
	for _, c := range counts {
		total += c
	}
	return total
}
