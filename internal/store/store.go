// Package store defines the RunStore interface for persisting
// simulation runs and their observations.
package store

import (
	"context"
	"io"
	"time"
)

// Run describes one simulation batch: the configuration summary and the
// seeds it was run over. Observations are stored separately, keyed by
// run ID and position.
type Run struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Livetime   float64   `json:"livetime"` // seconds
	Source     string    `json:"source"`   // model summary, e.g. "powerlaw(index=2.3, ...)"
	Background string    `json:"background,omitempty"`
	Alpha      float64   `json:"alpha,omitempty"`
	Seeds      []uint64  `json:"seeds"`
}

// ObservationRecord is one persisted observation of a run.
type ObservationRecord struct {
	RunID     string  `json:"run_id"`
	Position  int     `json:"position"` // index in the run's seed order
	Seed      uint64  `json:"seed"`
	OnCounts  []int64 `json:"on_counts"`
	OffCounts []int64 `json:"off_counts,omitempty"`
	Alpha     float64 `json:"alpha,omitempty"`
	TotalOn   int64   `json:"total_on"`
	TotalOff  int64   `json:"total_off"`
}

// RunStore persists simulation runs and their observations.
type RunStore interface {
	// SaveRun stores a run and its observations atomically.
	SaveRun(ctx context.Context, run *Run, observations []ObservationRecord) error

	// GetRun returns a run and its observations in position order.
	GetRun(ctx context.Context, id string) (*Run, []ObservationRecord, error)

	// ListRuns returns all runs, most recent first.
	ListRuns(ctx context.Context) ([]Run, error)

	// ExportObservations writes a run's observations to w as JSONL,
	// one record per line in position order.
	ExportObservations(ctx context.Context, runID string, w io.Writer) error

	Close() error
}
