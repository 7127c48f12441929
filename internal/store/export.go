package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ExportObservations implements RunStore: each observation of the run
// becomes one JSON line, in position order.
func (s *SQLiteRunStore) ExportObservations(ctx context.Context, runID string, w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	observations, err := s.readObservations(ctx, runID)
	if err != nil {
		return err
	}
	if len(observations) == 0 {
		return fmt.Errorf("run %s has no observations", runID)
	}

	enc := json.NewEncoder(w)
	for _, obs := range observations {
		if err := enc.Encode(obs); err != nil {
			return fmt.Errorf("failed to write observation %d: %w", obs.Position, err)
		}
	}
	return nil
}
