package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/aterrel/specsim/internal/constants"
)

// SQLiteRunStore implements RunStore using SQLite for persistence.
type SQLiteRunStore struct {
	mu     sync.RWMutex
	db     *sql.DB
	dbPath string
}

// NewSQLiteRunStore creates a run store rooted at projectRoot. The
// database lives at .specsim/specsim.db under the root.
func NewSQLiteRunStore(projectRoot string) (*SQLiteRunStore, error) {
	dataDir := filepath.Join(projectRoot, constants.DataDirName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", constants.DataDirName, err)
	}

	dbPath := filepath.Join(dataDir, constants.DatabaseFileName)
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteRunStore{db: db, dbPath: dbPath}, nil
}

// SaveRun implements RunStore. The run and all observations are written
// in one transaction.
func (s *SQLiteRunStore) SaveRun(ctx context.Context, run *Run, observations []ObservationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeds, err := json.Marshal(run.Seeds)
	if err != nil {
		return fmt.Errorf("failed to encode seeds: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, livetime, source, background, alpha, seeds)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.Livetime,
		run.Source,
		nullString(run.Background),
		run.Alpha,
		string(seeds),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	for _, obs := range observations {
		onCounts, err := json.Marshal(obs.OnCounts)
		if err != nil {
			return fmt.Errorf("failed to encode on counts: %w", err)
		}
		var offCounts any
		if obs.OffCounts != nil {
			data, err := json.Marshal(obs.OffCounts)
			if err != nil {
				return fmt.Errorf("failed to encode off counts: %w", err)
			}
			offCounts = string(data)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO observations (run_id, position, seed, on_counts, off_counts, alpha, total_on, total_off)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, obs.Position, int64(obs.Seed), string(onCounts), offCounts,
			obs.Alpha, obs.TotalOn, obs.TotalOff,
		)
		if err != nil {
			return fmt.Errorf("failed to insert observation %d of run %s: %w", obs.Position, run.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", run.ID, err)
	}
	return nil
}

// GetRun implements RunStore.
func (s *SQLiteRunStore) GetRun(ctx context.Context, id string) (*Run, []ObservationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, livetime, source, background, alpha, seeds
		FROM runs WHERE id = ?`, id)

	var run Run
	var createdAt, seeds string
	var background sql.NullString
	if err := row.Scan(&run.ID, &createdAt, &run.Livetime, &run.Source, &background, &run.Alpha, &seeds); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, fmt.Errorf("run %s not found", id)
		}
		return nil, nil, fmt.Errorf("failed to read run %s: %w", id, err)
	}
	run.Background = background.String

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse run timestamp: %w", err)
	}
	run.CreatedAt = t

	if err := json.Unmarshal([]byte(seeds), &run.Seeds); err != nil {
		return nil, nil, fmt.Errorf("failed to decode seeds: %w", err)
	}

	observations, err := s.readObservations(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &run, observations, nil
}

// ListRuns implements RunStore.
func (s *SQLiteRunStore) ListRuns(ctx context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, livetime, source, background, alpha, seeds
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt, seeds string
		var background sql.NullString
		if err := rows.Scan(&run.ID, &createdAt, &run.Livetime, &run.Source, &background, &run.Alpha, &seeds); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Background = background.String
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			run.CreatedAt = t
		}
		if err := json.Unmarshal([]byte(seeds), &run.Seeds); err != nil {
			return nil, fmt.Errorf("failed to decode seeds for run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close implements RunStore.
func (s *SQLiteRunStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func (s *SQLiteRunStore) readObservations(ctx context.Context, runID string) ([]ObservationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, position, seed, on_counts, off_counts, alpha, total_on, total_off
		FROM observations WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to read observations of run %s: %w", runID, err)
	}
	defer rows.Close()

	var observations []ObservationRecord
	for rows.Next() {
		var obs ObservationRecord
		var seed int64
		var onCounts string
		var offCounts sql.NullString
		if err := rows.Scan(&obs.RunID, &obs.Position, &seed, &onCounts, &offCounts, &obs.Alpha, &obs.TotalOn, &obs.TotalOff); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		obs.Seed = uint64(seed)
		if err := json.Unmarshal([]byte(onCounts), &obs.OnCounts); err != nil {
			return nil, fmt.Errorf("failed to decode on counts: %w", err)
		}
		if offCounts.Valid {
			if err := json.Unmarshal([]byte(offCounts.String), &obs.OffCounts); err != nil {
				return nil, fmt.Errorf("failed to decode off counts: %w", err)
			}
		}
		observations = append(observations, obs)
	}
	return observations, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
