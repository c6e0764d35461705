package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run is one extract invocation.
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	Source       string
	URLCount     int
	SuccessCount int
	FailedCount  int
	Vocab        string
}

// Failure is a target that could not be extracted during a run.
type Failure struct {
	Target    string
	Message   string
	CreatedAt time.Time
}

// CreateRun records the start of a run and returns its id.
func (db *DB) CreateRun(source string, urlCount int, vocab string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (source, url_count, vocab)
		VALUES (?, ?, ?)
	`, source, urlCount, vocab)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}
	return result.LastInsertId()
}

// UpdateRunStats updates the success and failed counts for a run
func (db *DB) UpdateRunStats(runID int64, successCount, failedCount int) error {
	_, err := db.Exec(`
		UPDATE runs
		SET success_count = ?, failed_count = ?
		WHERE run_id = ?
	`, successCount, failedCount, runID)
	if err != nil {
		return fmt.Errorf("failed to update run stats: %w", err)
	}
	return nil
}

// RecordFailure keeps the error for a target that failed during a run.
func (db *DB) RecordFailure(runID int64, target, message string) error {
	_, err := db.Exec(`
		INSERT INTO failures (run_id, target, error_message)
		VALUES (?, ?, ?)
	`, runID, target, message)
	if err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	return nil
}

// GetRunByID retrieves a run by its ID
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	var vocab sql.NullString
	err := db.QueryRow(`
		SELECT run_id, created_at, source, url_count, success_count, failed_count, vocab
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.CreatedAt, &r.Source, &r.URLCount, &r.SuccessCount, &r.FailedCount, &vocab)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	r.Vocab = vocab.String
	return &r, nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, source, url_count, success_count, failed_count, vocab
		FROM runs
		ORDER BY run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var vocab sql.NullString
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.Source, &r.URLCount, &r.SuccessCount,
			&r.FailedCount, &vocab); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Vocab = vocab.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunFailures lists the failures recorded for a run.
func (db *DB) GetRunFailures(runID int64) ([]Failure, error) {
	rows, err := db.Query(`
		SELECT target, error_message, created_at
		FROM failures
		WHERE run_id = ?
		ORDER BY failure_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run failures: %w", err)
	}
	defer rows.Close()

	var failures []Failure
	for rows.Next() {
		var f Failure
		if err := rows.Scan(&f.Target, &f.Message, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan failure: %w", err)
		}
		failures = append(failures, f)
	}
	return failures, rows.Err()
}
