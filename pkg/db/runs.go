package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/words-counter/models"
)

// Run represents one processed batch.
type Run struct {
	RunID        int64
	StartedAt    time.Time
	FinishedAt   *time.Time
	FilesFound   int
	SuccessCount int
	PartialCount int
	FailedCount  int
}

// FileRecord represents the stored outcome of one input file.
type FileRecord struct {
	RunID         int64
	FileName      string
	Status        string
	ErrorType     string
	ErrorMessage  string
	TokenCount    int
	DistinctWords int
	Language      string
	ContentHash   string
	FailedBuckets []string
}

// CreateRun inserts a new run and returns its run_id.
func (db *DB) CreateRun(startedAt time.Time, filesFound int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (started_at, files_found)
		VALUES (?, ?)
	`, startedAt.UTC(), filesFound)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// FinishRun stores the final counters of a run.
func (db *DB) FinishRun(summary models.RunSummary) error {
	_, err := db.Exec(`
		UPDATE runs
		SET finished_at = ?, success_count = ?, partial_count = ?, failed_count = ?
		WHERE run_id = ?
	`, summary.FinishedAt.UTC(), summary.Succeeded, summary.Partial, summary.Failed, summary.RunID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// InsertFileResult records the outcome of one input file within a run.
func (db *DB) InsertFileResult(runID int64, r models.FileResult) error {
	errorMessage := ""
	if r.Error != nil {
		errorMessage = r.Error.Error()
	}

	var failed []string
	for _, b := range r.Buckets {
		if b.Err != nil {
			failed = append(failed, b.Bucket)
		}
	}

	_, err := db.Exec(`
		INSERT INTO file_results (run_id, file_name, status, error_type, error_message,
			token_count, distinct_words, language, content_hash, failed_buckets)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, r.Name, string(r.Status), r.ErrorType, errorMessage,
		r.Tokens, r.DistinctWords, r.Language, r.ContentHash, strings.Join(failed, ","))
	if err != nil {
		return fmt.Errorf("failed to insert file result: %w", err)
	}
	return nil
}

// GetRun returns a single run by ID.
func (db *DB) GetRun(runID int64) (*Run, error) {
	row := db.QueryRow(`
		SELECT run_id, started_at, finished_at, files_found, success_count, partial_count, failed_count
		FROM runs
		WHERE run_id = ?
	`, runID)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.Query(`
		SELECT run_id, started_at, finished_at, files_found, success_count, partial_count, failed_count
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// GetRunResults returns the file results of a run in insertion order.
func (db *DB) GetRunResults(runID int64) ([]FileRecord, error) {
	rows, err := db.Query(`
		SELECT run_id, file_name, status,
			COALESCE(error_type, ''), COALESCE(error_message, ''),
			token_count, distinct_words,
			COALESCE(language, ''), COALESCE(content_hash, ''), COALESCE(failed_buckets, '')
		FROM file_results
		WHERE run_id = ?
		ORDER BY result_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run results: %w", err)
	}
	defer rows.Close()

	var records []FileRecord
	for rows.Next() {
		var rec FileRecord
		var failedBuckets string
		if err := rows.Scan(&rec.RunID, &rec.FileName, &rec.Status, &rec.ErrorType, &rec.ErrorMessage,
			&rec.TokenCount, &rec.DistinctWords, &rec.Language, &rec.ContentHash, &failedBuckets); err != nil {
			return nil, fmt.Errorf("failed to scan file result: %w", err)
		}
		if failedBuckets != "" {
			rec.FailedBuckets = strings.Split(failedBuckets, ",")
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountByContentHash returns how many consumed results share a content hash.
// A non-zero value means the same text has already been counted.
func (db *DB) CountByContentHash(hash string) (int, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM file_results
		WHERE content_hash = ? AND status IN ('success', 'partial')
	`, hash).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count content hash: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var finishedAt sql.NullTime
	if err := row.Scan(&run.RunID, &run.StartedAt, &finishedAt, &run.FilesFound,
		&run.SuccessCount, &run.PartialCount, &run.FailedCount); err != nil {
		return nil, err
	}
	if finishedAt.Valid {
		t := finishedAt.Time
		run.FinishedAt = &t
	}
	return &run, nil
}
