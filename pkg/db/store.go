package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/bucket"
)

// SQLiteStore keeps bucket counts in the bucket_words table.
type SQLiteStore struct {
	db *DB
}

// NewSQLiteStore returns a bucket.Store backed by db.
func NewSQLiteStore(db *DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Read(name bucket.Name) (models.WordCount, error) {
	var updatedAt time.Time
	err := s.db.QueryRow("SELECT updated_at FROM buckets WHERE bucket = ?", string(name)).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, bucket.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", name, err)
	}

	rows, err := s.db.Query("SELECT word, count FROM bucket_words WHERE bucket = ?", string(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read bucket %s: %w", name, err)
	}
	defer rows.Close()

	counts := make(models.WordCount)
	for rows.Next() {
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return nil, fmt.Errorf("failed to scan bucket word: %w", err)
		}
		counts[word] = count
	}
	return counts, rows.Err()
}

// Write replaces the bucket contents in a single transaction.
func (s *SQLiteStore) Write(name bucket.Name, counts models.WordCount) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`
		INSERT INTO buckets (bucket, updated_at) VALUES (?, ?)
		ON CONFLICT(bucket) DO UPDATE SET updated_at = excluded.updated_at
	`, string(name), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to upsert bucket %s: %w", name, err)
	}

	if _, err = tx.Exec("DELETE FROM bucket_words WHERE bucket = ?", string(name)); err != nil {
		return fmt.Errorf("failed to clear bucket %s: %w", name, err)
	}

	stmt, err := tx.Prepare("INSERT INTO bucket_words (bucket, word, count) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, word := range bucket.SortedWords(counts) {
		if _, err = stmt.Exec(string(name), word, counts[word]); err != nil {
			return fmt.Errorf("failed to insert word %q: %w", word, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bucket %s: %w", name, err)
	}
	return nil
}
