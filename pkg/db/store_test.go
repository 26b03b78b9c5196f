package db

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/bucket"
)

func TestSQLiteStore_ReadMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewSQLiteStore(db)
	if _, err := store.Read(bucket.AG); !errors.Is(err, bucket.ErrNotFound) {
		t.Errorf("Read() error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_WriteReplaces(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewSQLiteStore(db)
	if err := store.Write(bucket.AG, models.WordCount{"cat": 2, "dog": 1}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := store.Write(bucket.AG, models.WordCount{"cat": 5}); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}

	got, err := store.Read(bucket.AG)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, models.WordCount{"cat": 5}) {
		t.Errorf("Read() = %v", got)
	}
}

func TestSQLiteStore_EmptyBucketExists(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewSQLiteStore(db)
	if err := store.Write(bucket.HN, models.WordCount{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := store.Read(bucket.HN)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Read() = %v, want empty", got)
	}
}

func TestSQLiteStore_WithAggregator(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	agg := bucket.NewAggregator(NewSQLiteStore(db), nil)
	input := models.WordCount{"cat": 2, "hat": 1, "": 1}

	agg.Merge(input)
	results := agg.Merge(input)
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("bucket %s error = %v", r.Bucket, r.Err)
		}
	}

	store := NewSQLiteStore(db)
	for word, count := range input {
		counts, err := store.Read(bucket.Of(word))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if counts[word] != 2*count {
			t.Errorf("word %q = %d, want %d", word, counts[word], 2*count)
		}
	}
}
