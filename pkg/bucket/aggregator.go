package bucket

import (
	"errors"
	"log/slog"

	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/counter"
)

// Aggregator merges freshly counted words into the persisted buckets.
type Aggregator struct {
	store  Store
	logger *slog.Logger
}

// NewAggregator creates an Aggregator backed by store.
func NewAggregator(store Store, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{store: store, logger: logger}
}

// Merge partitions counts and merges every non-empty bucket into the store.
// A failing bucket does not stop the others; each outcome is reported in
// bucket order.
func (a *Aggregator) Merge(counts models.WordCount) []models.BucketResult {
	parts := Partition(counts)

	results := make([]models.BucketResult, 0, len(parts))
	for _, name := range All() {
		part, ok := parts[name]
		if !ok {
			continue
		}
		results = append(results, a.MergeBucket(name, part))
	}
	return results
}

// MergeBucket reads the persisted counts of one bucket, adds counts to them
// and writes the result back.
func (a *Aggregator) MergeBucket(name Name, counts models.WordCount) models.BucketResult {
	result := models.BucketResult{Bucket: string(name), Words: len(counts)}

	existing, err := a.store.Read(name)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		a.logger.Debug("Bucket not found, starting empty", "bucket", name)
	case errors.Is(err, ErrMalformed):
		// Leave the file untouched so the data can be repaired by hand.
		a.logger.Error("Bucket has malformed data, skipping merge", "bucket", name, "error", err)
		result.Err = err
		return result
	default:
		// The bucket exists but its counts are unknown; writing now would drop them.
		a.logger.Error("Failed to read bucket, skipping merge", "bucket", name, "error", err)
		result.Err = err
		return result
	}

	merged := counter.Merge(existing, counts)
	if err := a.store.Write(name, merged); err != nil {
		a.logger.Error("Failed to write bucket", "bucket", name, "error", err)
		result.Err = err
		return result
	}

	result.Total = len(merged)
	a.logger.Debug("Bucket merged", "bucket", name, "new_words", len(counts), "total_words", len(merged))
	return result
}
