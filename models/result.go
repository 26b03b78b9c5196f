package models

import "time"

// FileStatus is the outcome of processing a single input file.
type FileStatus string

const (
	StatusSuccess FileStatus = "success"
	StatusPartial FileStatus = "partial" // some buckets failed to merge
	StatusFailed  FileStatus = "failed"
)

// BucketResult holds the outcome of merging one bucket.
type BucketResult struct {
	Bucket string
	Words  int   // distinct words merged in from the input
	Total  int   // distinct words in the bucket after the merge
	Err    error
}

// FileResult holds the outcome of a processed input file.
type FileResult struct {
	Name          string
	Status        FileStatus
	ErrorType     string
	Error         error
	Tokens        int
	DistinctWords int
	Language      string
	ContentHash   string
	Buckets       []BucketResult
	WordCounts    WordCount
}

// Consumed reports whether the input should be marked as counted.
// Partial results are consumed too: re-reading the file would double-count
// the buckets that were already written.
func (r FileResult) Consumed() bool {
	return r.Status == StatusSuccess || r.Status == StatusPartial
}

// RunSummary aggregates the results of one batch.
type RunSummary struct {
	RunID      int64
	StartedAt  time.Time
	FinishedAt time.Time
	FilesFound int
	Succeeded  int
	Partial    int
	Failed     int
	Results    []FileResult
}

// Add records a file result and updates the counters.
func (s *RunSummary) Add(r FileResult) {
	s.Results = append(s.Results, r)
	switch r.Status {
	case StatusSuccess:
		s.Succeeded++
	case StatusPartial:
		s.Partial++
	default:
		s.Failed++
	}
}
