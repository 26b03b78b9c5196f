package manifest

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/storage"
	"gopkg.in/yaml.v3"
)

func sampleSummary() models.RunSummary {
	return models.RunSummary{
		RunID:      7,
		FinishedAt: time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC),
		FilesFound: 3,
		Succeeded:  1,
		Partial:    1,
		Failed:     1,
		Results: []models.FileResult{
			{
				Name:       "a.txt",
				Status:     models.StatusSuccess,
				Tokens:     3,
				WordCounts: models.WordCount{"cat": 2, "dog": 1},
			},
			{
				Name:       "b.txt",
				Status:     models.StatusPartial,
				Tokens:     1,
				WordCounts: models.WordCount{"cat": 1},
				Buckets: []models.BucketResult{
					{Bucket: "a-g", Words: 1, Err: errors.New("disk full")},
				},
			},
			{
				Name:      "c.txt",
				Status:    models.StatusFailed,
				ErrorType: "read_error",
				Error:     errors.New("permission denied"),
			},
		},
	}
}

func TestBuild(t *testing.T) {
	m := Build(sampleSummary())

	if m.RunID != 7 || m.FilesFound != 3 || m.Successful != 1 || m.Partial != 1 || m.Failed != 1 {
		t.Errorf("counters = %+v", m)
	}
	if m.GeneratedAt != "2026-10-18T12:30:00Z" {
		t.Errorf("GeneratedAt = %s", m.GeneratedAt)
	}

	wantAggregate := []string{"cat:3", "dog:1"}
	if !reflect.DeepEqual(m.AggregateKeywords, wantAggregate) {
		t.Errorf("AggregateKeywords = %v, want %v", m.AggregateKeywords, wantAggregate)
	}
	if !reflect.DeepEqual(m.Results[1].FailedBuckets, []string{"a-g"}) {
		t.Errorf("FailedBuckets = %v", m.Results[1].FailedBuckets)
	}
	if m.Results[2].ErrorMessage != "permission denied" {
		t.Errorf("ErrorMessage = %q", m.Results[2].ErrorMessage)
	}
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteSummary(dir, sampleSummary(), &storage.Storage{})
	if err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	if !strings.HasSuffix(path, "summary-2026-10-18T12-30-00-run7.yaml") {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var m SummaryManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest is not valid YAML: %v", err)
	}
	if len(m.Results) != 3 || m.Results[0].File != "a.txt" {
		t.Errorf("decoded results = %+v", m.Results)
	}
}
