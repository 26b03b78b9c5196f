package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/counter"
	"github.com/dtnitsch/words-counter/pkg/storage"
	"gopkg.in/yaml.v3"
)

const topKeywordCount = 10

// Build converts a run summary into its manifest form.
func Build(summary models.RunSummary) SummaryManifest {
	manifest := SummaryManifest{
		GeneratedAt: summary.FinishedAt.Format(time.RFC3339),
		RunID:       summary.RunID,
		FilesFound:  summary.FilesFound,
		Successful:  summary.Succeeded,
		Partial:     summary.Partial,
		Failed:      summary.Failed,
	}

	var intermediate []models.WordCount
	for _, result := range summary.Results {
		fs := FileSummary{
			File:          result.Name,
			Status:        string(result.Status),
			ErrorType:     result.ErrorType,
			Tokens:        result.Tokens,
			DistinctWords: result.DistinctWords,
			Language:      result.Language,
		}
		if result.Error != nil {
			fs.ErrorMessage = result.Error.Error()
		}
		for _, b := range result.Buckets {
			if b.Err != nil {
				fs.FailedBuckets = append(fs.FailedBuckets, b.Bucket)
			}
		}
		if result.WordCounts != nil {
			fs.TopKeywords = counter.TopKeywords(result.WordCounts, topKeywordCount)
			if result.Consumed() {
				intermediate = append(intermediate, result.WordCounts)
			}
		}
		manifest.Results = append(manifest.Results, fs)
	}

	manifest.AggregateKeywords = counter.TopKeywords(counter.Reduce(intermediate), topKeywordCount)
	return manifest
}

// WriteSummary saves the manifest of a run as YAML in dir and returns its path.
func WriteSummary(dir string, summary models.RunSummary, s *storage.Storage) (string, error) {
	manifest := Build(summary)

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	name := fmt.Sprintf("summary-%s.yaml", summary.FinishedAt.Format("2006-01-02T15-04-05"))
	if summary.RunID != 0 {
		name = fmt.Sprintf("summary-%s-run%d.yaml", summary.FinishedAt.Format("2006-01-02T15-04-05"), summary.RunID)
	}
	path := filepath.Join(dir, name)

	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}
	return path, nil
}
