// Package processor runs uploaded files through tokenization, counting and
// bucket merging, one file at a time.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dtnitsch/words-counter/internal/common"
	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/bucket"
	"github.com/dtnitsch/words-counter/pkg/counter"
	"github.com/dtnitsch/words-counter/pkg/extract"
	"github.com/dtnitsch/words-counter/pkg/language"
	"github.com/dtnitsch/words-counter/pkg/scanner"
	"github.com/dtnitsch/words-counter/pkg/tokenizer"
)

// Error types recorded on failed or partial results.
const (
	ErrorTypeRead    = "read_error"
	ErrorTypeExtract = "extract_error"
	ErrorTypeMerge   = "merge_error"
)

// LanguageDetector guesses the ISO 639-1 language of a text.
type LanguageDetector interface {
	Detect(text string) (string, bool)
}

// Ledger records runs and per-file outcomes.
type Ledger interface {
	CreateRun(startedAt time.Time, filesFound int) (int64, error)
	InsertFileResult(runID int64, r models.FileResult) error
	FinishRun(summary models.RunSummary) error
	CountByContentHash(hash string) (int, error)
}

// Processor wires the counting pipeline. Scanner and Aggregator are required;
// Detector and Ledger are optional.
type Processor struct {
	Scanner        *scanner.Scanner
	Aggregator     *bucket.Aggregator
	Tokenizer      tokenizer.Tokenizer
	Detector       LanguageDetector
	Ledger         Ledger
	Logger         *slog.Logger
	HTMLExtensions []string
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// ProcessText tokenizes and counts text and merges the counts into the buckets.
func (p *Processor) ProcessText(name, text string) models.FileResult {
	tokens := p.Tokenizer.Tokenize(text)
	counts := counter.Count(tokens)

	result := models.FileResult{
		Name:          name,
		Tokens:        len(tokens),
		DistinctWords: len(counts),
		WordCounts:    counts,
	}

	result.Buckets = p.Aggregator.Merge(counts)

	var errs []error
	for _, b := range result.Buckets {
		if b.Err != nil {
			errs = append(errs, fmt.Errorf("bucket %s: %w", b.Bucket, b.Err))
		}
	}

	switch {
	case len(errs) == 0:
		result.Status = models.StatusSuccess
	case len(errs) < len(result.Buckets):
		result.Status = models.StatusPartial
		result.ErrorType = ErrorTypeMerge
		result.Error = errors.Join(errs...)
	default:
		result.Status = models.StatusFailed
		result.ErrorType = ErrorTypeMerge
		result.Error = errors.Join(errs...)
	}
	return result
}

func (p *Processor) isHTML(f scanner.File) bool {
	for _, ext := range p.HTMLExtensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if f.Ext() == ext {
			return true
		}
	}
	return false
}

// ProcessFile reads one discovered file and processes its content.
func (p *Processor) ProcessFile(f scanner.File) models.FileResult {
	logger := p.logger()

	raw, err := p.Scanner.Read(f)
	if err != nil {
		logger.Error("Error reading file", "file", f.Name, "error", err)
		return models.FileResult{
			Name:      f.Name,
			Status:    models.StatusFailed,
			ErrorType: ErrorTypeRead,
			Error:     err,
		}
	}
	hash := common.ContentHash([]byte(raw))

	text := raw
	if p.isHTML(f) {
		text, err = extract.HTMLToText(raw, f.Name)
		if err != nil {
			logger.Error("Error extracting HTML text", "file", f.Name, "error", err)
			return models.FileResult{
				Name:        f.Name,
				Status:      models.StatusFailed,
				ErrorType:   ErrorTypeExtract,
				Error:       err,
				ContentHash: hash,
			}
		}
	}

	var lang string
	if p.Detector != nil {
		if iso, ok := p.Detector.Detect(text); ok {
			lang = iso
			if language.NeedsSegmentation(iso) {
				logger.Warn("Text language is not whitespace separated, counts will be coarse", "file", f.Name, "language", iso)
			}
		}
	}

	if p.Ledger != nil {
		if n, err := p.Ledger.CountByContentHash(hash); err != nil {
			logger.Warn("Failed to check content hash", "file", f.Name, "error", err)
		} else if n > 0 {
			logger.Warn("Same content was counted before, counts will accumulate again", "file", f.Name, "times", n)
		}
	}

	result := p.ProcessText(f.Name, text)
	result.Language = lang
	result.ContentHash = hash
	return result
}

// RunBatch processes every discovered file in name order. Consumed files are
// renamed so the next run skips them. Cancelling ctx stops between files.
func (p *Processor) RunBatch(ctx context.Context) models.RunSummary {
	logger := p.logger()
	summary := models.RunSummary{StartedAt: time.Now()}

	files, err := p.Scanner.Discover()
	if err != nil {
		logger.Error("Failed to list upload directory", "dir", p.Scanner.Dir(), "error", err)
		summary.FinishedAt = time.Now()
		return summary
	}
	summary.FilesFound = len(files)
	logger.Info("Found files", "files", len(files), "dir", p.Scanner.Dir())
	if len(files) == 0 {
		summary.FinishedAt = time.Now()
		return summary
	}

	if p.Ledger != nil {
		runID, err := p.Ledger.CreateRun(summary.StartedAt, len(files))
		if err != nil {
			logger.Warn("Failed to record run", "error", err)
		}
		summary.RunID = runID
	}

	for _, f := range files {
		if ctx.Err() != nil {
			logger.Info("Run cancelled, leaving remaining files for the next run")
			break
		}

		logger.Info("Processing file", "file", f.Name, "size_bytes", f.SizeBytes)
		result := p.ProcessFile(f)

		if result.Consumed() {
			dst, replaced, err := p.Scanner.MarkCounted(f)
			switch {
			case err != nil:
				logger.Error("Failed to mark file as counted, it will be counted again", "file", f.Name, "error", err)
			case replaced:
				logger.Warn("Replaced an earlier counted file with the same name", "file", f.Name, "path", dst)
			default:
				logger.Debug("File marked as counted", "file", f.Name, "path", dst)
			}
		}

		switch result.Status {
		case models.StatusSuccess:
			logger.Info("File counted", "file", f.Name, "tokens", result.Tokens, "distinct_words", result.DistinctWords)
		case models.StatusPartial:
			logger.Warn("File counted with bucket failures", "file", f.Name, "error", result.Error)
		default:
			logger.Error("File not counted", "file", f.Name, "error_type", result.ErrorType, "error", result.Error)
		}

		if p.Ledger != nil && summary.RunID != 0 {
			if err := p.Ledger.InsertFileResult(summary.RunID, result); err != nil {
				logger.Warn("Failed to record file result", "file", f.Name, "error", err)
			}
		}
		summary.Add(result)
	}

	summary.FinishedAt = time.Now()
	if p.Ledger != nil && summary.RunID != 0 {
		if err := p.Ledger.FinishRun(summary); err != nil {
			logger.Warn("Failed to finish run", "error", err)
		}
	}

	logger.Info("Run finished",
		"run_id", summary.RunID,
		"files", summary.FilesFound,
		"succeeded", summary.Succeeded,
		"partial", summary.Partial,
		"failed", summary.Failed,
		"duration", summary.FinishedAt.Sub(summary.StartedAt).String())
	return summary
}
