package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dtnitsch/words-counter/internal/app"
	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/bucket"
	"github.com/dtnitsch/words-counter/pkg/counter"
	dbpkg "github.com/dtnitsch/words-counter/pkg/db"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// ShowAction prints the stored lines of one bucket.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("bucket name required (one of a-g, h-n, o-u, v-z)")
	}
	name, ok := bucket.Parse(c.Args().First())
	if !ok {
		return fmt.Errorf("unknown bucket %q (one of a-g, h-n, o-u, v-z)", c.Args().First())
	}

	a, err := app.New(c, false)
	if err != nil {
		return err
	}
	defer a.Close()

	return Show(os.Stdout, a.Store, name)
}

// Show writes the bucket in its on-disk line format.
func Show(w io.Writer, store bucket.Store, name bucket.Name) error {
	counts, err := readBucket(store, name)
	if err != nil {
		return err
	}
	_, err = w.Write(bucket.FormatLines(counts))
	return err
}

// TopAction prints the most frequent words across all buckets.
func TopAction(c *cli.Context) error {
	a, err := app.New(c, false)
	if err != nil {
		return err
	}
	defer a.Close()

	return Top(os.Stdout, a.Store, c.Int("n"))
}

// Top writes the n most frequent words, highest count first.
func Top(w io.Writer, store bucket.Store, n int) error {
	all := models.WordCount{}
	for _, name := range bucket.All() {
		counts, err := readBucket(store, name)
		if err != nil {
			return err
		}
		all = counter.Merge(all, counts)
	}

	ranked := counter.Ranked(all)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	if len(ranked) == 0 {
		fmt.Fprintln(w, "No words counted yet")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-30s %12s\n", "Rank", "Word", "Count")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for i, e := range ranked {
		fmt.Fprintf(w, "%-6d %-30s %12s\n", i+1, e.Word, humanize.Comma(int64(e.Count)))
	}
	return nil
}

// StatsAction prints word totals per bucket.
func StatsAction(c *cli.Context) error {
	a, err := app.New(c, false)
	if err != nil {
		return err
	}
	defer a.Close()

	return Stats(os.Stdout, a.Store, a.FileStore)
}

// Stats writes distinct and total word counts per bucket. File sizes are
// included when fs is not nil.
func Stats(w io.Writer, store bucket.Store, fs *bucket.FileStore) error {
	fmt.Fprintf(w, "%-6s %12s %14s %10s\n", "Bucket", "Words", "Occurrences", "Size")
	fmt.Fprintln(w, strings.Repeat("-", 45))

	var words, total int
	var size uint64
	for _, name := range bucket.All() {
		counts, err := readBucket(store, name)
		if err != nil {
			return err
		}

		sizeCol := "-"
		if fs != nil {
			if st, err := fs.Stats(name); err == nil {
				sizeCol = humanize.Bytes(uint64(st.SizeBytes))
				size += uint64(st.SizeBytes)
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
		}

		words += len(counts)
		total += counts.Total()
		fmt.Fprintf(w, "%-6s %12s %14s %10s\n", name,
			humanize.Comma(int64(len(counts))), humanize.Comma(int64(counts.Total())), sizeCol)
	}

	fmt.Fprintln(w, strings.Repeat("-", 45))
	sizeCol := "-"
	if fs != nil {
		sizeCol = humanize.Bytes(size)
	}
	fmt.Fprintf(w, "%-6s %12s %14s %10s\n", "total", humanize.Comma(int64(words)), humanize.Comma(int64(total)), sizeCol)
	return nil
}

// HistoryAction lists recent runs, or the per-file results of one run.
func HistoryAction(c *cli.Context) error {
	a, err := app.New(c, true)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.DB == nil {
		return fmt.Errorf("no run ledger configured; set db_path in the config or pass --db")
	}

	if c.NArg() == 0 {
		return History(os.Stdout, a.DB, c.Int("limit"))
	}

	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", c.Args().First(), err)
	}
	return RunDetails(os.Stdout, a.DB, runID)
}

// History writes a table of the most recent runs.
func History(w io.Writer, database *dbpkg.DB, limit int) error {
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-10s %-6s %-8s %-8s %-8s\n",
		"ID", "Started", "Duration", "Files", "Success", "Partial", "Failed")
	fmt.Fprintln(w, strings.Repeat("-", 72))

	for _, r := range runs {
		duration := "running"
		if r.FinishedAt != nil {
			duration = r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
		}
		fmt.Fprintf(w, "%-6d %-20s %-10s %-6d %-8d %-8d %-8d\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			duration,
			r.FilesFound,
			r.SuccessCount,
			r.PartialCount,
			r.FailedCount,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "Ledger: %s\n", database.Path())
	return nil
}

type runDetails struct {
	RunID      int64         `yaml:"run_id"`
	StartedAt  string        `yaml:"started_at"`
	FinishedAt string        `yaml:"finished_at,omitempty"`
	Files      []fileDetails `yaml:"files"`
}

type fileDetails struct {
	Name          string   `yaml:"name"`
	Status        string   `yaml:"status"`
	ErrorType     string   `yaml:"error_type,omitempty"`
	Error         string   `yaml:"error,omitempty"`
	Tokens        int      `yaml:"tokens"`
	DistinctWords int      `yaml:"distinct_words"`
	Language      string   `yaml:"language,omitempty"`
	FailedBuckets []string `yaml:"failed_buckets,omitempty"`
}

// RunDetails writes one run and its file results as YAML.
func RunDetails(w io.Writer, database *dbpkg.DB, runID int64) error {
	run, err := database.GetRun(runID)
	if err != nil {
		return fmt.Errorf("failed to get run %d: %w", runID, err)
	}
	records, err := database.GetRunResults(runID)
	if err != nil {
		return fmt.Errorf("failed to get results for run %d: %w", runID, err)
	}

	out := runDetails{
		RunID:     run.RunID,
		StartedAt: run.StartedAt.Format("2006-01-02 15:04:05"),
		Files:     make([]fileDetails, 0, len(records)),
	}
	if run.FinishedAt != nil {
		out.FinishedAt = run.FinishedAt.Format("2006-01-02 15:04:05")
	}
	for _, r := range records {
		out.Files = append(out.Files, fileDetails{
			Name:          r.FileName,
			Status:        r.Status,
			ErrorType:     r.ErrorType,
			Error:         r.ErrorMessage,
			Tokens:        r.TokenCount,
			DistinctWords: r.DistinctWords,
			Language:      r.Language,
			FailedBuckets: r.FailedBuckets,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	return enc.Close()
}

// readBucket treats a bucket that was never written as empty.
func readBucket(store bucket.Store, name bucket.Name) (models.WordCount, error) {
	counts, err := store.Read(name)
	if errors.Is(err, bucket.ErrNotFound) {
		return models.WordCount{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bucket %s: %w", name, err)
	}
	return counts, nil
}
