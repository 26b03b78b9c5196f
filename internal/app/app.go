// Package app builds the shared runtime (config, logger, store, ledger)
// for the CLI actions.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/words-counter/internal/common"
	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/bucket"
	"github.com/dtnitsch/words-counter/pkg/db"
	"github.com/dtnitsch/words-counter/pkg/language"
	"github.com/dtnitsch/words-counter/pkg/processor"
	"github.com/dtnitsch/words-counter/pkg/scanner"
	"github.com/dtnitsch/words-counter/pkg/tokenizer"
	"github.com/urfave/cli/v2"
)

// App holds everything an action needs.
type App struct {
	Config    *models.Config
	Logger    *slog.Logger
	DB        *db.DB // nil unless the ledger or sqlite store was requested
	Store     bucket.Store
	FileStore *bucket.FileStore // nil when the sqlite store is selected
}

// NewLogger creates the JSON logger on stderr honoring --quiet and --verbose.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads --config and applies flag overrides.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("upload-dir") {
		config.UploadDir = c.String("upload-dir")
	}
	if c.IsSet("counted-dir") {
		config.CountedDir = c.String("counted-dir")
	}
	if c.IsSet("interval") {
		config.Interval = c.String("interval")
	}
	if c.IsSet("extensions") {
		config.Extensions = common.SplitList(c.String("extensions"))
	}
	if c.IsSet("html-extensions") {
		config.HTMLExtensions = common.SplitList(c.String("html-extensions"))
	}
	if c.IsSet("store") {
		config.Store = c.String("store")
	}
	if c.IsSet("db") {
		config.DBPath = c.String("db")
	}
	if c.IsSet("reports-dir") {
		config.ReportsDir = c.String("reports-dir")
	}
	if c.IsSet("keep-empty-token") {
		config.KeepEmptyToken = c.Bool("keep-empty-token")
	}
	if c.IsSet("skip-malformed") {
		config.SkipMalformedLines = c.Bool("skip-malformed")
	}
	if c.IsSet("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// New loads config and opens the store. The run ledger is opened only when
// withLedger is set or the sqlite store needs it.
func New(c *cli.Context, withLedger bool) (*App, error) {
	logger := NewLogger(c)

	config, err := LoadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return Open(config, logger, withLedger)
}

// Open builds an App from an already loaded config.
func Open(config *models.Config, logger *slog.Logger, withLedger bool) (*App, error) {
	a := &App{Config: config, Logger: logger}

	needDB := config.Store == models.StoreSQLite || withLedger
	if needDB && config.DBPath != "" {
		database, err := db.Open(config.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.DB = database
	}

	switch config.Store {
	case models.StoreSQLite:
		a.Store = db.NewSQLiteStore(a.DB)
	default:
		fs := bucket.NewFileStore(config.CountedDir, logger)
		fs.SkipMalformed = config.SkipMalformedLines
		a.FileStore = fs
		a.Store = fs
	}

	return a, nil
}

// Processor builds the counting pipeline from the app's config.
func (a *App) Processor() *processor.Processor {
	exts := append([]string{}, a.Config.Extensions...)
	exts = append(exts, a.Config.HTMLExtensions...)

	p := &processor.Processor{
		Scanner:        scanner.New(a.Config.UploadDir, exts...),
		Aggregator:     bucket.NewAggregator(a.Store, a.Logger),
		Tokenizer:      tokenizer.Tokenizer{KeepLeadingEmpty: a.Config.KeepEmptyToken},
		Logger:         a.Logger,
		HTMLExtensions: a.Config.HTMLExtensions,
	}
	if a.Config.DetectLanguage {
		p.Detector = language.NewDetector()
	}
	if a.DB != nil {
		p.Ledger = a.DB
	}
	return p
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
