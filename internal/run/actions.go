package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/words-counter/internal/app"
	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/manifest"
	"github.com/dtnitsch/words-counter/pkg/scheduler"
	"github.com/dtnitsch/words-counter/pkg/storage"
	"github.com/urfave/cli/v2"
)

// RunAction polls the upload directory until interrupted, or runs a single
// batch when --once is set.
func RunAction(c *cli.Context) error {
	if c.Bool("once") {
		return OnceAction(c)
	}

	a, err := app.New(c, true)
	if err != nil {
		return err
	}
	defer a.Close()

	delay, err := a.Config.IntervalDuration()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := a.Processor()
	a.Logger.Info("Watching upload directory",
		"upload_dir", a.Config.UploadDir,
		"counted_dir", a.Config.CountedDir,
		"interval", delay.String(),
		"store", a.Config.Store)

	err = scheduler.FixedDelay(ctx, delay, func(ctx context.Context) {
		summary := p.RunBatch(ctx)
		writeReport(a, summary)
	})
	if errors.Is(err, context.Canceled) {
		a.Logger.Info("Stopped")
		return nil
	}
	return err
}

// OnceAction processes whatever is in the upload directory and exits.
// The exit status is non-zero when any file failed.
func OnceAction(c *cli.Context) error {
	a, err := app.New(c, true)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary := a.Processor().RunBatch(ctx)
	writeReport(a, summary)

	if summary.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d file(s) failed", summary.Failed, summary.FilesFound), 1)
	}
	return nil
}

func writeReport(a *app.App, summary models.RunSummary) {
	if a.Config.ReportsDir == "" || summary.FilesFound == 0 {
		return
	}
	path, err := manifest.WriteSummary(a.Config.ReportsDir, summary, &storage.Storage{})
	if err != nil {
		a.Logger.Warn("Failed to write run summary", "error", err)
		return
	}
	a.Logger.Info("Run summary written", "path", path)
}
