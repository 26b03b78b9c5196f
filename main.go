package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/words-counter/internal/report"
	"github.com/dtnitsch/words-counter/internal/run"
	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func quickstartAction(c *cli.Context) error {
	fmt.Print(help.ColdstartYAML)
	return nil
}

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "counted-dir",
			Usage: "Directory holding the bucket files",
			Value: models.DefaultCountedDir,
		},
		&cli.StringFlag{
			Name:  "store",
			Usage: "Bucket backend: file or sqlite",
			Value: models.StoreFile,
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "SQLite database for the run ledger (and the sqlite store)",
		},
	}
}

func runFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "upload-dir",
			Usage: "Directory scanned for new files",
			Value: models.DefaultUploadDir,
		},
		&cli.StringFlag{
			Name:  "extensions",
			Usage: "Comma-separated plain text extensions to count",
			Value: ".txt",
		},
		&cli.StringFlag{
			Name:  "html-extensions",
			Usage: "Comma-separated extensions whose content is extracted from HTML first",
		},
		&cli.StringFlag{
			Name:  "reports-dir",
			Usage: "Write a YAML summary of each run to this directory",
		},
		&cli.BoolFlag{
			Name:  "keep-empty-token",
			Usage: "Count the empty word produced by leading punctuation",
		},
		&cli.BoolFlag{
			Name:  "skip-malformed",
			Usage: "Drop malformed bucket lines instead of failing the bucket",
		},
		&cli.BoolFlag{
			Name:  "detect-language",
			Usage: "Detect and record the language of each file",
		},
	}
	return append(flags, storeFlags()...)
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "words-counter",
		Usage: "Count words in uploaded text files into alphabetic buckets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file",
				Value:   "config.yaml",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log debug output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Poll the upload directory and count new files",
				Flags: append(runFlags(),
					&cli.StringFlag{
						Name:  "interval",
						Usage: "Delay between the end of one run and the start of the next",
						Value: models.DefaultInterval,
					},
					&cli.BoolFlag{
						Name:  "once",
						Usage: "Process the current files and exit",
					},
				),
				Action: run.RunAction,
			},
			{
				Name:   "once",
				Usage:  "Process the current files and exit",
				Flags:  runFlags(),
				Action: run.OnceAction,
			},
			{
				Name:      "show",
				Usage:     "Print the contents of a bucket",
				ArgsUsage: "<a-g|h-n|o-u|v-z>",
				Flags:     storeFlags(),
				Action:    report.ShowAction,
			},
			{
				Name:  "top",
				Usage: "Print the most frequent words across all buckets",
				Flags: append(storeFlags(),
					&cli.IntFlag{
						Name:  "n",
						Usage: "Number of words to print",
						Value: 25,
					},
				),
				Action: report.TopAction,
			},
			{
				Name:   "stats",
				Usage:  "Print word totals and file sizes per bucket",
				Flags:  storeFlags(),
				Action: report.StatsAction,
			},
			{
				Name:   "quickstart",
				Usage:  "Print a YAML quick start reference",
				Action: quickstartAction,
			},
			{
				Name:      "history",
				Usage:     "List recent runs, or the file results of one run",
				ArgsUsage: "[run_id]",
				Flags: append(storeFlags(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of runs to list",
						Value: 10,
					},
				),
				Action: report.HistoryAction,
			},
		},
	}
}
