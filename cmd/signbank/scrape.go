package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/signbank/internal/config"
	"github.com/nao1215/signbank/internal/crawler"
	"github.com/nao1215/signbank/internal/database"
	"github.com/nao1215/signbank/internal/fetcher"
	signlog "github.com/nao1215/signbank/internal/log"
	"github.com/nao1215/signbank/internal/model"
	"github.com/nao1215/signbank/internal/pipeline"
	"github.com/nao1215/signbank/internal/report"
)

// NewScrapeCmd creates the scrape command.
func NewScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Crawl the image bank and store every sign",
		Long: `Scrape reads the topic menu of the image bank, walks every topic listing
page by page, and stores each sign image with its word, author and topic.

The crawl result is cached. When the cache file exists the site is not
crawled again; use --refresh to force a new crawl.

The database must already contain the tables; create them once with
'signbank schema --apply'.

Examples:
  # Crawl (or reuse the cache) and store into the default database
  signbank scrape

  # Only crawl and cache, do not touch a database
  signbank scrape --no-store

  # Store into a remote libsql database
  signbank scrape --db "libsql://signs.example.turso.io?authToken=..."

  # Print a Markdown summary
  signbank scrape --markdown`,
		Args: cobra.NoArgs,
		RunE: runScrapeCmd,
	}

	cmd.Flags().String("cache", "",
		"Crawl cache file (default: images.gob in the XDG cache directory)")
	cmd.Flags().Bool("refresh", false,
		"Crawl even if the cache exists, and overwrite it")
	cmd.Flags().Bool("no-store", false,
		"Skip writing to the database")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each HTTP request (0 = none)")
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum listing pages per topic (0 = until exhausted)")
	cmd.Flags().String("user-agent", "",
		"User-Agent header for HTTP requests")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown summary (mutually exclusive with --json)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON summary (mutually exclusive with --markdown)")

	return cmd
}

// runScrapeCmd executes the scrape command.
func runScrapeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildScrapeConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	ctx, cancel := signalContext(cmd.Context(), logger)
	defer cancel()

	return runScrape(ctx, cfg, logger, cmd.OutOrStdout())
}

// buildScrapeConfig adds the scrape flags on top of buildConfig.
// Flags only override the config file when they are set explicitly.
func buildScrapeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("cache") {
		if cfg.CachePath, err = flags.GetString("cache"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-pages") {
		if cfg.MaxPages, err = flags.GetInt("max-pages"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("user-agent") {
		if cfg.UserAgent, err = flags.GetString("user-agent"); err != nil {
			return nil, err
		}
	}
	if cfg.Refresh, err = flags.GetBool("refresh"); err != nil {
		return nil, err
	}
	if cfg.NoStore, err = flags.GetBool("no-store"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runScrape builds the pipeline, runs it and prints the summary.
func runScrape(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	logger.Debug("starting scrape",
		"root", cfg.RootURL,
		"cache", cfg.CachePath,
		"dsn", signlog.RedactString(cfg.DSN),
		"refresh", cfg.Refresh,
		"store", !cfg.NoStore,
	)

	f := fetcher.New(
		fetcher.WithTimeout(cfg.Timeout),
		fetcher.WithUserAgent(cfg.UserAgent),
		fetcher.WithLogger(logger),
	)
	c := crawler.New(f,
		crawler.WithRootURL(cfg.RootURL),
		crawler.WithOrigin(cfg.SiteOrigin),
		crawler.WithMaxPages(cfg.MaxPages),
		crawler.WithLogger(logger),
	)

	steps := []pipeline.Step{
		pipeline.NewLoadOrCrawlStep(cfg.CachePath, c,
			pipeline.WithRefresh(cfg.Refresh),
			pipeline.WithLoadLogger(logger),
		),
	}

	// The database is opened before crawling so a missing schema fails fast.
	if !cfg.NoStore {
		db, err := database.Open(ctx, cfg.DSN, database.Options{})
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Debug("database opened", "driver", db.Driver())

		steps = append(steps, pipeline.NewStoreStep(db, f, logger))
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(steps...)
	logger.Debug("pipeline ready", "steps", p.StepNames())

	run := model.NewRun()
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	logger.Debug("scrape finished", "source", run.Source, "elapsed", run.Elapsed())

	if _, err := newReportWriter(cfg, out).Write(run); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newReportWriter picks the summary format.
func newReportWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	default:
		return report.NewSimpleWriter(out)
	}
}
