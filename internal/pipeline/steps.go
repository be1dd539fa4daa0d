package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/signbank/internal/cache"
	"github.com/nao1215/signbank/internal/database"
	"github.com/nao1215/signbank/internal/imagemeta"
	"github.com/nao1215/signbank/internal/model"
)

// ErrNoResult is returned by steps that need a crawl result when none is set.
var ErrNoResult = errors.New("no crawl result in run")

// Crawler produces a crawl result.
type Crawler interface {
	Crawl(ctx context.Context) (*model.Result, error)
}

// Storer persists a crawl result.
type Storer interface {
	Store(ctx context.Context, result *model.Result, fetch database.ImageFetcher, opts ...database.StoreOption) (model.StoreStats, error)
}

// LoadOrCrawlStep loads the crawl result from the cache file, or crawls the
// site and saves the result when there is no cache. A corrupt cache is an
// error and is never overwritten implicitly.
type LoadOrCrawlStep struct {
	cachePath string
	crawler   Crawler

	// refresh ignores an existing cache and overwrites it.
	refresh bool

	logger *slog.Logger
}

// LoadOrCrawlOption configures a LoadOrCrawlStep.
type LoadOrCrawlOption func(*LoadOrCrawlStep)

// WithRefresh makes the step crawl even when a cache file exists.
func WithRefresh(refresh bool) LoadOrCrawlOption {
	return func(s *LoadOrCrawlStep) {
		s.refresh = refresh
	}
}

// WithLoadLogger sets a custom logger for the step.
func WithLoadLogger(logger *slog.Logger) LoadOrCrawlOption {
	return func(s *LoadOrCrawlStep) {
		s.logger = logger
	}
}

// NewLoadOrCrawlStep creates the step for the cache at cachePath.
func NewLoadOrCrawlStep(cachePath string, c Crawler, opts ...LoadOrCrawlOption) *LoadOrCrawlStep {
	s := &LoadOrCrawlStep{
		cachePath: cachePath,
		crawler:   c,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *LoadOrCrawlStep) Name() string {
	return "load_or_crawl"
}

// Do sets run.Result and run.Source.
func (s *LoadOrCrawlStep) Do(ctx context.Context, run *model.Run) error {
	if !s.refresh {
		result, err := cache.Load(s.cachePath)
		switch {
		case err == nil:
			s.logger.Debug("loaded crawl result from cache", "path", s.cachePath, "topics", result.Len())
			run.Result = result
			run.Source = model.SourceCache
			return nil
		case !errors.Is(err, cache.ErrNotFound):
			return err
		}
	}

	s.logger.Debug("crawling site", "cache", s.cachePath, "refresh", s.refresh)
	result, err := s.crawler.Crawl(ctx)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}
	if err := cache.Save(s.cachePath, result); err != nil {
		return err
	}

	run.Result = result
	run.Source = model.SourceNetwork
	return nil
}

// StoreStep writes the crawl result to the sign database.
type StoreStep struct {
	db     Storer
	fetch  database.ImageFetcher
	logger *slog.Logger
}

// NewStoreStep creates the step. Images are downloaded through fetch.
func NewStoreStep(db Storer, fetch database.ImageFetcher, logger *slog.Logger) *StoreStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreStep{db: db, fetch: fetch, logger: logger}
}

// Name returns the step name.
func (s *StoreStep) Name() string {
	return "store"
}

// Do stores run.Result and sets run.Stored.
func (s *StoreStep) Do(ctx context.Context, run *model.Run) error {
	if run.Result == nil {
		return ErrNoResult
	}

	describe := func(img model.Image, data []byte) {
		meta := imagemeta.Inspect(data)
		attrs := append([]any{"word", img.Word, "url", img.URL, "exif", meta.HasEXIF()}, meta.Attrs()...)
		s.logger.Debug("downloaded sign", attrs...)
	}

	stats, err := s.db.Store(ctx, run.Result, s.fetch,
		database.WithStoreLogger(s.logger),
		database.WithImageHook(describe),
	)
	if err != nil {
		return fmt.Errorf("failed to store signs: %w", err)
	}

	s.logger.Debug("stored signs", "images", stats.Images, "inserted", stats.Inserted)
	run.Stored = &stats
	return nil
}
