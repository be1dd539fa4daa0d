package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/net/html"

	"github.com/nao1215/signbank/internal/config"
	"github.com/nao1215/signbank/internal/extract"
	"github.com/nao1215/signbank/internal/model"
)

// DocumentFetcher fetches a URL and returns the parsed HTML document.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, url string) (*html.Node, error)
}

// MergeObserver is called with the title each time a topic's images are
// appended to an existing topic.
type MergeObserver func(title string)

// Crawler collects the image bank into a model.Result.
type Crawler struct {
	fetcher DocumentFetcher

	// rootURL is the page carrying the topic menu.
	rootURL string

	// origin is prefixed to the menu's relative links.
	origin string

	// maxPages caps the listing pages fetched per topic. 0 means no cap.
	maxPages int

	onMerge MergeObserver
	logger  *slog.Logger
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithRootURL sets the page the topic menu is read from.
func WithRootURL(rootURL string) Option {
	return func(c *Crawler) {
		c.rootURL = rootURL
	}
}

// WithOrigin sets the scheme and host prefixed to topic links.
func WithOrigin(origin string) Option {
	return func(c *Crawler) {
		c.origin = origin
	}
}

// WithMaxPages caps the number of listing pages fetched per topic.
// 0 fetches until the listing is exhausted.
func WithMaxPages(n int) Option {
	return func(c *Crawler) {
		c.maxPages = n
	}
}

// WithMergeObserver registers a callback for topic merges.
func WithMergeObserver(fn MergeObserver) Option {
	return func(c *Crawler) {
		c.onMerge = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		c.logger = logger
	}
}

// New creates a Crawler that reads pages through f.
func New(f DocumentFetcher, opts ...Option) *Crawler {
	c := &Crawler{
		fetcher: f,
		rootURL: config.DefaultRootURL,
		origin:  config.DefaultSiteOrigin,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Crawl fetches the topic menu and every topic listing.
// Topics without any image are left out of the result. Any fetch or
// extraction error aborts the crawl.
func (c *Crawler) Crawl(ctx context.Context) (*model.Result, error) {
	topics, err := c.Topics(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("discovered topics", "count", len(topics))

	result := model.NewResult()
	for _, topic := range topics {
		images, err := c.TopicImages(ctx, topic)
		if err != nil {
			return nil, err
		}
		if len(images) == 0 {
			c.logger.Debug("skipping topic without images", "topic", topic.Title, "url", topic.URL)
			continue
		}

		if result.Add(topic.Title, images) {
			c.logger.Info("appending to topic", "topic", topic.Title, "images", len(images))
			if c.onMerge != nil {
				c.onMerge(topic.Title)
			}
		}
	}

	return result, nil
}

// Topics fetches the root page and returns its leaf topics.
func (c *Crawler) Topics(ctx context.Context) ([]model.TopicLink, error) {
	doc, err := c.fetcher.FetchDocument(ctx, c.rootURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topic menu: %w", err)
	}

	topics, err := extract.Topics(doc, c.origin)
	if err != nil {
		return nil, fmt.Errorf("failed to read topic menu %s: %w", c.rootURL, err)
	}
	return topics, nil
}

// TopicImages paginates one topic listing and returns its images in page
// order.
func (c *Crawler) TopicImages(ctx context.Context, topic model.TopicLink) ([]model.Image, error) {
	var images []model.Image

	for page := 0; c.maxPages == 0 || page < c.maxPages; page++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		pageURL := PageURL(topic.URL, page)
		doc, err := c.fetcher.FetchDocument(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("topic %q page %d: %w", topic.Title, page, err)
		}

		found, ok, err := extract.Images(doc)
		if err != nil {
			return nil, fmt.Errorf("topic %q page %d: %w", topic.Title, page, err)
		}
		if !ok {
			break
		}

		c.logger.Debug("extracted page", "topic", topic.Title, "page", page, "images", len(found))
		images = append(images, found...)
	}

	return images, nil
}

// PageURL returns the URL of listing page n of a topic.
func PageURL(topicURL string, n int) string {
	if n == 0 {
		return topicURL
	}
	return topicURL + "&page=" + strconv.Itoa(n)
}
