package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

// Fetcher performs plain HTTP GET requests through one shared client.
type Fetcher struct {
	client *resty.Client

	// timeout bounds each request. 0 disables the bound.
	timeout time.Duration

	// userAgent overrides the client's default User-Agent when set.
	userAgent string

	// httpClient replaces the underlying transport client when set.
	httpClient *http.Client

	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout. 0 means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithHTTPClient sets the *http.Client resty sends requests through.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = hc
	}
}

// New creates a Fetcher. The returned value is safe to reuse for every
// request of a run.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.httpClient != nil {
		f.client = resty.NewWithClient(f.httpClient)
	} else {
		f.client = resty.New()
	}
	f.client.SetTimeout(f.timeout)
	f.client.SetLogger(newRestyLogger(f.logger))
	if f.userAgent != "" {
		f.client.SetHeader("User-Agent", f.userAgent)
	}
	f.client.OnAfterResponse(f.logResponse)

	return f
}

// Fetch issues a GET for url and returns the response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, url, resp.StatusCode())
	}
	return resp.Body(), nil
}

// FetchDocument fetches url and parses the body as HTML.
func (f *Fetcher) FetchDocument(ctx context.Context, url string) (*html.Node, error) {
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}
	return doc, nil
}

// logResponse is registered as a resty after-response hook.
func (f *Fetcher) logResponse(_ *resty.Client, resp *resty.Response) error {
	f.logger.Debug("fetched",
		"method", resp.Request.Method,
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"bytes", len(resp.Body()),
		"duration", resp.Time(),
	)
	return nil
}
