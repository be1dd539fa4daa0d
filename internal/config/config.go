package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultRootURL is the Papunet image bank front page. Its navigation
	// menu lists every topic of the bank.
	DefaultRootURL = "http://papunet.net/materiaalia/kuvapankki/"

	// DefaultSiteOrigin is prefixed to the relative topic links found in the menu.
	DefaultSiteOrigin = "http://papunet.net"

	// DefaultTimeout of zero means requests never time out.
	DefaultTimeout time.Duration = 0

	// DefaultMaxPages of zero means topic pagination only stops when a page
	// without an image list is reached.
	DefaultMaxPages = 0

	// DefaultCacheFile is the file name of the crawl cache inside the XDG cache directory.
	DefaultCacheFile = "images.gob"

	// DefaultDBFile is the file name of the sign database inside the XDG data directory.
	DefaultDBFile = "images.db"

	// AppName is the application name used for XDG directory paths.
	AppName = "signbank"
)

// Config holds all configuration options for signbank.
// It is populated from defaults, the optional config file and CLI flags,
// in that order, and passed explicitly to the components that need it.
type Config struct {
	// RootURL is the page whose navigation menu is scanned for topics.
	RootURL string

	// SiteOrigin is the scheme and host prefixed to relative topic links.
	SiteOrigin string

	// CachePath is the crawl cache file. When it exists the network crawl
	// is skipped and its content is used instead.
	CachePath string

	// DSN locates the sign database. A plain path or file: DSN opens a
	// local SQLite file; libsql://, http(s):// and ws(s):// open a remote
	// libsql database.
	DSN string

	// Timeout bounds every HTTP request. Zero disables it.
	Timeout time.Duration

	// UserAgent overrides the HTTP client's User-Agent header when non-empty.
	UserAgent string

	// MaxPages caps the number of listing pages fetched per topic.
	// Zero means unbounded.
	MaxPages int

	// Refresh forces a network crawl even when the cache file exists.
	// The cache is overwritten with the fresh result.
	Refresh bool

	// NoStore skips writing into the database; only the crawl and cache run.
	NoStore bool

	// MarkdownReport prints the run summary as Markdown instead of the
	// one-line text summary.
	MarkdownReport bool

	// JSONReport prints the run summary as JSON. It cannot be combined
	// with MarkdownReport.
	JSONReport bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the path of the YAML config file, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// The cache and database default to the XDG cache and data directories.
func NewConfig() *Config {
	return &Config{
		RootURL:    DefaultRootURL,
		SiteOrigin: DefaultSiteOrigin,
		CachePath:  filepath.Join(XDGCacheDir(), DefaultCacheFile),
		DSN:        filepath.Join(XDGDataDir(), DefaultDBFile),
		Timeout:    DefaultTimeout,
		MaxPages:   DefaultMaxPages,
	}
}

// XDGDataDir returns the XDG data directory for signbank.
// On Linux: ~/.local/share/signbank
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for signbank.
// On Linux: ~/.config/signbank
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for signbank.
// On Linux: ~/.cache/signbank
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if !isAbsoluteHTTPURL(c.RootURL) {
		return ErrInvalidRootURL
	}

	if !isAbsoluteHTTPURL(c.SiteOrigin) {
		return ErrInvalidOrigin
	}

	if c.CachePath == "" {
		return ErrNoCachePath
	}

	// The database is only needed when the store step runs
	if !c.NoStore && c.DSN == "" {
		return ErrNoDSN
	}

	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}

	if c.MaxPages < 0 {
		return ErrInvalidMaxPages
	}

	if c.MarkdownReport && c.JSONReport {
		return ErrConflictingFormats
	}

	return nil
}

// isAbsoluteHTTPURL reports whether s parses as an http or https URL with a host.
func isAbsoluteHTTPURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
