package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".signbank"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .signbank configuration file.
// Every field is optional; zero values leave the corresponding Config
// value untouched.
type File struct {
	// Site describes where the image bank lives.
	Site SiteFile `yaml:"site,omitempty"`

	// Cache is the crawl cache file path.
	Cache string `yaml:"cache,omitempty"`

	// Database is the DSN of the sign database.
	Database string `yaml:"database,omitempty"`

	// Timeout is the per-request timeout, e.g. "30s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// UserAgent overrides the HTTP User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// MaxPages caps listing pages per topic.
	MaxPages int `yaml:"maxPages,omitempty"`
}

// SiteFile holds the site section of the configuration file.
type SiteFile struct {
	// Root is the page whose navigation menu lists the topics.
	Root string `yaml:"root,omitempty"`

	// Origin is prefixed to relative topic links.
	Origin string `yaml:"origin,omitempty"`
}

// LoadConfigFile loads a configuration file in YAML format.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply copies every non-zero value of the file onto cfg. A leading "~"
// in the cache and database paths is expanded to the home directory.
func (cf *File) Apply(cfg *Config) {
	if cf.Site.Root != "" {
		cfg.RootURL = cf.Site.Root
	}
	if cf.Site.Origin != "" {
		cfg.SiteOrigin = cf.Site.Origin
	}
	if cf.Cache != "" {
		cfg.CachePath = expandHome(cf.Cache)
	}
	if cf.Database != "" {
		cfg.DSN = expandHome(cf.Database)
	}
	if cf.Timeout != 0 {
		cfg.Timeout = cf.Timeout
	}
	if cf.UserAgent != "" {
		cfg.UserAgent = cf.UserAgent
	}
	if cf.MaxPages != 0 {
		cfg.MaxPages = cf.MaxPages
	}
}

// expandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, and URLs, are returned unchanged.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .signbank in the current directory
// 3. Look for .signbank in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), "config.yaml"))

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
