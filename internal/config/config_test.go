package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default RootURL is the image bank front page", func(t *testing.T) {
		t.Parallel()
		if cfg.RootURL != "http://papunet.net/materiaalia/kuvapankki/" {
			t.Errorf("unexpected RootURL %q", cfg.RootURL)
		}
	})

	t.Run("default SiteOrigin is papunet.net", func(t *testing.T) {
		t.Parallel()
		if cfg.SiteOrigin != "http://papunet.net" {
			t.Errorf("unexpected SiteOrigin %q", cfg.SiteOrigin)
		}
	})

	t.Run("default Timeout is disabled", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 0 {
			t.Errorf("expected no timeout, got %v", cfg.Timeout)
		}
	})

	t.Run("default MaxPages is unbounded", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxPages != 0 {
			t.Errorf("expected 0, got %d", cfg.MaxPages)
		}
	})

	t.Run("default cache lives in the XDG cache dir", func(t *testing.T) {
		t.Parallel()
		if cfg.CachePath != filepath.Join(XDGCacheDir(), "images.gob") {
			t.Errorf("unexpected CachePath %q", cfg.CachePath)
		}
	})

	t.Run("default database lives in the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if cfg.DSN != filepath.Join(XDGDataDir(), "images.db") {
			t.Errorf("unexpected DSN %q", cfg.DSN)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected defaults to validate, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		return &Config{
			RootURL:    "http://example.com/kuvapankki/",
			SiteOrigin: "http://example.com",
			CachePath:  "/tmp/images.gob",
			DSN:        "/tmp/images.db",
		}
	}

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{
			name:   "valid config returns nil",
			modify: func(*Config) {},
			want:   nil,
		},
		{
			name:   "empty root URL",
			modify: func(c *Config) { c.RootURL = "" },
			want:   ErrInvalidRootURL,
		},
		{
			name:   "relative root URL",
			modify: func(c *Config) { c.RootURL = "/materiaalia/kuvapankki/" },
			want:   ErrInvalidRootURL,
		},
		{
			name:   "ftp root URL",
			modify: func(c *Config) { c.RootURL = "ftp://example.com/" },
			want:   ErrInvalidRootURL,
		},
		{
			name:   "empty origin",
			modify: func(c *Config) { c.SiteOrigin = "" },
			want:   ErrInvalidOrigin,
		},
		{
			name:   "empty cache path",
			modify: func(c *Config) { c.CachePath = "" },
			want:   ErrNoCachePath,
		},
		{
			name:   "empty DSN while storing",
			modify: func(c *Config) { c.DSN = "" },
			want:   ErrNoDSN,
		},
		{
			name: "empty DSN is fine without store",
			modify: func(c *Config) {
				c.DSN = ""
				c.NoStore = true
			},
			want: nil,
		},
		{
			name:   "negative timeout",
			modify: func(c *Config) { c.Timeout = -time.Second },
			want:   ErrInvalidTimeout,
		},
		{
			name:   "positive timeout",
			modify: func(c *Config) { c.Timeout = 30 * time.Second },
			want:   nil,
		},
		{
			name:   "negative max pages",
			modify: func(c *Config) { c.MaxPages = -1 },
			want:   ErrInvalidMaxPages,
		},
		{
			name:   "markdown and json together",
			modify: func(c *Config) { c.MarkdownReport = true; c.JSONReport = true },
			want:   ErrConflictingFormats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.signbank")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".signbank")
		content := `site:
  root: "http://mirror.example/kuvapankki/"
  origin: "http://mirror.example"
cache: "/var/cache/signbank/images.gob"
database: "libsql://signs.example.turso.io"
timeout: 45s
userAgent: "signbank-test"
maxPages: 12
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.Site.Root != "http://mirror.example/kuvapankki/" {
			t.Errorf("unexpected root %q", cf.Site.Root)
		}
		if cf.Site.Origin != "http://mirror.example" {
			t.Errorf("unexpected origin %q", cf.Site.Origin)
		}
		if cf.Timeout != 45*time.Second {
			t.Errorf("expected 45s timeout, got %v", cf.Timeout)
		}
		if cf.MaxPages != 12 {
			t.Errorf("expected maxPages 12, got %d", cf.MaxPages)
		}
		if cf.Database != "libsql://signs.example.turso.io" {
			t.Errorf("unexpected database %q", cf.Database)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".signbank")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFileApply tests that only non-zero file values override the config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty file keeps defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		want := *cfg
		(&File{}).Apply(cfg)

		if *cfg != want {
			t.Errorf("expected config to be unchanged, got %+v", cfg)
		}
	})

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cf := &File{
			Site:     SiteFile{Origin: "https://papunet.net"},
			Database: "/srv/signs.db",
			MaxPages: 3,
		}
		cf.Apply(cfg)

		if cfg.SiteOrigin != "https://papunet.net" {
			t.Errorf("unexpected origin %q", cfg.SiteOrigin)
		}
		if cfg.RootURL != DefaultRootURL {
			t.Errorf("root should keep its default, got %q", cfg.RootURL)
		}
		if cfg.DSN != "/srv/signs.db" {
			t.Errorf("unexpected DSN %q", cfg.DSN)
		}
		if cfg.MaxPages != 3 {
			t.Errorf("expected max pages 3, got %d", cfg.MaxPages)
		}
	})
}

// TestFileApply_HomeExpansion tests "~" in cache and database paths.
func TestFileApply_HomeExpansion(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "tilde slash", path: "~/.cache/signbank/images.gob", want: filepath.Join(home, ".cache", "signbank", "images.gob")},
		{name: "bare tilde", path: "~", want: home},
		{name: "absolute path", path: "/srv/images.gob", want: "/srv/images.gob"},
		{name: "tilde user is kept", path: "~other/images.gob", want: "~other/images.gob"},
		{name: "libsql URL", path: "libsql://signs.example.turso.io", want: "libsql://signs.example.turso.io"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			(&File{Cache: tt.path, Database: tt.path}).Apply(cfg)
			if cfg.CachePath != tt.want {
				t.Errorf("CachePath = %q, want %q", cfg.CachePath, tt.want)
			}
			if cfg.DSN != tt.want {
				t.Errorf("DSN = %q, want %q", cfg.DSN, tt.want)
			}
		})
	}
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("cache: x"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	for name, dir := range map[string]string{
		"data":   XDGDataDir(),
		"config": XDGConfigDir(),
		"cache":  XDGCacheDir(),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if !strings.HasSuffix(dir, AppName) {
				t.Errorf("expected %s dir to end with %q, got %q", name, AppName, dir)
			}
		})
	}
}
