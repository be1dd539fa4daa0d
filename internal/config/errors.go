package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be checked with
// errors.Is() by callers that want to react to a specific problem.
var (
	// ErrInvalidRootURL is returned when the image bank root URL is empty
	// or is not an absolute http(s) URL.
	ErrInvalidRootURL = errors.New("invalid root URL: must be an absolute http or https URL")

	// ErrInvalidOrigin is returned when the site origin used to build topic
	// URLs is empty or is not an absolute http(s) URL.
	ErrInvalidOrigin = errors.New("invalid site origin: must be an absolute http or https URL")

	// ErrNoCachePath is returned when no crawl cache file path is configured.
	ErrNoCachePath = errors.New("no cache path specified")

	// ErrNoDSN is returned when storing is enabled but no database is configured.
	ErrNoDSN = errors.New("no database specified: use --db or set database in the config file")

	// ErrInvalidTimeout is returned when the request timeout is negative.
	// Zero disables the timeout.
	ErrInvalidTimeout = errors.New("invalid timeout: must be non-negative")

	// ErrInvalidMaxPages is returned when the per-topic page limit is negative.
	// Zero means unbounded.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be non-negative")

	// ErrConflictingFormats is returned when more than one report format
	// is requested.
	ErrConflictingFormats = errors.New("--json and --markdown are mutually exclusive")
)
