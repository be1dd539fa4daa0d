package cache

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nao1215/signbank/internal/model"
)

var (
	// ErrNotFound is returned by Load when the cache file does not exist.
	ErrNotFound = errors.New("cache file not found")

	// ErrCorrupt is returned by Load when the cache file cannot be decoded.
	ErrCorrupt = errors.New("cache file is corrupt")
)

// Load reads the crawl result stored at path.
func Load(path string) (*model.Result, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open cache %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	var result model.Result
	if err := gob.NewDecoder(f).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if result.ByTopic == nil {
		result.ByTopic = make(map[string][]model.Image)
	}
	if len(result.Titles) != len(result.ByTopic) {
		return nil, fmt.Errorf("%w: %s: %d titles for %d topics", ErrCorrupt, path, len(result.Titles), len(result.ByTopic))
	}

	return &result, nil
}

// Save writes result to path. The file is written next to its final
// location and renamed into place, so a failed save leaves any previous
// cache intact.
func Save(path string, result *model.Result) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary cache file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := gob.NewEncoder(tmp).Encode(result); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move cache into place: %w", err)
	}

	return nil
}
