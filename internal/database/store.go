package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/signbank/internal/model"
)

// ImageFetcher downloads image bytes.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// StoreOption configures Store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	logger  *slog.Logger
	onImage func(img model.Image, data []byte)
}

// WithStoreLogger sets the logger used for per-sign debug lines.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(c *storeConfig) {
		c.logger = logger
	}
}

// WithImageHook registers a callback run for every downloaded image.
func WithImageHook(fn func(img model.Image, data []byte)) StoreOption {
	return func(c *storeConfig) {
		c.onImage = fn
	}
}

// Store writes every topic and image of result in one transaction.
// A sign is identified by its author, topic and word. Images are
// downloaded through fetch; a sign that is already stored is not
// downloaded again, so a second triple with the same names is dropped.
// Any error rolls back the whole transaction.
func (s *SignDB) Store(ctx context.Context, result *model.Result, fetch ImageFetcher, opts ...StoreOption) (stats model.StoreStats, err error) {
	cfg := storeConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				cfg.logger.Warn("failed to roll back", "error", rbErr)
			}
		}
	}()

	for _, title := range result.Titles {
		topicID, err := upsertName(ctx, tx, "Topic", title)
		if err != nil {
			return stats, err
		}

		for _, img := range result.Images(title) {
			inserted, err := storeSign(ctx, tx, topicID, img, fetch, &cfg)
			if err != nil {
				return stats, fmt.Errorf("topic %q word %q: %w", title, img.Word, err)
			}
			stats.Images++
			if inserted {
				stats.Inserted++
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit: %w", err)
	}
	return stats, nil
}

func storeSign(ctx context.Context, tx *sql.Tx, topicID int64, img model.Image, fetch ImageFetcher, cfg *storeConfig) (bool, error) {
	authorID, err := upsertName(ctx, tx, "Author", img.Author)
	if err != nil {
		return false, err
	}
	wordID, err := upsertName(ctx, tx, "Word", img.Word)
	if err != nil {
		return false, err
	}

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM Sign WHERE AuthorId = ? AND TopicId = ? AND WordId = ?",
		authorID, topicID, wordID,
	).Scan(&exists)
	if err == nil {
		cfg.logger.Debug("sign already stored", "word", img.Word, "author", img.Author, "url", img.URL)
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to look up sign: %w", err)
	}

	data, err := fetch.Fetch(ctx, img.URL)
	if err != nil {
		return false, err
	}
	if cfg.onImage != nil {
		cfg.onImage(img, data)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO Sign(Data, AuthorId, TopicId, WordId) VALUES(?, ?, ?, ?)",
		data, authorID, topicID, wordID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert sign: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count inserted signs: %w", err)
	}
	return n > 0, nil
}

// upsertName inserts name into table unless present and returns its id.
// table is one of the fixed entity tables, never user input.
func upsertName(ctx context.Context, tx *sql.Tx, table, name string) (int64, error) {
	if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO "+table+"(Name) VALUES(?)", name); err != nil {
		return 0, fmt.Errorf("failed to insert %s %q: %w", table, name, err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, "SELECT Id FROM "+table+" WHERE Name = ?", name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to select %s %q: %w", table, name, err)
	}
	return id, nil
}
