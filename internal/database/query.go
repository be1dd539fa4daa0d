package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SignRecord is one stored sign with its resolved names.
type SignRecord struct {
	ID     int64
	Word   string
	Author string
	Topic  string

	// Size is the length of the image payload in bytes.
	Size int64

	// Data holds the image bytes. Only GetSign fills it.
	Data []byte
}

// Counts holds the number of rows in each table.
type Counts struct {
	Topics  int
	Words   int
	Authors int
	Signs   int
}

const signSelect = `
	SELECT s.Id, w.Name, a.Name, t.Name, COALESCE(length(s.Data), 0)
	FROM Sign s
	JOIN Word w ON w.Id = s.WordId
	JOIN Author a ON a.Id = s.AuthorId
	JOIN Topic t ON t.Id = s.TopicId
`

// FindSigns returns the signs for word, ordered by id. The match is exact
// and case-sensitive.
func (s *SignDB) FindSigns(ctx context.Context, word string) ([]SignRecord, error) {
	rows, err := s.db.QueryContext(ctx, signSelect+" WHERE w.Name = ? ORDER BY s.Id", word)
	if err != nil {
		return nil, fmt.Errorf("failed to query signs: %w", err)
	}
	defer rows.Close()

	var records []SignRecord
	for rows.Next() {
		var r SignRecord
		if err := rows.Scan(&r.ID, &r.Word, &r.Author, &r.Topic, &r.Size); err != nil {
			return nil, fmt.Errorf("failed to scan sign: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// GetSign returns one sign including its image bytes.
func (s *SignDB) GetSign(ctx context.Context, id int64) (*SignRecord, error) {
	var r SignRecord
	err := s.db.QueryRowContext(ctx, signSelect+" WHERE s.Id = ?", id).
		Scan(&r.ID, &r.Word, &r.Author, &r.Topic, &r.Size)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrSignNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sign: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, "SELECT Data FROM Sign WHERE Id = ?", id).Scan(&r.Data); err != nil {
		return nil, fmt.Errorf("failed to read sign data: %w", err)
	}
	return &r, nil
}

// Counts returns the row count of every table.
func (s *SignDB) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	targets := []struct {
		table string
		dst   *int
	}{
		{"Topic", &c.Topics},
		{"Word", &c.Words},
		{"Author", &c.Authors},
		{"Sign", &c.Signs},
	}
	for _, target := range targets {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+target.table).Scan(target.dst); err != nil {
			return Counts{}, fmt.Errorf("failed to count %s: %w", target.table, err)
		}
	}
	return c, nil
}
