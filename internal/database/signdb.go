package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // libsql driver
	_ "modernc.org/sqlite"                                // SQLite driver
)

// SchemaSQL creates the four tables of the sign store.
//
//go:embed schema.sql
var SchemaSQL string

// Tables lists the tables the store requires.
var Tables = []string{"Author", "Topic", "Word", "Sign"}

// requiredColumns lists the columns Store and the lookups read from each
// table. Extra columns are allowed.
var requiredColumns = map[string][]string{
	"Author": {"Id", "Name"},
	"Topic":  {"Id", "Name"},
	"Word":   {"Id", "Name"},
	"Sign":   {"Id", "Data", "AuthorId", "TopicId", "WordId"},
}

var (
	// ErrMissingTable is returned by Open when a required table is absent.
	ErrMissingTable = errors.New("required table missing")

	// ErrMissingColumn is returned by Open when a table lacks a column
	// the store writes or reads.
	ErrMissingColumn = errors.New("required column missing")

	// ErrSignNotFound is returned by GetSign for an unknown id.
	ErrSignNotFound = errors.New("sign not found")
)

// Driver names registered with database/sql.
const (
	DriverSQLite = "sqlite"
	DriverLibSQL = "libsql"
)

// remotePrefixes are the DSN schemes served by the libsql client.
var remotePrefixes = []string{"libsql://", "http://", "https://", "ws://", "wss://"}

// SignDB is the sign store.
type SignDB struct {
	db     *sql.DB
	driver string
}

// Options configures Open.
type Options struct {
	// CreateSchema applies SchemaSQL after opening. For a local file it also
	// creates the file and its directory.
	CreateSchema bool
}

// DriverFor returns the database/sql driver that serves dsn.
func DriverFor(dsn string) string {
	for _, prefix := range remotePrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return DriverLibSQL
		}
	}
	return DriverSQLite
}

// Open opens the store at dsn and checks that its tables and their
// columns exist.
func Open(ctx context.Context, dsn string, opts Options) (*SignDB, error) {
	driver := DriverFor(dsn)
	source := dsn

	if driver == DriverSQLite {
		var err error
		source, err = sqliteSource(dsn, opts.CreateSchema)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1) // SQLite only supports one writer
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(time.Hour)
	}

	sdb := &SignDB{db: db, driver: driver}

	if opts.CreateSchema {
		if err := sdb.ApplySchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := sdb.checkTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sdb, nil
}

// sqliteSource builds the modernc connection string for a local DSN.
// Without create the file must already exist. A file: URI is handed to
// SQLite as is, with mode=rw added unless it names a mode itself.
func sqliteSource(dsn string, create bool) (string, error) {
	path, query, _ := strings.Cut(dsn, "?")

	if strings.HasPrefix(dsn, "file:") {
		if create || hasParam(query, "mode") {
			return dsn, nil
		}
		return withParam(dsn, "mode=rw"), nil
	}

	mode := "mode=rwc"
	if !create {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("database not found at %s: %w", path, err)
		}
		mode = "mode=rw"
	} else if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create database directory: %w", err)
	}

	if hasParam(query, "mode") {
		return dsn, nil
	}
	return withParam(dsn, mode), nil
}

func hasParam(query, key string) bool {
	values, err := url.ParseQuery(query)
	return err == nil && values.Has(key)
}

func withParam(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

// Driver returns the database/sql driver in use.
func (s *SignDB) Driver() string {
	return s.driver
}

// Close closes the database connection.
func (s *SignDB) Close() error {
	return s.db.Close()
}

// ApplySchema runs SchemaSQL. Existing tables are kept.
func (s *SignDB) ApplySchema(ctx context.Context) error {
	for _, stmt := range statements(SchemaSQL) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// checkTables returns ErrMissingTable naming every absent table.
func (s *SignDB) checkTables(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan table name: %w", err)
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	var missing []string
	for _, table := range Tables {
		if !present[table] {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (apply the schema with 'signbank schema --apply')", ErrMissingTable, strings.Join(missing, ", "))
	}

	for _, table := range Tables {
		if err := s.checkColumns(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

// checkColumns returns ErrMissingColumn naming every absent column of table.
func (s *SignDB) checkColumns(ctx context.Context, table string) error {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return fmt.Errorf("failed to list columns of %s: %w", table, err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan column name: %w", err)
		}
		present[strings.ToLower(name)] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to list columns of %s: %w", table, err)
	}

	var missing []string
	for _, column := range requiredColumns[table] {
		if !present[strings.ToLower(column)] {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s.%s", ErrMissingColumn, table, strings.Join(missing, ", "+table+"."))
	}
	return nil
}

// statements splits a SQL script on semicolons. The schema has no
// semicolons inside literals.
func statements(script string) []string {
	parts := strings.Split(script, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
