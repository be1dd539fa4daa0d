// Package database persists sign images and their metadata.
//
// The store has four tables: Author, Topic and Word hold unique names, and
// Sign holds the image bytes with a reference to one row of each. All
// writes use INSERT OR IGNORE so storing the same crawl twice leaves the
// database unchanged.
//
// A DSN that is a file path (or a "file:" URI) is opened with the pure-Go
// SQLite driver modernc.org/sqlite. A libsql://, http(s):// or ws(s):// DSN
// is opened with the libsql client so the same store can live on a remote
// libsql server.
//
// The scrape does not create tables. The schema ships as SchemaSQL and is
// applied explicitly, either by the operator or through Options.CreateSchema.
package database
