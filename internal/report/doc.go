// Package report prints the outcome of a scrape.
//
// This package contains writers for different output formats:
//   - SimpleWriter: the one-line "N topics, M images" summary
//   - MarkdownWriter: a Markdown document with per-topic tables and a chart
//   - JSONWriter: structured JSON for scripts
//
// Writers implement the Writer interface and read everything from a
// *model.Run, so the CLI can pick a format without knowing its details.
package report
