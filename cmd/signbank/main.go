// Package main provides the entry point for the signbank CLI.
//
// signbank scrapes the Papunet image bank for sign-language images together
// with their word, author and topic, and stores them in a SQLite (or libsql)
// database for lookup.
//
// Usage:
//
//	signbank schema --apply
//	signbank scrape
//	signbank lookup <word>
//
// See --help for all available options.
package main

// main is the entry point for signbank.
func main() {
	Execute()
}
