// Package model defines the core data structures used throughout signbank.
//
// This package contains the following main types:
//   - TopicLink: A leaf topic discovered in the image bank menu
//   - Image: The (word, author, image URL) triple extracted for one sign
//   - Result: The crawl result, mapping topic names to their images
//   - Run: The state carried through one scrape pipeline execution
//
// Models live in their own package because the crawler, cache, database and
// report packages all share them.
package model
