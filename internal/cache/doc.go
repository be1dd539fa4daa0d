// Package cache stores a crawl result on disk so later runs can skip the
// network crawl.
//
// The cache is a single gob-encoded model.Result with no version header.
// A file that cannot be decoded is reported as ErrCorrupt; it is never
// treated as an empty result.
package cache
