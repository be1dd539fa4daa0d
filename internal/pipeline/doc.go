// Package pipeline runs a scrape as an ordered list of steps.
//
// Every step receives the same *model.Run and fills in its part: the
// load-or-crawl step sets the crawl result and where it came from, the store
// step records what was written to the database. The pipeline stops at the
// first failing step, since every failure of a scrape is fatal.
package pipeline
