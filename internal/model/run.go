package model

import "time"

// Source tells where the crawl result of a run came from.
type Source string

const (
	// SourceNone means no result has been produced yet.
	SourceNone Source = ""

	// SourceCache means the result was loaded from the cache file.
	SourceCache Source = "cache"

	// SourceNetwork means the result was crawled from the site.
	SourceNetwork Source = "network"
)

// StoreStats summarizes one database store pass.
type StoreStats struct {
	// Images is the number of triples processed.
	Images int `json:"images"`

	// Inserted is the number of Sign rows actually added. It is lower than
	// Images when the database already held some of the signs.
	Inserted int `json:"inserted"`
}

// Run carries the state of one scrape through the pipeline steps.
type Run struct {
	// Result is the crawl result, set by the load-or-crawl step.
	Result *Result

	// Source tells whether Result came from the cache or the network.
	Source Source

	// Stored is set by the store step. Nil when storing was skipped.
	Stored *StoreStats

	// StartedAt is when the run was created.
	StartedAt time.Time

	// FinishedAt is set when the pipeline completes successfully.
	FinishedAt time.Time

	// PerformedSteps lists the names of the steps that completed.
	PerformedSteps []string
}

// NewRun creates a Run stamped with the current time.
func NewRun() *Run {
	return &Run{
		StartedAt:      time.Now(),
		PerformedSteps: make([]string, 0),
	}
}

// Elapsed returns the run duration, or the time since start if unfinished.
func (r *Run) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
