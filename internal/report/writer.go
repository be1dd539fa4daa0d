package report

import (
	"io"

	"github.com/nao1215/signbank/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the summary of run.
	// Returns the number of bytes written and any error encountered.
	Write(run *model.Run) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// TopicSummary is the per-topic line of a report.
type TopicSummary struct {
	Topic   string `json:"topic"`
	Images  int    `json:"images"`
	Authors int    `json:"authors"`
}

// Topics summarizes every topic of result in first-encounter order.
func Topics(result *model.Result) []TopicSummary {
	if result == nil {
		return nil
	}
	out := make([]TopicSummary, 0, result.Len())
	for _, title := range result.Titles {
		out = append(out, TopicSummary{
			Topic:   title,
			Images:  len(result.Images(title)),
			Authors: result.AuthorCount(title),
		})
	}
	return out
}

// counts returns the topic and image totals of run, zero when it has no result.
func counts(run *model.Run) (topics, images int) {
	if run.Result == nil {
		return 0, 0
	}
	return run.Result.Len(), run.Result.ImageCount()
}
