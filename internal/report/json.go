package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/signbank/internal/model"
)

// JSONWriter outputs the summary as a JSON object.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// jsonSummary is the document JSONWriter emits.
type jsonSummary struct {
	Topics   int               `json:"topics"`
	Images   int               `json:"images"`
	Source   string            `json:"source,omitempty"`
	Stored   *model.StoreStats `json:"stored,omitempty"`
	PerTopic []TopicSummary    `json:"per_topic"`
}

// Write outputs the summary in JSON format.
func (w *JSONWriter) Write(run *model.Run) (int, error) {
	topics, images := counts(run)
	summary := jsonSummary{
		Topics:   topics,
		Images:   images,
		Source:   string(run.Source),
		Stored:   run.Stored,
		PerTopic: Topics(run.Result),
	}
	if summary.PerTopic == nil {
		summary.PerTopic = []TopicSummary{}
	}

	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(summary, "", "  ")
	} else {
		data, err = json.Marshal(summary)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
