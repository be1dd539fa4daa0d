package report

import (
	"fmt"
	"io"

	"github.com/nao1215/signbank/internal/model"
)

// SimpleWriter prints the summary line.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write prints "N topics, M images".
func (w *SimpleWriter) Write(run *model.Run) (int, error) {
	topics, images := counts(run)
	return fmt.Fprintf(w.output, "%d topics, %d images\n", topics, images)
}
