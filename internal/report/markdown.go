package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/signbank/internal/model"
)

// MarkdownWriter outputs the scrape summary as a Markdown document.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(run *model.Run) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeSummary(md, run)
	w.writeTopics(md, run)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, run *model.Run) {
	topics, images := counts(run)

	md.H1("Sign Image Bank")
	md.PlainText("")

	rows := [][]string{
		{"Topics", strconv.Itoa(topics)},
		{"Images", strconv.Itoa(images)},
		{"Source", sourceText(run.Source)},
	}
	if run.Stored != nil {
		rows = append(rows,
			[]string{"Signs processed", strconv.Itoa(run.Stored.Images)},
			[]string{"Signs inserted", strconv.Itoa(run.Stored.Inserted)},
		)
	}
	if !run.FinishedAt.IsZero() {
		rows = append(rows, []string{"Duration", run.Elapsed().Round(time.Millisecond).String()})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeTopics(md *markdown.Markdown, run *model.Run) {
	md.H2("Topics")
	md.PlainText("")

	summaries := Topics(run.Result)
	if len(summaries) == 0 {
		md.PlainText("No topics with images.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.Topic, strconv.Itoa(s.Images), strconv.Itoa(s.Authors)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Topic", "Images", "Authors"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, summaries)
}

// writePieChart writes a mermaid pie chart of images per topic.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summaries []TopicSummary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Images per Topic"),
		piechart.WithShowData(true),
	)
	for _, s := range summaries {
		chart.LabelAndIntValue(s.Topic, uint64(s.Images)) //nolint:gosec // counts are never negative
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func sourceText(s model.Source) string {
	switch s {
	case model.SourceCache:
		return "cache"
	case model.SourceNetwork:
		return "network crawl"
	default:
		return "-"
	}
}
