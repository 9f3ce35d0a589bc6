package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/docrender/internal/doctree"
	"github.com/dgallion1/docrender/internal/markdown"
	"github.com/dgallion1/docrender/internal/parser"
	"github.com/dgallion1/docrender/internal/render"
	"github.com/dgallion1/docrender/internal/stats"
)

// Worker converts one job at a time. Each conversion uses its own
// Formatter, so workers never share render state.
type Worker struct {
	parseOpts parser.Options
	latency   *stats.Latency
	log       *slog.Logger
}

func NewWorker(parseOpts parser.Options, latency *stats.Latency, log *slog.Logger) *Worker {
	return &Worker{
		parseOpts: parseOpts,
		latency:   latency,
		log:       log,
	}
}

// Process parses the job's file and renders it to Markdown.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFileWithOptions(job.Filename, w.parseOpts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		w.fail(job, "parsing", err)
		return
	}

	start := time.Now()
	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	w.latency.Record("parse", time.Since(start))
	if err != nil {
		log.Error("parse failed", "error", err)
		w.fail(job, "parsing", fmt.Errorf("parse: %w", err))
		return
	}
	if job.Title != "" {
		doc = Retitle(doc, job.Title)
	}

	if err := ctx.Err(); err != nil {
		w.fail(job, "parsing", err)
		return
	}

	// Phase 2: Render
	job.SetStatus(StatusRendering, "rendering")
	summary, err := Summarize(doc)
	if err != nil {
		log.Error("summarize failed", "error", err)
		w.fail(job, "rendering", err)
		return
	}

	f := markdown.New(nil, job.Options)
	start = time.Now()
	err = render.Render(doc, f)
	w.latency.Record("render", time.Since(start))
	if err != nil {
		log.Error("render failed", "error", err)
		w.fail(job, "rendering", fmt.Errorf("render: %w", err))
		return
	}

	out := bytes.Clone(f.Bytes())
	job.Complete(out, summary, "done")
	log.Info("conversion complete",
		"bytes", len(out),
		"tables", summary.Tables,
		"rejected_rows", summary.RejectedRows,
	)
}

func (w *Worker) fail(job *Job, phase string, err error) {
	job.AddError(err.Error())
	job.SetStatus(StatusFailed, phase)
}

// Retitle returns doc with a new header and the same items.
func Retitle(doc *doctree.Document, title string) *doctree.Document {
	out := doctree.NewDocument(doctree.Plain(title))
	for _, it := range doc.Items() {
		out.Add(it)
	}
	return out
}

// summarizer counts nodes as the engine visits them.
type summarizer struct {
	render.Nop
	s Summary
}

func (v *summarizer) ParagraphBegin(*doctree.Paragraph) error {
	v.s.Paragraphs++
	return nil
}

func (v *summarizer) TableBegin(t *doctree.Table) error {
	v.s.Tables++
	v.s.RejectedRows += t.Rejected()
	return nil
}

func (v *summarizer) ListBegin(doctree.List) error {
	v.s.Lists++
	return nil
}

func (v *summarizer) SectionBegin(*doctree.Section) error {
	v.s.Sections++
	return nil
}

func (v *summarizer) SubsectionBegin(*doctree.Subsection) error {
	v.s.Subsections++
	return nil
}

// Summarize walks doc and counts its content.
func Summarize(doc *doctree.Document) (Summary, error) {
	var v summarizer
	if err := render.Render(doc, &v); err != nil {
		return Summary{}, err
	}
	return v.s, nil
}
