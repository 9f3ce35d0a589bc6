// Package markdown renders a doctree.Document as Markdown.
//
// The Formatter is a render.Visitor. It writes into an internal buffer and
// hands the buffer to the sink only when the walk completes, so a failed
// render leaves the sink untouched. A Formatter keeps per-render state
// (indentation, table column widths) and must not be shared between
// concurrent renders.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/docrender/internal/doctree"
	"github.com/dgallion1/docrender/internal/render"
	"github.com/mattn/go-runewidth"
)

// ErrSinkNotReady is returned when the output sink reports a failed open.
var ErrSinkNotReady = errors.New("output sink not ready")

// Options controls layout.
type Options struct {
	// Margin is the target line width. It is advisory; lines are never wrapped.
	Margin int
	// Indent is the number of spaces per list nesting level.
	Indent int
}

// DefaultOptions returns margin 80, indent 4.
func DefaultOptions() Options {
	return Options{Margin: 80, Indent: 4}
}

// readiness is implemented by sinks that can report an open failure.
type readiness interface {
	Err() error
}

// Formatter is the Markdown visitor.
type Formatter struct {
	render.Nop

	w      io.Writer
	opts   Options
	buf    bytes.Buffer
	indent int
	lists  int
	widths [][]int
}

var _ render.Visitor = (*Formatter)(nil)

// New returns a Formatter writing to w. w may be nil, in which case the
// output is only available through Bytes.
func New(w io.Writer, opts Options) *Formatter {
	if opts.Margin <= 0 {
		opts.Margin = DefaultOptions().Margin
	}
	if opts.Indent < 0 {
		opts.Indent = 0
	}
	return &Formatter{w: w, opts: opts}
}

// RenderDocument renders doc to w with a fresh Formatter.
func RenderDocument(doc *doctree.Document, w io.Writer, opts Options) error {
	return render.Render(doc, New(w, opts))
}

// RenderString renders doc and returns the Markdown.
func RenderString(doc *doctree.Document, opts Options) (string, error) {
	f := New(nil, opts)
	if err := render.Render(doc, f); err != nil {
		return "", err
	}
	return f.String(), nil
}

// Bytes returns the output of the last render.
func (f *Formatter) Bytes() []byte { return f.buf.Bytes() }

// String returns the output of the last render.
func (f *Formatter) String() string { return f.buf.String() }

// Options returns the effective options.
func (f *Formatter) Options() Options { return f.opts }

// IndentLevel is the current list indentation in spaces.
func (f *Formatter) IndentLevel() int { return f.indent }

func (f *Formatter) DocumentBegin(*doctree.Document) error {
	if r, ok := f.w.(readiness); ok {
		if err := r.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrSinkNotReady, err)
		}
	}
	f.buf.Reset()
	f.indent = 0
	f.lists = 0
	f.widths = f.widths[:0]
	return nil
}

func (f *Formatter) DocumentHeader(header doctree.Text) error {
	f.buf.WriteString("\n# ")
	f.writeText(header)
	f.buf.WriteString("\n\n")
	return nil
}

func (f *Formatter) DocumentEnd(*doctree.Document) error {
	if f.w == nil {
		return nil
	}
	if _, err := f.w.Write(f.buf.Bytes()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func (f *Formatter) SectionHeader(header doctree.Text) error {
	f.writeHeader("## ", header)
	return nil
}

func (f *Formatter) SubsectionHeader(header doctree.Text) error {
	f.writeHeader("### ", header)
	return nil
}

func (f *Formatter) ParagraphBegin(*doctree.Paragraph) error {
	f.writeIndent()
	return nil
}

func (f *Formatter) ParagraphText(text doctree.Text) error {
	f.writeText(text)
	return nil
}

func (f *Formatter) ParagraphEnd(*doctree.Paragraph) error {
	f.buf.WriteString("\n\n")
	return nil
}

func (f *Formatter) ListBegin(doctree.List) error {
	f.lists++
	return nil
}

func (f *Formatter) ListHeader(_ doctree.List, header string) error {
	f.writeIndent()
	f.buf.WriteString(Escape(header))
	f.buf.WriteByte('\n')
	return nil
}

// ListItemBegin writes the item marker for paragraph items. An item holding
// a nested list gets no marker of its own; the nested list is indented under
// the preceding item.
func (f *Formatter) ListItemBegin(l doctree.List, index int, item doctree.ListItem) error {
	if _, ok := item.(*doctree.Paragraph); ok {
		f.writeIndent()
		if l.Ordered() {
			f.buf.WriteString(strconv.Itoa(index))
			f.buf.WriteString(". ")
		} else {
			f.buf.WriteString("- ")
		}
	}
	f.indent += f.opts.Indent
	return nil
}

func (f *Formatter) ListItemText(_ doctree.List, text doctree.Text) error {
	f.writeText(text)
	f.buf.WriteByte('\n')
	return nil
}

func (f *Formatter) ListItemEnd(doctree.List, int, doctree.ListItem) error {
	f.indent -= f.opts.Indent
	return nil
}

func (f *Formatter) ListEnd(doctree.List) error {
	f.lists--
	if f.lists == 0 {
		f.buf.WriteByte('\n')
	}
	return nil
}

func (f *Formatter) writeHeader(marker string, header doctree.Text) {
	f.blankLine()
	f.buf.WriteString(marker)
	f.writeText(header)
	f.buf.WriteString("\n\n")
}

// blankLine makes sure the output so far ends with an empty line.
func (f *Formatter) blankLine() {
	b := f.buf.Bytes()
	switch {
	case len(b) == 0 || bytes.HasSuffix(b, []byte("\n\n")):
	case bytes.HasSuffix(b, []byte("\n")):
		f.buf.WriteByte('\n')
	default:
		f.buf.WriteString("\n\n")
	}
}

func (f *Formatter) writeIndent() {
	if f.indent > 0 {
		f.buf.WriteString(strings.Repeat(" ", f.indent))
	}
}

func (f *Formatter) writeText(t doctree.Text) {
	writeText(&f.buf, t)
}

var delimiters = map[doctree.Style]string{
	doctree.Emphasis:       "*",
	doctree.Strong:         "**",
	doctree.StrongEmphasis: "***",
}

// writeText renders spans: escaped literal text wrapped in the style delimiter.
// Empty spans render as nothing.
func writeText(w io.StringWriter, t doctree.Text) {
	for _, s := range t.Spans() {
		if s.Text == "" {
			continue
		}
		d := delimiters[s.Style]
		w.WriteString(d)
		w.WriteString(Escape(s.Text))
		w.WriteString(d)
	}
}

// renderText returns the Markdown for t as it would appear in the output.
func renderText(t doctree.Text) string {
	var sb strings.Builder
	writeText(&sb, t)
	return sb.String()
}

// width is the display width of rendered text.
func width(s string) int {
	return runewidth.StringWidth(s)
}
