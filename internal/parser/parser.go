// Package parser imports source files into a doctree.Document.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docrender/internal/doctree"
)

// Parser converts raw document bytes into a Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.Document, error)
}

// SupportedExtensions lists file extensions this service can import.
// Markdown is deliberately absent: the service produces Markdown, it does
// not read it.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// Options tunes individual importers.
type Options struct {
	// PDFFallbackPdftotext enables the pdftotext binary when the Go PDF
	// reader fails.
	PDFFallbackPdftotext bool
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	return ForFileWithOptions(filename, Options{})
}

// ForFileWithOptions is ForFile with importer options applied.
func ForFileWithOptions(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// baseTitle is the filename without directory and extension.
func baseTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// outline assembles a document from a flat stream of headings and blocks.
// Blocks land in the innermost open container.
type outline struct {
	header doctree.Text
	items  []doctree.DocumentItem
	sec    *doctree.Section
	sub    *doctree.Subsection
}

func newOutline(title string) *outline {
	return &outline{header: doctree.Plain(title)}
}

func (o *outline) empty() bool { return len(o.items) == 0 }

func (o *outline) section(header doctree.Text) {
	o.sec = doctree.NewSection(header)
	o.sub = nil
	o.items = append(o.items, o.sec)
}

func (o *outline) subsection(header doctree.Text) {
	o.sub = doctree.NewSubsection(header)
	if o.sec != nil {
		o.sec.Add(o.sub)
		return
	}
	o.items = append(o.items, o.sub)
}

func (o *outline) add(f doctree.Fragment) {
	switch {
	case o.sub != nil:
		o.sub.Add(f)
	case o.sec != nil:
		o.sec.Add(f)
	default:
		o.items = append(o.items, f)
	}
}

func (o *outline) document() *doctree.Document {
	doc := doctree.NewDocument(o.header)
	for _, it := range o.items {
		doc.Add(it)
	}
	return doc
}

// splitParagraphs groups lines into blank-line separated paragraphs.
// Lines inside a paragraph are joined with a space.
func splitParagraphs(text string) []string {
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = current[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}
