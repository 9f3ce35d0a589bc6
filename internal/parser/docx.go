package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dgallion1/docrender/internal/doctree"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Heading1 opens a section, deeper headings
// open subsections, bold and italic runs become styled spans and numbered
// paragraphs become list items nested by their numbering level.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	// go-docx needs a ReaderAt+size, so write to temp file.
	tmp, err := os.CreateTemp("", "docrender-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}
	return buildDOCX(doc, baseTitle(filename)), nil
}

func buildDOCX(doc *docx.Docx, title string) *doctree.Document {
	o := newOutline(title)
	var lists docxLists

	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			if level, ok := docxListLevel(it); ok {
				if text := docxParagraphText(it); !text.Empty() {
					lists.add(o, level, doctree.NewParagraphText(text))
				}
				continue
			}
			lists.close()

			text := docxParagraphText(it)
			if text.Empty() {
				continue
			}
			switch level := docxHeadingLevel(it); {
			case level == 1:
				o.section(text)
			case level > 1:
				o.subsection(text)
			default:
				o.add(doctree.NewParagraphText(text))
			}
		case *docx.Table:
			lists.close()
			if tbl := docxTable(it); tbl != nil {
				o.add(tbl)
			}
		}
	}
	return o.document()
}

// docxLists tracks the open list for each numbering level of the current run
// of numbered paragraphs.
type docxLists struct {
	stack []*doctree.UnorderedList
}

func (l *docxLists) add(o *outline, level int, item doctree.ListItem) {
	if len(l.stack) == 0 {
		root := doctree.NewUnorderedList("")
		o.add(root)
		l.stack = append(l.stack, root)
	}
	for len(l.stack) <= level {
		nested := doctree.NewUnorderedList("")
		l.stack[len(l.stack)-1].Add(nested)
		l.stack = append(l.stack, nested)
	}
	l.stack = l.stack[:level+1]
	l.stack[level].Add(item)
}

func (l *docxLists) close() { l.stack = nil }

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if style == "title" {
		return 1
	}
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(style, "heading"))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func docxListLevel(para *docx.Paragraph) (int, bool) {
	if para.Properties == nil || para.Properties.NumProperties == nil {
		return 0, false
	}
	np := para.Properties.NumProperties
	if np.NumID == nil || np.NumID.Val == "" || np.NumID.Val == "0" {
		return 0, false
	}
	if np.Ilvl == nil {
		return 0, true
	}
	n, err := strconv.Atoi(np.Ilvl.Val)
	if err != nil || n < 0 {
		return 0, true
	}
	return n, true
}

// docxParagraphText turns runs into spans. Bold and italic run properties
// map to the span style.
func docxParagraphText(para *docx.Paragraph) doctree.Text {
	var spans []doctree.Span
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		style := doctree.Normal
		if rp := run.RunProperties; rp != nil {
			switch {
			case rp.Bold != nil && rp.Italic != nil:
				style = doctree.StrongEmphasis
			case rp.Bold != nil:
				style = doctree.Strong
			case rp.Italic != nil:
				style = doctree.Emphasis
			}
		}
		for _, rc := range run.Children {
			switch t := rc.(type) {
			case *docx.Text:
				spans = append(spans, doctree.Span{Style: style, Text: t.Text})
			case *docx.Tab, *docx.BarterRabbet:
				spans = append(spans, doctree.Span{Style: style, Text: " "})
			}
		}
	}
	return normalizeSpans(spans)
}

// docxTable uses the first row as the header. Each cell's paragraphs are
// joined with a space.
func docxTable(t *docx.Table) *doctree.Table {
	if len(t.TableRows) == 0 {
		return nil
	}
	columns := make([]string, len(t.TableRows[0].TableCells))
	for i, c := range t.TableRows[0].TableCells {
		columns[i] = docxCellText(c).String()
	}
	tbl := doctree.NewTable(columns...)
	for _, row := range t.TableRows[1:] {
		cells := make([]doctree.Text, len(row.TableCells))
		for i, c := range row.TableCells {
			cells[i] = docxCellText(c)
		}
		tbl.Add(cells...)
	}
	return tbl
}

func docxCellText(c *docx.WTableCell) doctree.Text {
	var spans []doctree.Span
	for i, p := range c.Paragraphs {
		if i > 0 {
			spans = append(spans, doctree.Span{Text: " "})
		}
		spans = append(spans, docxParagraphText(p).Spans()...)
	}
	return normalizeSpans(spans)
}
