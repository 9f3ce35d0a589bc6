package markdown

import (
	"strings"

	"github.com/dgallion1/docrender/internal/doctree"
)

// columnWidths measures every column as the widest rendered cell, header included.
func columnWidths(t *doctree.Table) []int {
	widths := make([]int, len(t.Columns()))
	for i, name := range t.Columns() {
		widths[i] = width(Escape(name))
	}
	for _, row := range t.Rows() {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := width(renderText(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *Formatter) TableBegin(t *doctree.Table) error {
	f.widths = append(f.widths, columnWidths(t))
	return nil
}

func (f *Formatter) TableEnd(*doctree.Table) error {
	if n := len(f.widths); n > 0 {
		f.widths = f.widths[:n-1]
	}
	f.buf.WriteByte('\n')
	return nil
}

func (f *Formatter) TableHeaderBegin([]string) error {
	f.writeIndent()
	f.buf.WriteByte('|')
	return nil
}

func (f *Formatter) TableHeaderCell(column int, name string) error {
	f.writeCell(column, Escape(name))
	return nil
}

// TableHeaderEnd closes the header row and writes the alignment row: the
// first column is left aligned, the rest right aligned.
func (f *Formatter) TableHeaderEnd([]string) error {
	f.buf.WriteByte('\n')
	f.writeIndent()
	f.buf.WriteByte('|')
	for i, w := range f.currentWidths() {
		dashes := strings.Repeat("-", w+1)
		if i == 0 {
			f.buf.WriteString(":" + dashes)
		} else {
			f.buf.WriteString(dashes + ":")
		}
		f.buf.WriteByte('|')
	}
	f.buf.WriteByte('\n')
	return nil
}

func (f *Formatter) TableRowBegin(doctree.Row) error {
	f.writeIndent()
	f.buf.WriteByte('|')
	return nil
}

func (f *Formatter) TableCellText(column int, cell doctree.Text) error {
	f.writeCell(column, renderText(cell))
	return nil
}

func (f *Formatter) TableRowEnd(doctree.Row) error {
	f.buf.WriteByte('\n')
	return nil
}

// writeCell pads s to its column width: left aligned in column 0, right
// aligned elsewhere.
func (f *Formatter) writeCell(column int, s string) {
	pad := 0
	if widths := f.currentWidths(); column < len(widths) {
		pad = widths[column] - width(s)
	}
	if pad < 0 {
		pad = 0
	}
	f.buf.WriteByte(' ')
	if column == 0 {
		f.buf.WriteString(s)
		f.buf.WriteString(strings.Repeat(" ", pad))
	} else {
		f.buf.WriteString(strings.Repeat(" ", pad))
		f.buf.WriteString(s)
	}
	f.buf.WriteString(" |")
}

func (f *Formatter) currentWidths() []int {
	if len(f.widths) == 0 {
		return nil
	}
	return f.widths[len(f.widths)-1]
}
