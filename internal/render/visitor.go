package render

import "github.com/dgallion1/docrender/internal/doctree"

// Visitor receives the callbacks of a Render walk. A non-nil error from any
// method aborts the walk.
type Visitor interface {
	DocumentBegin(doc *doctree.Document) error
	DocumentHeader(header doctree.Text) error
	DocumentEnd(doc *doctree.Document) error

	ParagraphBegin(p *doctree.Paragraph) error
	ParagraphText(text doctree.Text) error
	ParagraphEnd(p *doctree.Paragraph) error

	TableBegin(t *doctree.Table) error
	TableHeaderBegin(columns []string) error
	TableHeaderCell(column int, name string) error
	TableHeaderEnd(columns []string) error
	TableRowBegin(row doctree.Row) error
	TableCellBegin(column int, cell doctree.Text) error
	TableCellText(column int, cell doctree.Text) error
	TableCellEnd(column int, cell doctree.Text) error
	TableRowEnd(row doctree.Row) error
	TableEnd(t *doctree.Table) error

	// ListItemBegin and ListItemEnd receive the 1-based position of the item.
	ListBegin(l doctree.List) error
	ListHeader(l doctree.List, header string) error
	ListItemBegin(l doctree.List, index int, item doctree.ListItem) error
	ListItemText(l doctree.List, text doctree.Text) error
	ListItemEnd(l doctree.List, index int, item doctree.ListItem) error
	ListEnd(l doctree.List) error

	SubsectionBegin(s *doctree.Subsection) error
	SubsectionHeader(header doctree.Text) error
	SubsectionEnd(s *doctree.Subsection) error

	SectionBegin(s *doctree.Section) error
	SectionHeader(header doctree.Text) error
	SectionEnd(s *doctree.Section) error
}

// Nop implements every Visitor method as a no-op. Embed it to override a subset.
type Nop struct{}

var _ Visitor = Nop{}

func (Nop) DocumentBegin(*doctree.Document) error { return nil }
func (Nop) DocumentHeader(doctree.Text) error     { return nil }
func (Nop) DocumentEnd(*doctree.Document) error   { return nil }

func (Nop) ParagraphBegin(*doctree.Paragraph) error { return nil }
func (Nop) ParagraphText(doctree.Text) error        { return nil }
func (Nop) ParagraphEnd(*doctree.Paragraph) error   { return nil }

func (Nop) TableBegin(*doctree.Table) error        { return nil }
func (Nop) TableHeaderBegin([]string) error        { return nil }
func (Nop) TableHeaderCell(int, string) error      { return nil }
func (Nop) TableHeaderEnd([]string) error          { return nil }
func (Nop) TableRowBegin(doctree.Row) error        { return nil }
func (Nop) TableCellBegin(int, doctree.Text) error { return nil }
func (Nop) TableCellText(int, doctree.Text) error  { return nil }
func (Nop) TableCellEnd(int, doctree.Text) error   { return nil }
func (Nop) TableRowEnd(doctree.Row) error          { return nil }
func (Nop) TableEnd(*doctree.Table) error          { return nil }

func (Nop) ListBegin(doctree.List) error                            { return nil }
func (Nop) ListHeader(doctree.List, string) error                   { return nil }
func (Nop) ListItemBegin(doctree.List, int, doctree.ListItem) error { return nil }
func (Nop) ListItemText(doctree.List, doctree.Text) error           { return nil }
func (Nop) ListItemEnd(doctree.List, int, doctree.ListItem) error   { return nil }
func (Nop) ListEnd(doctree.List) error                              { return nil }

func (Nop) SubsectionBegin(*doctree.Subsection) error { return nil }
func (Nop) SubsectionHeader(doctree.Text) error       { return nil }
func (Nop) SubsectionEnd(*doctree.Subsection) error   { return nil }

func (Nop) SectionBegin(*doctree.Section) error { return nil }
func (Nop) SectionHeader(doctree.Text) error    { return nil }
func (Nop) SectionEnd(*doctree.Section) error   { return nil }
