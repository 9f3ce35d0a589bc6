// Package render walks a doctree.Document depth-first and drives a Visitor.
//
// The walk order is fixed here; visitors only produce output. Every block is
// bracketed by a Begin and an End call with its content callbacks in between.
// The first hook that returns an error stops the walk and Render returns it.
package render

import (
	"errors"
	"fmt"

	"github.com/dgallion1/docrender/internal/doctree"
)

// ErrUnknownNode is returned when the walk meets a nil or unrecognized item.
var ErrUnknownNode = errors.New("unknown document node")

// Render walks doc and invokes v's callbacks in document order.
func Render(doc *doctree.Document, v Visitor) error {
	if doc == nil {
		return fmt.Errorf("render: nil document: %w", ErrUnknownNode)
	}
	if err := v.DocumentBegin(doc); err != nil {
		return fmt.Errorf("document begin: %w", err)
	}

	if !doc.Header().Empty() {
		if err := v.DocumentHeader(doc.Header()); err != nil {
			return fmt.Errorf("document header: %w", err)
		}
	}

	for i, item := range doc.Items() {
		if err := renderDocumentItem(v, item); err != nil {
			return fmt.Errorf("document item %d: %w", i, err)
		}
	}

	if err := v.DocumentEnd(doc); err != nil {
		return fmt.Errorf("document end: %w", err)
	}
	return nil
}

func renderDocumentItem(v Visitor, item doctree.DocumentItem) error {
	switch n := item.(type) {
	case *doctree.Section:
		if n == nil {
			return fmt.Errorf("%T: %w", n, ErrUnknownNode)
		}
		return renderSection(v, n)
	case doctree.SectionItem:
		return renderSectionItem(v, n)
	default:
		return fmt.Errorf("%T: %w", item, ErrUnknownNode)
	}
}

func renderSectionItem(v Visitor, item doctree.SectionItem) error {
	switch n := item.(type) {
	case *doctree.Subsection:
		if n == nil {
			return fmt.Errorf("%T: %w", n, ErrUnknownNode)
		}
		return renderSubsection(v, n)
	case doctree.Fragment:
		return renderFragment(v, n)
	default:
		return fmt.Errorf("%T: %w", item, ErrUnknownNode)
	}
}

func renderFragment(v Visitor, f doctree.Fragment) error {
	switch n := f.(type) {
	case *doctree.Paragraph:
		if n == nil {
			return fmt.Errorf("%T: %w", n, ErrUnknownNode)
		}
		return renderParagraph(v, n)
	case *doctree.Table:
		if n == nil {
			return fmt.Errorf("%T: %w", n, ErrUnknownNode)
		}
		return renderTable(v, n)
	case *doctree.UnorderedList:
		if n == nil {
			return fmt.Errorf("%T: %w", n, ErrUnknownNode)
		}
		return renderList(v, n)
	case *doctree.OrderedList:
		if n == nil {
			return fmt.Errorf("%T: %w", n, ErrUnknownNode)
		}
		return renderList(v, n)
	default:
		return fmt.Errorf("%T: %w", f, ErrUnknownNode)
	}
}

func renderParagraph(v Visitor, p *doctree.Paragraph) error {
	if err := v.ParagraphBegin(p); err != nil {
		return err
	}
	if err := v.ParagraphText(p.Text()); err != nil {
		return err
	}
	return v.ParagraphEnd(p)
}

func renderTable(v Visitor, t *doctree.Table) error {
	if err := v.TableBegin(t); err != nil {
		return err
	}

	if columns := t.Columns(); len(columns) > 0 {
		if err := v.TableHeaderBegin(columns); err != nil {
			return err
		}
		for i, name := range columns {
			if err := v.TableHeaderCell(i, name); err != nil {
				return err
			}
		}
		if err := v.TableHeaderEnd(columns); err != nil {
			return err
		}
	}

	for _, row := range t.Rows() {
		if err := v.TableRowBegin(row); err != nil {
			return err
		}
		for i, cell := range row {
			if err := v.TableCellBegin(i, cell); err != nil {
				return err
			}
			if err := v.TableCellText(i, cell); err != nil {
				return err
			}
			if err := v.TableCellEnd(i, cell); err != nil {
				return err
			}
		}
		if err := v.TableRowEnd(row); err != nil {
			return err
		}
	}

	return v.TableEnd(t)
}

func renderList(v Visitor, l doctree.List) error {
	if err := v.ListBegin(l); err != nil {
		return err
	}
	if l.Header() != "" {
		if err := v.ListHeader(l, l.Header()); err != nil {
			return err
		}
	}

	for i, item := range l.Items() {
		index := i + 1
		if err := v.ListItemBegin(l, index, item); err != nil {
			return err
		}
		switch n := item.(type) {
		case *doctree.Paragraph:
			if n == nil {
				return fmt.Errorf("%T: %w", n, ErrUnknownNode)
			}
			if err := v.ListItemText(l, n.Text()); err != nil {
				return err
			}
		case *doctree.UnorderedList:
			if n == nil {
				return fmt.Errorf("%T: %w", n, ErrUnknownNode)
			}
			if err := renderList(v, n); err != nil {
				return err
			}
		case *doctree.OrderedList:
			if n == nil {
				return fmt.Errorf("%T: %w", n, ErrUnknownNode)
			}
			if err := renderList(v, n); err != nil {
				return err
			}
		default:
			return fmt.Errorf("list item %d: %T: %w", index, item, ErrUnknownNode)
		}
		if err := v.ListItemEnd(l, index, item); err != nil {
			return err
		}
	}

	return v.ListEnd(l)
}

func renderSubsection(v Visitor, s *doctree.Subsection) error {
	if err := v.SubsectionBegin(s); err != nil {
		return err
	}
	if !s.Header().Empty() {
		if err := v.SubsectionHeader(s.Header()); err != nil {
			return err
		}
	}
	for i, f := range s.Items() {
		if err := renderFragment(v, f); err != nil {
			return fmt.Errorf("subsection item %d: %w", i, err)
		}
	}
	return v.SubsectionEnd(s)
}

func renderSection(v Visitor, s *doctree.Section) error {
	if err := v.SectionBegin(s); err != nil {
		return err
	}
	if !s.Header().Empty() {
		if err := v.SectionHeader(s.Header()); err != nil {
			return err
		}
	}
	for i, item := range s.Items() {
		if err := renderSectionItem(v, item); err != nil {
			return fmt.Errorf("section item %d: %w", i, err)
		}
	}
	return v.SectionEnd(s)
}
