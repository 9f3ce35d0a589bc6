package docjson

import (
	"fmt"

	"github.com/dgallion1/docrender/internal/doctree"
)

type scope int

const (
	scopeDocument scope = iota
	scopeSection
	scopeSubsection
	scopeList
)

func (s scope) String() string {
	switch s {
	case scopeDocument:
		return "document"
	case scopeSection:
		return "section"
	case scopeSubsection:
		return "subsection"
	case scopeList:
		return "list"
	}
	return "unknown"
}

// Build converts the wire tree into a document.
func (d Document) Build() (*doctree.Document, error) {
	header, err := d.Header.build()
	if err != nil {
		return nil, fmt.Errorf("document header: %w", err)
	}
	doc := doctree.NewDocument(header)
	for i, it := range d.Items {
		node, err := it.build(scopeDocument)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		doc.Add(node.(doctree.DocumentItem))
	}
	return doc, nil
}

func (t Text) build() (doctree.Text, error) {
	spans := make([]doctree.Span, 0, len(t))
	for _, s := range t {
		style, ok := doctree.ParseStyle(s.Style)
		if !ok {
			return doctree.Text{}, fmt.Errorf("%w: %q", ErrUnknownStyle, s.Style)
		}
		spans = append(spans, doctree.Span{Style: style, Text: s.Text})
	}
	return doctree.NewText(spans...), nil
}

func (it Item) kind() (string, error) {
	var kinds []string
	if it.Paragraph != nil {
		kinds = append(kinds, "paragraph")
	}
	if it.Table != nil {
		kinds = append(kinds, "table")
	}
	if it.UnorderedList != nil {
		kinds = append(kinds, "unordered_list")
	}
	if it.OrderedList != nil {
		kinds = append(kinds, "ordered_list")
	}
	if it.Subsection != nil {
		kinds = append(kinds, "subsection")
	}
	if it.Section != nil {
		kinds = append(kinds, "section")
	}
	if len(kinds) != 1 {
		return "", fmt.Errorf("%w: got %v", ErrInvalidItem, kinds)
	}
	return kinds[0], nil
}

// build returns the node for it. The caller may assert the result to the
// interface matching s: build rejects kinds that do not fit.
func (it Item) build(s scope) (any, error) {
	kind, err := it.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case "paragraph":
		text, err := it.Paragraph.build()
		if err != nil {
			return nil, err
		}
		return doctree.NewParagraphText(text), nil
	case "table":
		if s == scopeList {
			return nil, fmt.Errorf("%w: %s in %s", ErrNesting, kind, s)
		}
		return it.Table.build()
	case "unordered_list":
		return it.UnorderedList.build(doctree.NewUnorderedList(it.UnorderedList.Header))
	case "ordered_list":
		return it.OrderedList.build(doctree.NewOrderedList(it.OrderedList.Header))
	case "subsection":
		if s != scopeDocument && s != scopeSection {
			return nil, fmt.Errorf("%w: %s in %s", ErrNesting, kind, s)
		}
		header, err := it.Subsection.Header.build()
		if err != nil {
			return nil, fmt.Errorf("subsection header: %w", err)
		}
		sub := doctree.NewSubsection(header)
		for i, child := range it.Subsection.Items {
			node, err := child.build(scopeSubsection)
			if err != nil {
				return nil, fmt.Errorf("subsection item %d: %w", i, err)
			}
			sub.Add(node.(doctree.Fragment))
		}
		return sub, nil
	case "section":
		if s != scopeDocument {
			return nil, fmt.Errorf("%w: %s in %s", ErrNesting, kind, s)
		}
		header, err := it.Section.Header.build()
		if err != nil {
			return nil, fmt.Errorf("section header: %w", err)
		}
		sec := doctree.NewSection(header)
		for i, child := range it.Section.Items {
			node, err := child.build(scopeSection)
			if err != nil {
				return nil, fmt.Errorf("section item %d: %w", i, err)
			}
			sec.Add(node.(doctree.SectionItem))
		}
		return sec, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidItem, kind)
}

func (t *Table) build() (*doctree.Table, error) {
	tbl := doctree.NewTable(t.Columns...)
	for i, row := range t.Rows {
		cells := make([]doctree.Text, 0, len(row))
		for j, c := range row {
			text, err := c.build()
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d: %w", i, j, err)
			}
			cells = append(cells, text)
		}
		if err := tbl.Append(cells...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return tbl, nil
}

func (l *List) build(list doctree.List) (doctree.List, error) {
	for i, it := range l.Items {
		node, err := it.build(scopeList)
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		addItem(list, node.(doctree.ListItem))
	}
	return list, nil
}

func addItem(list doctree.List, item doctree.ListItem) {
	switch l := list.(type) {
	case *doctree.UnorderedList:
		l.Add(item)
	case *doctree.OrderedList:
		l.Add(item)
	}
}
