// Package doctree is the structured document model: styled text spans,
// paragraphs, tables, lists and the section containers that hold them.
//
// Nodes are built once through chained Add calls and are read-only after
// they are handed to a renderer. Nesting rules are carried by the item
// interfaces below, so a Section can never be added to a Subsection and a
// Table can never be a list item.
package doctree

// DocumentItem is anything that may appear at the top level of a Document.
type DocumentItem interface {
	documentItem()
}

// SectionItem is anything that may appear inside a Section.
type SectionItem interface {
	DocumentItem
	sectionItem()
}

// Fragment is a paragraph, table or list: the unit nestable in a Subsection.
type Fragment interface {
	SectionItem
	fragment()
}

// ListItem is a paragraph or a nested list.
type ListItem interface {
	listItem()
}

// Document is the root of the tree.
type Document struct {
	header Text
	items  []DocumentItem
}

// NewDocument creates a document. An empty header is not rendered.
func NewDocument(header Text) *Document {
	return &Document{header: header}
}

// Add appends an item and returns the document for chaining.
func (d *Document) Add(item DocumentItem) *Document {
	d.items = append(d.items, item)
	return d
}

// Header returns the document header.
func (d *Document) Header() Text { return d.header }

// Items returns the top-level items in insertion order. The slice must not be modified.
func (d *Document) Items() []DocumentItem { return d.items }

// Section groups fragments and subsections under an optional header.
type Section struct {
	header Text
	items  []SectionItem
}

func NewSection(header Text) *Section {
	return &Section{header: header}
}

// Add appends a fragment or subsection.
func (s *Section) Add(item SectionItem) *Section {
	s.items = append(s.items, item)
	return s
}

func (s *Section) Header() Text         { return s.header }
func (s *Section) Items() []SectionItem { return s.items }

func (*Section) documentItem() {}

// Subsection groups fragments under an optional header. Subsections do not nest.
type Subsection struct {
	header Text
	items  []Fragment
}

func NewSubsection(header Text) *Subsection {
	return &Subsection{header: header}
}

func (s *Subsection) Add(item Fragment) *Subsection {
	s.items = append(s.items, item)
	return s
}

func (s *Subsection) Header() Text      { return s.header }
func (s *Subsection) Items() []Fragment { return s.items }

func (*Subsection) documentItem() {}
func (*Subsection) sectionItem()  {}
