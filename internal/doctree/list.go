package doctree

// List is implemented by UnorderedList and OrderedList.
type List interface {
	Fragment
	ListItem
	Ordered() bool
	Header() string
	Items() []ListItem
}

var (
	_ List = (*UnorderedList)(nil)
	_ List = (*OrderedList)(nil)
)

// UnorderedList is a bulleted list with an optional header line.
type UnorderedList struct {
	header string
	items  []ListItem
}

func NewUnorderedList(header string) *UnorderedList {
	return &UnorderedList{header: header}
}

// Add appends a paragraph or nested list.
func (l *UnorderedList) Add(item ListItem) *UnorderedList {
	l.items = append(l.items, item)
	return l
}

// AddText appends a plain paragraph item.
func (l *UnorderedList) AddText(s string) *UnorderedList {
	return l.Add(NewParagraph(s))
}

func (l *UnorderedList) Ordered() bool     { return false }
func (l *UnorderedList) Header() string    { return l.header }
func (l *UnorderedList) Items() []ListItem { return l.items }

func (*UnorderedList) documentItem() {}
func (*UnorderedList) sectionItem()  {}
func (*UnorderedList) fragment()     {}
func (*UnorderedList) listItem()     {}

// OrderedList is a numbered list; item numbers are 1-based positions.
type OrderedList struct {
	header string
	items  []ListItem
}

func NewOrderedList(header string) *OrderedList {
	return &OrderedList{header: header}
}

func (l *OrderedList) Add(item ListItem) *OrderedList {
	l.items = append(l.items, item)
	return l
}

func (l *OrderedList) AddText(s string) *OrderedList {
	return l.Add(NewParagraph(s))
}

func (l *OrderedList) Ordered() bool     { return true }
func (l *OrderedList) Header() string    { return l.header }
func (l *OrderedList) Items() []ListItem { return l.items }

func (*OrderedList) documentItem() {}
func (*OrderedList) sectionItem()  {}
func (*OrderedList) fragment()     {}
func (*OrderedList) listItem()     {}
