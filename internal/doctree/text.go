package doctree

import "strings"

// Style is the emphasis applied to a span.
type Style int

const (
	Normal Style = iota
	Emphasis
	Strong
	StrongEmphasis
)

var styleNames = map[Style]string{
	Normal:         "normal",
	Emphasis:       "emphasis",
	Strong:         "strong",
	StrongEmphasis: "strong_emphasis",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStyle maps a style name back to a Style. The empty string is Normal.
func ParseStyle(name string) (Style, bool) {
	if name == "" {
		return Normal, true
	}
	for s, n := range styleNames {
		if n == name {
			return s, true
		}
	}
	return Normal, false
}

// Span is a run of literal text with one style.
type Span struct {
	Style Style
	Text  string
}

// Text is an ordered sequence of spans. The zero value is empty.
type Text struct {
	spans []Span
}

// NewText builds a Text from spans.
func NewText(spans ...Span) Text {
	var t Text
	for _, s := range spans {
		t = t.Add(s.Style, s.Text)
	}
	return t
}

// Plain returns a single normal span, or an empty Text for "".
func Plain(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{spans: []Span{{Style: Normal, Text: s}}}
}

// Add returns t with a span appended. The receiver's backing array is never shared.
func (t Text) Add(style Style, s string) Text {
	spans := make([]Span, len(t.spans), len(t.spans)+1)
	copy(spans, t.spans)
	return Text{spans: append(spans, Span{Style: style, Text: s})}
}

// Spans returns the spans in rendering order. The slice must not be modified.
func (t Text) Spans() []Span { return t.spans }

// Empty reports whether t has no spans.
func (t Text) Empty() bool { return len(t.spans) == 0 }

// String concatenates the literal span text without styling.
func (t Text) String() string {
	var sb strings.Builder
	for _, s := range t.spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Paragraph wraps one Text.
type Paragraph struct {
	text Text
}

// NewParagraph creates a paragraph holding s as a normal span.
func NewParagraph(s string) *Paragraph {
	return &Paragraph{text: Plain(s)}
}

// NewParagraphText creates a paragraph from already styled text.
func NewParagraphText(t Text) *Paragraph {
	return &Paragraph{text: t}
}

// Add appends a normal span.
func (p *Paragraph) Add(s string) *Paragraph {
	return p.AddSpan(Normal, s)
}

// AddSpan appends a styled span.
func (p *Paragraph) AddSpan(style Style, s string) *Paragraph {
	p.text = p.text.Add(style, s)
	return p
}

func (p *Paragraph) Text() Text { return p.text }

func (*Paragraph) documentItem() {}
func (*Paragraph) sectionItem()  {}
func (*Paragraph) fragment()     {}
func (*Paragraph) listItem()     {}
