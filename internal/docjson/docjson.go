// Package docjson is the wire format for documents: a JSON (or YAML) tree
// decoded into a doctree.Document.
//
// Unlike the builder API, decoding never drops content silently. Items with
// no or several kinds, misplaced containers, unknown styles and rows of the
// wrong width are all errors.
package docjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dgallion1/docrender/internal/doctree"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidItem  = errors.New("item must set exactly one kind")
	ErrNesting      = errors.New("item kind not allowed here")
	ErrUnknownStyle = errors.New("unknown span style")
)

// Span is a styled run. In JSON a bare string is a normal span.
type Span struct {
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
	Text  string `json:"text" yaml:"text"`
}

func (s *Span) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*s = Span{Text: text}
		return nil
	}
	type plain Span
	return json.Unmarshal(b, (*plain)(s))
}

func (s *Span) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*s = Span{}
		return n.Decode(&s.Text)
	}
	type plain Span
	return n.Decode((*plain)(s))
}

// Text is a list of spans. A bare string is a single normal span.
type Text []Span

func (t *Text) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*t = plainText(text)
		return nil
	}
	var spans []Span
	if err := json.Unmarshal(b, &spans); err != nil {
		return err
	}
	*t = spans
	return nil
}

func (t *Text) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var text string
		if err := n.Decode(&text); err != nil {
			return err
		}
		*t = plainText(text)
		return nil
	}
	var spans []Span
	if err := n.Decode(&spans); err != nil {
		return err
	}
	*t = spans
	return nil
}

func plainText(s string) Text {
	if s == "" {
		return nil
	}
	return Text{{Text: s}}
}

// Table is a header plus rows of cells.
type Table struct {
	Columns []string `json:"columns" yaml:"columns"`
	Rows    [][]Text `json:"rows" yaml:"rows"`
}

// List is an ordered or unordered list.
type List struct {
	Header string `json:"header,omitempty" yaml:"header,omitempty"`
	Items  []Item `json:"items" yaml:"items"`
}

// Container is a section or subsection.
type Container struct {
	Header Text   `json:"header,omitempty" yaml:"header,omitempty"`
	Items  []Item `json:"items" yaml:"items"`
}

// Item is a tagged union: exactly one field must be set.
type Item struct {
	Paragraph     *Text      `json:"paragraph,omitempty" yaml:"paragraph,omitempty"`
	Table         *Table     `json:"table,omitempty" yaml:"table,omitempty"`
	UnorderedList *List      `json:"unordered_list,omitempty" yaml:"unordered_list,omitempty"`
	OrderedList   *List      `json:"ordered_list,omitempty" yaml:"ordered_list,omitempty"`
	Subsection    *Container `json:"subsection,omitempty" yaml:"subsection,omitempty"`
	Section       *Container `json:"section,omitempty" yaml:"section,omitempty"`
}

// Document is the wire root.
type Document struct {
	Header Text   `json:"header,omitempty" yaml:"header,omitempty"`
	Items  []Item `json:"items" yaml:"items"`
}

// Decode reads a JSON document and builds it.
func Decode(r io.Reader) (*doctree.Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return d.Build()
}

// DecodeYAML reads a YAML document and builds it.
func DecodeYAML(r io.Reader) (*doctree.Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Document
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return d.Build()
}
