package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docrender/internal/doctree"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files.
//
// <title> (or the filename) becomes the document header. h1 opens a section
// and h2-h6 open subsections; when the page has no <title>, an h1 that comes
// before any content becomes the document header instead. Paragraphs keep
// strong/b and em/i as styled spans.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	o := newOutline(baseTitle(filename))
	title := findTitle(root)
	if title != "" {
		o.header = doctree.Plain(title)
	}
	w := &htmlWalker{o: o, headerFromH1: title == ""}

	if body := findBody(root); body != nil {
		w.blocks(body)
	} else {
		w.blocks(root)
	}
	w.flush()
	return o.document(), nil
}

type htmlWalker struct {
	o            *outline
	headerFromH1 bool

	// loose inline content between block elements
	pending []doctree.Span
}

func (w *htmlWalker) flush() {
	if t := normalizeSpans(w.pending); !t.Empty() {
		w.o.add(doctree.NewParagraphText(t))
	}
	w.pending = nil
}

func (w *htmlWalker) blocks(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.block(c)
	}
}

func (w *htmlWalker) block(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.pending = append(w.pending, doctree.Span{Text: n.Data})
		return
	case html.ElementNode:
	default:
		w.blocks(n)
		return
	}

	if level := headingLevel(n.Data); level > 0 {
		w.flush()
		text := inlineText(n)
		switch {
		case level == 1 && w.headerFromH1 && w.o.empty():
			w.o.header = text
			w.headerFromH1 = false
		case level == 1:
			w.o.section(text)
		default:
			w.o.subsection(text)
		}
		return
	}

	switch n.Data {
	case "script", "style", "nav", "footer", "header", "head", "noscript":
		return
	case "p", "blockquote", "pre", "dt", "dd", "figcaption":
		w.flush()
		if t := inlineText(n); !t.Empty() {
			w.o.add(doctree.NewParagraphText(t))
		}
	case "ul", "ol":
		w.flush()
		if l := htmlList(n); len(l.Items()) > 0 {
			w.o.add(l)
		}
	case "table":
		w.flush()
		if t := htmlTable(n); t != nil {
			w.o.add(t)
		}
	case "br":
		w.pending = append(w.pending, doctree.Span{Text: " "})
	case "b", "strong", "i", "em", "a", "span", "code", "small", "sub", "sup", "u":
		w.pending = append(w.pending, inlineSpans(n, doctree.Normal)...)
	default:
		w.flush()
		w.blocks(n)
		w.flush()
	}
}

// htmlList converts ul/ol. An li's own text becomes a paragraph item and any
// list nested in it follows as a nested item.
func htmlList(n *html.Node) doctree.List {
	var list doctree.List = doctree.NewUnorderedList("")
	if n.Data == "ol" {
		list = doctree.NewOrderedList("")
	}

	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		var spans []doctree.Span
		var nested []doctree.List
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
				nested = append(nested, htmlList(c))
				continue
			}
			spans = append(spans, inlineSpans(c, doctree.Normal)...)
		}
		if t := normalizeSpans(spans); !t.Empty() {
			appendItem(list, doctree.NewParagraphText(t))
		}
		for _, l := range nested {
			if len(l.Items()) > 0 {
				appendItem(list, l)
			}
		}
	}
	return list
}

func appendItem(list doctree.List, item doctree.ListItem) {
	switch l := list.(type) {
	case *doctree.UnorderedList:
		l.Add(item)
	case *doctree.OrderedList:
		l.Add(item)
	}
}

// htmlTable takes the first row as the header. Rows whose cell count differs
// from the header are dropped by the table.
func htmlTable(n *html.Node) *doctree.Table {
	var rows [][]*html.Node
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				collect(c)
			case "tr":
				var cells []*html.Node
				for td := c.FirstChild; td != nil; td = td.NextSibling {
					if td.Type == html.ElementNode && (td.Data == "td" || td.Data == "th") {
						cells = append(cells, td)
					}
				}
				rows = append(rows, cells)
			}
		}
	}
	collect(n)
	if len(rows) == 0 {
		return nil
	}

	columns := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		columns[i] = textContent(c)
	}
	tbl := doctree.NewTable(columns...)
	for _, row := range rows[1:] {
		cells := make([]doctree.Text, len(row))
		for i, c := range row {
			cells[i] = inlineText(c)
		}
		tbl.Add(cells...)
	}
	return tbl
}

func inlineText(n *html.Node) doctree.Text {
	var spans []doctree.Span
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		spans = append(spans, inlineSpans(c, doctree.Normal)...)
	}
	return normalizeSpans(spans)
}

// inlineSpans flattens n into spans, combining strong and emphasis.
func inlineSpans(n *html.Node, style doctree.Style) []doctree.Span {
	switch n.Type {
	case html.TextNode:
		return []doctree.Span{{Style: style, Text: n.Data}}
	case html.ElementNode:
	default:
		return nil
	}
	switch n.Data {
	case "script", "style":
		return nil
	case "br":
		return []doctree.Span{{Style: style, Text: " "}}
	case "b", "strong":
		style = withStrong(style)
	case "i", "em":
		style = withEmphasis(style)
	}
	var spans []doctree.Span
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		spans = append(spans, inlineSpans(c, style)...)
	}
	return spans
}

func withStrong(s doctree.Style) doctree.Style {
	if s == doctree.Emphasis || s == doctree.StrongEmphasis {
		return doctree.StrongEmphasis
	}
	return doctree.Strong
}

func withEmphasis(s doctree.Style) doctree.Style {
	if s == doctree.Strong || s == doctree.StrongEmphasis {
		return doctree.StrongEmphasis
	}
	return doctree.Emphasis
}

// normalizeSpans collapses whitespace runs across span boundaries, trims the
// ends and merges neighbours with the same style.
func normalizeSpans(spans []doctree.Span) doctree.Text {
	var out []doctree.Span
	space := true // suppress leading whitespace
	for _, s := range spans {
		var sb strings.Builder
		for _, r := range s.Text {
			if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
				if !space {
					sb.WriteByte(' ')
					space = true
				}
				continue
			}
			sb.WriteRune(r)
			space = false
		}
		text := sb.String()
		if text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == s.Style {
			out[n-1].Text += text
			continue
		}
		out = append(out, doctree.Span{Style: s.Style, Text: text})
	}
	for len(out) > 0 {
		last := &out[len(out)-1]
		last.Text = strings.TrimRight(last.Text, " ")
		if last.Text != "" {
			break
		}
		out = out[:len(out)-1]
	}
	return doctree.NewText(out...)
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
