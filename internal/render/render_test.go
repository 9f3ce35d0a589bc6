package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/docrender/internal/doctree"
	"github.com/google/go-cmp/cmp"
)

// recorder logs every callback as a short event string.
type recorder struct {
	events []string
	failOn string
}

var errStop = errors.New("stop")

func (r *recorder) rec(format string, args ...any) error {
	ev := fmt.Sprintf(format, args...)
	r.events = append(r.events, ev)
	if r.failOn != "" && strings.HasPrefix(ev, r.failOn) {
		return errStop
	}
	return nil
}

func kind(l doctree.List) string {
	if l.Ordered() {
		return "ol"
	}
	return "ul"
}

func (r *recorder) DocumentBegin(*doctree.Document) error { return r.rec("doc_begin") }
func (r *recorder) DocumentHeader(h doctree.Text) error   { return r.rec("doc_header %s", h) }
func (r *recorder) DocumentEnd(*doctree.Document) error   { return r.rec("doc_end") }

func (r *recorder) ParagraphBegin(*doctree.Paragraph) error { return r.rec("p_begin") }
func (r *recorder) ParagraphText(t doctree.Text) error      { return r.rec("p_text %s", t) }
func (r *recorder) ParagraphEnd(*doctree.Paragraph) error   { return r.rec("p_end") }

func (r *recorder) TableBegin(*doctree.Table) error { return r.rec("table_begin") }
func (r *recorder) TableHeaderBegin([]string) error { return r.rec("header_begin") }
func (r *recorder) TableHeaderCell(i int, n string) error {
	return r.rec("header_cell %d %s", i, n)
}
func (r *recorder) TableHeaderEnd([]string) error              { return r.rec("header_end") }
func (r *recorder) TableRowBegin(doctree.Row) error            { return r.rec("row_begin") }
func (r *recorder) TableCellBegin(i int, _ doctree.Text) error { return r.rec("cell_begin %d", i) }
func (r *recorder) TableCellText(i int, c doctree.Text) error {
	return r.rec("cell_text %d %s", i, c)
}
func (r *recorder) TableCellEnd(i int, _ doctree.Text) error { return r.rec("cell_end %d", i) }
func (r *recorder) TableRowEnd(doctree.Row) error            { return r.rec("row_end") }
func (r *recorder) TableEnd(*doctree.Table) error            { return r.rec("table_end") }

func (r *recorder) ListBegin(l doctree.List) error { return r.rec("%s_begin", kind(l)) }
func (r *recorder) ListHeader(l doctree.List, h string) error {
	return r.rec("%s_header %s", kind(l), h)
}
func (r *recorder) ListItemBegin(l doctree.List, i int, _ doctree.ListItem) error {
	return r.rec("%s_item_begin %d", kind(l), i)
}
func (r *recorder) ListItemText(l doctree.List, t doctree.Text) error {
	return r.rec("%s_item_text %s", kind(l), t)
}
func (r *recorder) ListItemEnd(l doctree.List, i int, _ doctree.ListItem) error {
	return r.rec("%s_item_end %d", kind(l), i)
}
func (r *recorder) ListEnd(l doctree.List) error { return r.rec("%s_end", kind(l)) }

func (r *recorder) SubsectionBegin(*doctree.Subsection) error { return r.rec("sub_begin") }
func (r *recorder) SubsectionHeader(h doctree.Text) error     { return r.rec("sub_header %s", h) }
func (r *recorder) SubsectionEnd(*doctree.Subsection) error   { return r.rec("sub_end") }

func (r *recorder) SectionBegin(*doctree.Section) error { return r.rec("sec_begin") }
func (r *recorder) SectionHeader(h doctree.Text) error  { return r.rec("sec_header %s", h) }
func (r *recorder) SectionEnd(*doctree.Section) error   { return r.rec("sec_end") }

func sampleDocument() *doctree.Document {
	return doctree.NewDocument(doctree.Plain("Doc")).
		Add(doctree.NewParagraph("intro")).
		Add(doctree.NewSection(doctree.Plain("Sec")).
			Add(doctree.NewUnorderedList("Items:").
				AddText("a").
				Add(doctree.NewOrderedList("").AddText("b"))).
			Add(doctree.NewSubsection(doctree.Plain("Sub")).
				Add(doctree.NewTable("A", "B").AddRow("1", "2"))))
}

func TestRender_CallOrder(t *testing.T) {
	r := &recorder{}
	if err := Render(sampleDocument(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"doc_begin",
		"doc_header Doc",
		"p_begin", "p_text intro", "p_end",
		"sec_begin", "sec_header Sec",
		"ul_begin", "ul_header Items:",
		"ul_item_begin 1", "ul_item_text a", "ul_item_end 1",
		"ul_item_begin 2",
		"ol_begin", "ol_item_begin 1", "ol_item_text b", "ol_item_end 1", "ol_end",
		"ul_item_end 2",
		"ul_end",
		"sub_begin", "sub_header Sub",
		"table_begin",
		"header_begin", "header_cell 0 A", "header_cell 1 B", "header_end",
		"row_begin",
		"cell_begin 0", "cell_text 0 1", "cell_end 0",
		"cell_begin 1", "cell_text 1 2", "cell_end 1",
		"row_end",
		"table_end",
		"sub_end",
		"sec_end",
		"doc_end",
	}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_EmptyHeadersNotEmitted(t *testing.T) {
	doc := doctree.NewDocument(doctree.Plain("")).
		Add(doctree.NewSection(doctree.Text{})).
		Add(doctree.NewTable())
	r := &recorder{}
	if err := Render(doc, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"doc_begin", "sec_begin", "sec_end", "table_begin", "table_end", "doc_end"}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_DocumentBeginFailureStopsImmediately(t *testing.T) {
	r := &recorder{failOn: "doc_begin"}
	err := Render(sampleDocument(), r)
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}
	if len(r.events) != 1 {
		t.Errorf("expected only doc_begin, got %v", r.events)
	}
}

func TestRender_HookFailureAbortsWalk(t *testing.T) {
	r := &recorder{failOn: "table_begin"}
	err := Render(sampleDocument(), r)
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}
	last := r.events[len(r.events)-1]
	if last != "table_begin" {
		t.Errorf("expected walk to stop at table_begin, got %q", last)
	}
}

func TestRender_DocumentEndFailureReported(t *testing.T) {
	r := &recorder{failOn: "doc_end"}
	if err := Render(sampleDocument(), r); !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}
}

func TestRender_UnknownNodes(t *testing.T) {
	var nilParagraph *doctree.Paragraph
	tests := []struct {
		name string
		doc  *doctree.Document
	}{
		{"nil document item", doctree.NewDocument(doctree.Text{}).Add(nil)},
		{"nil paragraph pointer", doctree.NewDocument(doctree.Text{}).Add(nilParagraph)},
		{"nil section item", doctree.NewDocument(doctree.Text{}).Add(doctree.NewSection(doctree.Text{}).Add(nil))},
		{"nil subsection fragment", doctree.NewDocument(doctree.Text{}).Add(doctree.NewSubsection(doctree.Text{}).Add(nil))},
		{"nil list item", doctree.NewDocument(doctree.Text{}).Add(doctree.NewUnorderedList("").Add(nil))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			err := Render(tt.doc, r)
			if !errors.Is(err, ErrUnknownNode) {
				t.Fatalf("expected ErrUnknownNode, got %v", err)
			}
			for _, ev := range r.events {
				if ev == "doc_end" {
					t.Error("expected walk to abort before doc_end")
				}
			}
		})
	}
}

func TestRender_NilContainerNamesType(t *testing.T) {
	var nilSection *doctree.Section
	var nilSubsection *doctree.Subsection
	tests := []struct {
		name string
		doc  *doctree.Document
		want string
	}{
		{"section", doctree.NewDocument(doctree.Text{}).Add(nilSection), "*doctree.Section: unknown document node"},
		{"subsection", doctree.NewDocument(doctree.Text{}).Add(nilSubsection), "*doctree.Subsection: unknown document node"},
		{"subsection in section", doctree.NewDocument(doctree.Text{}).Add(doctree.NewSection(doctree.Text{}).Add(nilSubsection)), "*doctree.Subsection: unknown document node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Render(tt.doc, Nop{})
			if !errors.Is(err, ErrUnknownNode) {
				t.Fatalf("expected ErrUnknownNode, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error to contain %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestRender_NilDocument(t *testing.T) {
	if err := Render(nil, Nop{}); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
}
