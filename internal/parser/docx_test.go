package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docrender/internal/doctree"
	"github.com/fumiama/go-docx"
)

func TestBuildDOCX_HeadingsRunsAndTables(t *testing.T) {
	d := docx.New()
	d.AddParagraph().Style("Heading1").AddText("Overview")
	p := d.AddParagraph()
	p.AddText("plain ")
	p.AddText("loud").Bold()
	p.AddText(" and ")
	p.AddText("soft").Italic()
	d.AddParagraph().Style("Heading 2").AddText("Numbers")

	tbl := d.AddTable(2, 2, 0, nil)
	tbl.TableRows[0].TableCells[0].AddParagraph().AddText("Key")
	tbl.TableRows[0].TableCells[1].AddParagraph().AddText("Value")
	tbl.TableRows[1].TableCells[0].AddParagraph().AddText("a")
	tbl.TableRows[1].TableCells[1].AddParagraph().AddText("1")

	doc := buildDOCX(d, "report")
	if got := doc.Header().String(); got != "report" {
		t.Errorf("expected header %q, got %q", "report", got)
	}
	if len(doc.Items()) != 1 {
		t.Fatalf("expected 1 item, got %d", len(doc.Items()))
	}
	sec, ok := doc.Items()[0].(*doctree.Section)
	if !ok {
		t.Fatalf("expected section, got %T", doc.Items()[0])
	}
	if got := sec.Header().String(); got != "Overview" {
		t.Errorf("expected section %q, got %q", "Overview", got)
	}
	if len(sec.Items()) != 2 {
		t.Fatalf("expected 2 section items, got %d", len(sec.Items()))
	}

	para := sec.Items()[0].(*doctree.Paragraph)
	spans := para.Text().Spans()
	want := []doctree.Span{
		{Text: "plain "},
		{Style: doctree.Strong, Text: "loud"},
		{Text: " and "},
		{Style: doctree.Emphasis, Text: "soft"},
	}
	if len(spans) != len(want) {
		t.Fatalf("expected %d spans, got %+v", len(want), spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d: expected %+v, got %+v", i, want[i], spans[i])
		}
	}

	sub := sec.Items()[1].(*doctree.Subsection)
	table, ok := sub.Items()[0].(*doctree.Table)
	if !ok {
		t.Fatalf("expected table, got %T", sub.Items()[0])
	}
	if strings.Join(table.Columns(), ",") != "Key,Value" {
		t.Errorf("unexpected columns %v", table.Columns())
	}
	if len(table.Rows()) != 1 || table.Rows()[0][1].String() != "1" {
		t.Errorf("unexpected rows %+v", table.Rows())
	}
}

func TestBuildDOCX_NumberedParagraphsNest(t *testing.T) {
	d := docx.New()
	item := func(text, level string) {
		p := d.AddParagraph()
		p.Properties = &docx.ParagraphProperties{
			NumProperties: &docx.NumProperties{
				NumID: &docx.NumID{Val: "1"},
				Ilvl:  &docx.Ilevel{Val: level},
			},
		}
		p.AddText(text)
	}
	item("one", "0")
	item("one.a", "1")
	item("two", "0")
	d.AddParagraph().AddText("after")

	doc := buildDOCX(d, "list")
	if len(doc.Items()) != 2 {
		t.Fatalf("expected list and paragraph, got %d items", len(doc.Items()))
	}
	list, ok := doc.Items()[0].(*doctree.UnorderedList)
	if !ok {
		t.Fatalf("expected unordered list, got %T", doc.Items()[0])
	}
	if len(list.Items()) != 3 {
		t.Fatalf("expected 3 list items, got %d", len(list.Items()))
	}
	nested, ok := list.Items()[1].(*doctree.UnorderedList)
	if !ok || len(nested.Items()) != 1 {
		t.Errorf("expected nested list with one item, got %T", list.Items()[1])
	}
}

func TestDOCXHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading 2", 2},
		{"Heading3", 3},
		{"Title", 1},
		{"BodyText", 0},
		{"HeadingX", 0},
	}
	for _, tt := range tests {
		p := &docx.Paragraph{Properties: &docx.ParagraphProperties{Style: &docx.Style{Val: tt.style}}}
		if got := docxHeadingLevel(p); got != tt.want {
			t.Errorf("style %q: expected %d, got %d", tt.style, tt.want, got)
		}
	}
}

func TestDOCXParser_RejectsGarbage(t *testing.T) {
	if _, err := (&DOCXParser{}).Parse(strings.NewReader("not a zip"), "bad.docx"); err == nil {
		t.Error("expected error for invalid docx")
	}
}
