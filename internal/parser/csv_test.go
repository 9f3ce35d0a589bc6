package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docrender/internal/doctree"
	"github.com/dgallion1/docrender/internal/markdown"
)

func TestCSVParser_Table(t *testing.T) {
	input := "name,qty\nwidget,3\nbroken\ngadget,12\n"
	doc, err := (&CSVParser{}).Parse(strings.NewReader(input), "stock.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Items()) != 1 {
		t.Fatalf("expected 1 item, got %d", len(doc.Items()))
	}
	tbl, ok := doc.Items()[0].(*doctree.Table)
	if !ok {
		t.Fatalf("expected table, got %T", doc.Items()[0])
	}
	if len(tbl.Rows()) != 2 {
		t.Errorf("expected 2 rows, got %d", len(tbl.Rows()))
	}
	if tbl.Rejected() != 1 {
		t.Errorf("expected 1 rejected row, got %d", tbl.Rejected())
	}

	got, err := markdown.RenderString(doc, markdown.DefaultOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "\n# stock\n\n" +
		"| name   | qty |\n" +
		"|:-------|----:|\n" +
		"| widget |   3 |\n" +
		"| gadget |  12 |\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCSVParser_Empty(t *testing.T) {
	doc, err := (&CSVParser{}).Parse(strings.NewReader(""), "none.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Items()) != 0 {
		t.Errorf("expected no items, got %d", len(doc.Items()))
	}
}
