package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docrender/internal/doctree"
)

func TestBuildPages_KeepsPageNumbers(t *testing.T) {
	pages := []string{"first page\ncontinues\n\nsecond para", "   \n", "third page"}
	doc := buildPages("scan", pages)

	if len(doc.Items()) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Items()))
	}
	wantHeaders := []string{"Page 1", "Page 3"}
	for i, it := range doc.Items() {
		sec, ok := it.(*doctree.Section)
		if !ok {
			t.Fatalf("item %d: expected section, got %T", i, it)
		}
		if got := sec.Header().String(); got != wantHeaders[i] {
			t.Errorf("item %d: expected %q, got %q", i, wantHeaders[i], got)
		}
	}
	first := doc.Items()[0].(*doctree.Section)
	if len(first.Items()) != 2 {
		t.Fatalf("expected 2 paragraphs on page 1, got %d", len(first.Items()))
	}
	if got := first.Items()[0].(*doctree.Paragraph).Text().String(); got != "first page continues" {
		t.Errorf("expected %q, got %q", "first page continues", got)
	}
}

func TestPDFParser_RejectsGarbage(t *testing.T) {
	if _, err := (&PDFParser{}).Parse(strings.NewReader("not a pdf"), "bad.pdf"); err == nil {
		t.Error("expected error for invalid pdf")
	}
}
