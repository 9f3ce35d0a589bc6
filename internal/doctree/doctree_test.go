package doctree

import (
	"errors"
	"testing"
)

func TestTable_RejectsMismatchedRow(t *testing.T) {
	tbl := NewTable("Column A", "Column B")
	tbl.AddRow("x")

	if len(tbl.Rows()) != 0 {
		t.Fatalf("expected 0 rows after rejected add, got %d", len(tbl.Rows()))
	}
	if tbl.Rejected() != 1 {
		t.Errorf("expected 1 rejected row, got %d", tbl.Rejected())
	}

	tbl.AddRow("1", "2").AddRow("3", "4", "5").AddRow("6", "7")
	if len(tbl.Rows()) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows()))
	}
	for i, row := range tbl.Rows() {
		if len(row) != len(tbl.Columns()) {
			t.Errorf("row %d: expected %d cells, got %d", i, len(tbl.Columns()), len(row))
		}
	}
}

func TestTable_AppendReportsColumnCount(t *testing.T) {
	tbl := NewTable("A", "B")
	err := tbl.Append(Plain("only"))
	if !errors.Is(err, ErrColumnCount) {
		t.Fatalf("expected ErrColumnCount, got %v", err)
	}
	if err := tbl.Append(Plain("a"), Plain("b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tbl.Rows()) != 1 {
		t.Errorf("expected 1 row, got %d", len(tbl.Rows()))
	}
}

func TestTable_ColumnsAreCopied(t *testing.T) {
	cols := []string{"A", "B"}
	tbl := NewTable(cols...)
	cols[0] = "changed"
	if tbl.Columns()[0] != "A" {
		t.Errorf("expected column %q, got %q", "A", tbl.Columns()[0])
	}
}

func TestText_AddDoesNotAlias(t *testing.T) {
	base := Plain("a")
	left := base.Add(Strong, "b")
	right := base.Add(Emphasis, "c")

	if got := left.String(); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}
	if got := right.String(); got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}
	if len(base.Spans()) != 1 {
		t.Errorf("expected base to keep 1 span, got %d", len(base.Spans()))
	}
}

func TestPlain_EmptyIsEmpty(t *testing.T) {
	if !Plain("").Empty() {
		t.Error("expected Plain(\"\") to be empty")
	}
	if Plain("x").Empty() {
		t.Error("expected Plain(\"x\") to be non-empty")
	}
}

func TestParagraph_SpansInInsertionOrder(t *testing.T) {
	p := NewParagraphText(Text{}).
		Add("This ").
		AddSpan(Strong, "is").
		Add(" ").
		AddSpan(Emphasis, "formatted")

	want := []Span{
		{Normal, "This "},
		{Strong, "is"},
		{Normal, " "},
		{Emphasis, "formatted"},
	}
	got := p.Text().Spans()
	if len(got) != len(want) {
		t.Fatalf("expected %d spans, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name string
		want Style
		ok   bool
	}{
		{"", Normal, true},
		{"normal", Normal, true},
		{"emphasis", Emphasis, true},
		{"strong", Strong, true},
		{"strong_emphasis", StrongEmphasis, true},
		{"bold", Normal, false},
	}
	for _, tt := range tests {
		got, ok := ParseStyle(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStyle(%q): expected (%v, %v), got (%v, %v)", tt.name, tt.want, tt.ok, got, ok)
		}
	}
}

func TestDocument_ItemsInInsertionOrder(t *testing.T) {
	p := NewParagraph("p")
	sec := NewSection(Plain("S")).
		Add(NewSubsection(Plain("Sub")).Add(NewTable("A")))
	ul := NewUnorderedList("").AddText("one").Add(NewOrderedList("").AddText("nested"))

	doc := NewDocument(Plain("Doc")).Add(p).Add(sec).Add(ul)
	items := doc.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0] != DocumentItem(p) || items[1] != DocumentItem(sec) || items[2] != DocumentItem(ul) {
		t.Error("expected items in insertion order")
	}
	if len(ul.Items()) != 2 {
		t.Errorf("expected 2 list items, got %d", len(ul.Items()))
	}
	if _, ok := ul.Items()[1].(*OrderedList); !ok {
		t.Errorf("expected nested ordered list, got %T", ul.Items()[1])
	}
}
