package parser

import "testing"

func TestForFile(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"a.txt", false},
		{"a.CSV", false},
		{"a.html", false},
		{"a.htm", false},
		{"a.pdf", false},
		{"a.docx", false},
		{"a.md", true},
		{"a.markdown", true},
		{"noext", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q): expected error=%v, got %v", tt.name, tt.wantErr, err)
		}
		if IsSupportedExtension(tt.name) == tt.wantErr {
			t.Errorf("IsSupportedExtension(%q): expected %v", tt.name, !tt.wantErr)
		}
	}
}

func TestForFileWithOptions_PDFFallback(t *testing.T) {
	p, err := ForFileWithOptions("scan.pdf", Options{PDFFallbackPdftotext: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pp, ok := p.(*PDFParser); !ok || !pp.FallbackPdftotext {
		t.Errorf("expected PDF parser with fallback, got %#v", p)
	}
}
