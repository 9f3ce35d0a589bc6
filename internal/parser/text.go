package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docrender/internal/doctree"
)

// TextParser handles plain text files. Blank lines separate paragraphs; the
// filename becomes the document header.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	o := newOutline(baseTitle(filename))
	for _, para := range splitParagraphs(strings.Join(lines, "\n")) {
		o.add(doctree.NewParagraph(para))
	}
	return o.document(), nil
}
