package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dgallion1/docrender/internal/doctree"
)

// CSVParser handles CSV files. The first record names the columns; every
// following record is a row. Records with a different field count are
// dropped by the table and reported through Table.Rejected.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	o := newOutline(baseTitle(filename))
	if len(records) == 0 {
		return o.document(), nil
	}

	tbl := doctree.NewTable(records[0]...)
	for _, rec := range records[1:] {
		tbl.AddRow(rec...)
	}
	o.add(tbl)
	return o.document(), nil
}
