package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Column names of the published sheet export.
const (
	FieldName          = "PRODUCT_NAME"
	FieldCategory      = "CATEGORY"
	FieldImage         = "IMAGE"
	FieldPrice         = "PRICE"
	FieldDiscountPrice = "DISCOUNT_PRICE"
	FieldAirflow       = "M3H"
	FieldPower         = "STRENGTH"
	FieldDescription   = "DESCRIPTION"
)

// Record maps header names to the raw cell values of one feed row.
type Record map[string]string

func (r Record) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// Parse reads delimited text with a header row and returns one Record per
// data row, in row order. Cells are matched to headers positionally. Rows
// with an empty PRODUCT_NAME are dropped; that is the only validity rule.
// Ragged rows are kept: missing cells stay empty, extra cells are ignored.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("feed: read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var out []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A stray quote or delimiter in one row must not abort
			// the whole feed.
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			return nil, fmt.Errorf("feed: read row: %w", err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			if name == "" || i >= len(row) {
				continue
			}
			rec[name] = row[i]
		}

		if rec.Get(FieldName) == "" {
			continue
		}
		out = append(out, rec)
	}

	return out, nil
}
