package catalog

// csv.go decodes CSV documents into header-keyed rows.
//
// The first row is the header; recognized columns are matched by lowercased
// name, unknown columns ride along and are ignored by the normalizer. The
// reader runs with lazy quoting because Excel exports embed bare quotes in
// formula cells (="00123"); malformed quoting is a field-level anomaly, not
// a structural failure. Errors that still surface from encoding/csv abort
// the ingestion verbatim.

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ErrEmptyCSV is returned when the document has no header row.
var ErrEmptyCSV = errors.New("empty file: no CSV header row found")

// DecodeCSV reads a CSV document into rows keyed by lowercased header name.
// Rows shorter than the header are padded with absent keys; empty rows are
// skipped. Cells and headers pass through CleanCell to strip BOM, Excel
// formula prefixes and stray quotes.
func DecodeCSV(r io.Reader) ([]CSVRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, err
	}

	columns := headerColumns(header)

	var rows []CSVRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if isEmptyRecord(record) {
			continue
		}
		rows = append(rows, rowFromRecord(columns, record))
	}

	return rows, nil
}

// headerColumns cleans and lowercases a header row for column matching.
func headerColumns(header []string) []string {
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(CleanCell(name))
	}
	return columns
}

// rowFromRecord maps one data record onto its header columns. Unnamed
// columns are dropped and short records leave keys absent rather than empty.
func rowFromRecord(columns, record []string) CSVRow {
	row := make(CSVRow, len(columns))
	for i, col := range columns {
		if col == "" || i >= len(record) {
			continue
		}
		row[col] = CleanCell(record[i])
	}
	return row
}

// NormalizeCSVRows maps decoded rows to Products, assigning synthetic ids by
// row index where the source has none.
func NormalizeCSVRows(rows []CSVRow) []Product {
	products := make([]Product, len(rows))
	for i, row := range rows {
		products[i] = FromCSVRow(row, i)
	}
	return products
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if CleanCell(cell) != "" {
			return false
		}
	}
	return true
}
