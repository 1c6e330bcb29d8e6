package catalog

// xlsx.go decodes XLSX workbooks into the same header-keyed rows as CSV, so
// spreadsheet ingestion reuses the CSV normalizer unchanged, including its
// available=false default.

import (
	"bytes"
	"errors"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook is returned when the first sheet carries no header row.
var ErrEmptyWorkbook = errors.New("empty file: no data rows in first sheet")

// DecodeXLSX reads the first sheet of an XLSX workbook. The first row is the
// header, matched by lowercased name like the CSV path.
func DecodeXLSX(data []byte) ([]CSVRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyWorkbook
	}

	columns := headerColumns(raw[0])

	var rows []CSVRow
	for _, record := range raw[1:] {
		if isEmptyRecord(record) {
			continue
		}
		rows = append(rows, rowFromRecord(columns, record))
	}

	return rows, nil
}
