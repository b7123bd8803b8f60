package importer

import (
	"fmt"
	"io"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// XLSX lays out one worksheet. The sheet's first row is the header row, so
// spreadsheet cell A1 lands at grid cell (1, 1).
func XLSX(r io.ReaderAt, size int64, opts Options) (*Result, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: reading workbook: %v", ErrInvalidImport, err)
	}

	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidImport)
	}
	sheet := sheets[0]
	if opts.Sheet != "" {
		found := false
		for _, s := range sheets {
			if s.Name() == opts.Sheet {
				sheet, found = s, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: sheet %q not found", ErrInvalidImport, opts.Sheet)
		}
	}

	b := newBuilder(FormatXLSX, opts.Limit)
	for _, row := range sheet.Rows() {
		rowNum := int(row.RowNumber())
		if rowNum < 1 {
			continue
		}
		if rowNum > 1 && b.full(rowNum-2) {
			break
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			col := int(reference.ColumnToIndex(colName)) + 1
			value := cell.GetFormattedValue()
			if rowNum == 1 {
				b.res.Headers = appendHeader(b.res.Headers, col, value)
			}
			b.set(col, rowNum, value)
		}
	}
	return b.result(), nil
}

// SheetNames lists the worksheets of a workbook.
func SheetNames(r io.ReaderAt, size int64) ([]string, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: reading workbook: %v", ErrInvalidImport, err)
	}
	var names []string
	for _, s := range wb.Sheets() {
		names = append(names, s.Name())
	}
	return names, nil
}

// appendHeader places name at the 1-based column col, padding gaps.
func appendHeader(headers []string, col int, name string) []string {
	for len(headers) < col {
		headers = append(headers, "")
	}
	headers[col-1] = name
	return headers
}
