package stats

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

// ReadFile reads dataset rows from the content of a file called name,
// choosing the decoder from its suffix: .xlsx, .xls or CSV for anything
// else.
func ReadFile(name string, r io.Reader) ([]RawRow, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		return ReadXLSX(r)
	case strings.HasSuffix(lower, ".xls"):
		return ReadXLS(r)
	default:
		log.Printf("Loading CSV data: %s", name)
		return ReadCSV(r)
	}
}

// ReadXLSX reads dataset rows from the first sheet of an XLSX workbook.
func ReadXLSX(r io.Reader) ([]RawRow, error) {
	var records [][]string
	err := extractDataFromXLSX(r, func(row []string) {
		records = append(records, row)
	})
	if err != nil {
		return nil, err
	}
	return rowsFromRecords(records)
}

// ReadXLS reads dataset rows from the first sheet of a legacy XLS workbook.
func ReadXLS(r io.Reader) ([]RawRow, error) {
	var records [][]string
	err := extractDataFromXLS(r, func(row []string) {
		records = append(records, row)
	})
	if err != nil {
		return nil, err
	}
	return rowsFromRecords(records)
}

func extractDataFromXLS(r io.Reader, handler func(r []string)) error {
	rawData, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read xls: %w", err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(rawData), "utf-8")
	if err != nil {
		return fmt.Errorf("open xls: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return ErrNoHeader
	}
	log.Printf("Loading XLS data: sheet %q, %d rows", sheet.Name, sheet.MaxRow)

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		handler(cols)
	}
	return nil
}

func extractDataFromXLSX(r io.Reader, handler func(r []string)) error {
	wb, err := xlsx.OpenReader(r)
	if err != nil {
		return fmt.Errorf("open xlsx: %w", err)
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return ErrNoHeader
	}
	defaultSheet := sheets[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return fmt.Errorf("rows of sheet %q: %w", defaultSheet, err)
	}
	log.Printf("Loading XLSX data: sheet %q, %d rows", defaultSheet, len(rows))

	for _, row := range rows {
		handler(row)
	}
	return nil
}
