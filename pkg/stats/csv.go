package stats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrMissingColumn is returned when the header lacks a dataset column.
	ErrMissingColumn = errors.New("stats: missing column")
	// ErrNoHeader is returned for a dataset without a header row.
	ErrNoHeader = errors.New("stats: dataset has no header row")
)

var datasetColumns = []string{
	ColumnCountry,
	ColumnYear,
	ColumnPopulation,
	ColumnDensity,
	ColumnGrowthRate,
}

// ReadCSV reads the dataset rows of a CSV file. Header names are matched
// exactly, spaces included; column order doesn't matter and unknown columns
// are ignored.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rowsFromRecords(records)
}

// rowsFromRecords maps a header row followed by data rows onto RawRows.
// Blank rows are skipped.
func rowsFromRecords(records [][]string) ([]RawRow, error) {
	var header []string
	for len(records) > 0 && header == nil {
		if !blank(records[0]) {
			header = records[0]
		}
		records = records[1:]
	}
	if header == nil {
		return nil, ErrNoHeader
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	field := func(rec []string, column string) string {
		i := index[column]
		if i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	rows := make([]RawRow, 0, len(records))
	for _, rec := range records {
		if blank(rec) {
			continue
		}
		rows = append(rows, RawRow{
			Country:    field(rec, ColumnCountry),
			Year:       field(rec, ColumnYear),
			Population: field(rec, ColumnPopulation),
			Density:    field(rec, ColumnDensity),
			GrowthRate: field(rec, ColumnGrowthRate),
		})
	}
	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	for _, c := range datasetColumns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}
	return index, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
