package stats

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNumericField is returned when a numeric column can't be parsed.
var ErrNumericField = errors.New("stats: invalid numeric field")

var numberReplacer = strings.NewReplacer("(", "", ")", "", ",", "")

// decimalRegexp matches plain decimal numbers with an optional exponent.
// strconv.ParseFloat also accepts "inf", "NaN" and hex floats.
var decimalRegexp = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts a raw numeric field into a float64.
//
// Thousands separators are dropped and a value wrapped in parentheses is
// negative, so "1,234" is 1234 and "(56)" is -56. An empty field is 0.
// Anything else that isn't a decimal number yields NaN.
func ParseNumber(raw string) float64 {
	v := strings.TrimSpace(raw)
	negative := strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")")

	v = strings.TrimSpace(numberReplacer.Replace(v))
	if v == "" {
		return 0
	}

	if !decimalRegexp.MatchString(v) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	if negative {
		f = -f
	}
	return f
}

// ParseRow converts the numeric fields of r. Fields that don't parse are
// reported as ErrNumericField.
func ParseRow(r RawRow) (ParsedRow, error) {
	p := ParsedRow{
		Country:    r.Country,
		Year:       r.Year,
		Population: ParseNumber(r.Population),
		Density:    ParseNumber(r.Density),
		GrowthRate: ParseNumber(r.GrowthRate),
	}

	for _, f := range []struct {
		column string
		raw    string
		value  float64
	}{
		{ColumnPopulation, r.Population, p.Population},
		{ColumnDensity, r.Density, p.Density},
		{ColumnGrowthRate, r.GrowthRate, p.GrowthRate},
	} {
		if math.IsNaN(f.value) {
			return ParsedRow{}, fmt.Errorf("%w: %q=%q (%s %s)", ErrNumericField, f.column, f.raw, r.Country, r.Year)
		}
	}

	return p, nil
}

// ParseRows parses every row, stopping at the first invalid one.
func ParseRows(rows []RawRow) ([]ParsedRow, error) {
	parsed := make([]ParsedRow, 0, len(rows))
	for i, r := range rows {
		p, err := ParseRow(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		parsed = append(parsed, p)
	}
	return parsed, nil
}
