package stats

import (
	"errors"
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1,234", 1234},
		{"(56)", -56},
		{"", 0},
		{"  78 ", 78},
		{"1,234,567.5", 1234567.5},
		{" (1,000) ", -1000},
		{"-3.25", -3.25},
		{"0.5", 0.5},
		{"()", 0},
		{"   ", 0},
		{"1e3", 1000},
		{".5", 0.5},
		{"+7", 7},
	}
	for _, tt := range tests {
		if got := ParseNumber(tt.raw); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseNumberNaN(t *testing.T) {
	for _, raw := range []string{
		"abc", "12a", "1.2.3", "n/a", "--",
		"inf", "+Inf", "-infinity", "NaN", "0x1p4", "0x10", "1_000", "1e999",
	} {
		if got := ParseNumber(raw); !math.IsNaN(got) {
			t.Errorf("ParseNumber(%q) = %v, want NaN", raw, got)
		}
	}
}

func TestParseRow(t *testing.T) {
	got, err := ParseRow(RawRow{
		Country:    "Japan",
		Year:       "2020",
		Population: "125,836",
		Density:    " 345 ",
		GrowthRate: "(0.3)",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := ParsedRow{Country: "Japan", Year: "2020", Population: 125836, Density: 345, GrowthRate: -0.3}
	if got != want {
		t.Errorf("ParseRow = %+v, want %+v", got, want)
	}
}

func TestParseRowInvalid(t *testing.T) {
	rows := []RawRow{
		{Country: "X", Year: "2000", Population: "1", Density: "dense", GrowthRate: "1"},
		{Country: "X", Year: "2000", Population: "inf", Density: "1", GrowthRate: "1"},
		{Country: "X", Year: "2000", Population: "1", Density: "Infinity", GrowthRate: "1"},
		{Country: "X", Year: "2000", Population: "0x1p4", Density: "1", GrowthRate: "1"},
		{Country: "X", Year: "2000", Population: "1", Density: "1", GrowthRate: "(NaN)"},
	}
	for _, r := range rows {
		if _, err := ParseRow(r); !errors.Is(err, ErrNumericField) {
			t.Errorf("ParseRow(%+v) error = %v, want ErrNumericField", r, err)
		}
	}
}

func TestParseRows(t *testing.T) {
	rows := []RawRow{
		{Country: "A", Year: "2000", Population: "1", Density: "2", GrowthRate: "3"},
		{Country: "B", Year: "2000", Population: "x", Density: "2", GrowthRate: "3"},
	}
	if _, err := ParseRows(rows); !errors.Is(err, ErrNumericField) {
		t.Fatalf("ParseRows error = %v, want ErrNumericField", err)
	}

	parsed, err := ParseRows(rows[:1])
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed) != 1 || parsed[0].Population != 1 || parsed[0].GrowthRate != 3 {
		t.Errorf("ParseRows = %+v", parsed)
	}
}
