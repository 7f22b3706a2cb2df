package stats

import (
	"math"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func row(country, year string, pop, density, growth float64) ParsedRow {
	return ParsedRow{Country: country, Year: year, Population: pop, Density: density, GrowthRate: growth}
}

func TestAggregateByYear(t *testing.T) {
	if got := AggregateByYear(nil); got == nil || len(got) != 0 {
		t.Errorf("AggregateByYear(nil) = %#v, want empty", got)
	}

	rows := []ParsedRow{
		row("A", "2000", 10, 0, 0),
		row("B", "2000", 5, 0, 0),
		row("A", "2001", 7, 0, 0),
	}
	want := []YearSeriesPoint{
		{Year: "2000", TotalPopulation: 15},
		{Year: "2001", TotalPopulation: 7},
	}
	if got := AggregateByYear(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("AggregateByYear:\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(want))
	}
}

func TestAggregateByYearFirstSeenOrder(t *testing.T) {
	rows := []ParsedRow{
		row("A", "2010", 1, 0, 0),
		row("A", "1990", 2, 0, 0),
		row("B", "2010", 3, 0, 0),
		row("A", "2000", 4, 0, 0),
	}
	var years []string
	for _, p := range AggregateByYear(rows) {
		years = append(years, p.Year)
	}
	if want := []string{"2010", "1990", "2000"}; !reflect.DeepEqual(years, want) {
		t.Errorf("years = %v, want %v", years, want)
	}
}

func TestUniqueYearsAndCountries(t *testing.T) {
	rows := []ParsedRow{
		row("Japan", "2000", 1, 0, 0),
		row("India", "2000", 1, 0, 0),
		row("Japan", "2001", 1, 0, 0),
	}
	if got, want := UniqueYears(rows), []string{"2000", "2001"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueYears = %v, want %v", got, want)
	}
	if got, want := UniqueCountries(rows), []string{"Japan", "India"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueCountries = %v, want %v", got, want)
	}
}

func TestFilterAndRank(t *testing.T) {
	rows := []ParsedRow{
		row("A", "2000", 5, 0, 0),
		row("B", "2000", 10, 0, 0),
		row("C", "2001", 3, 0, 0),
	}
	got := FilterAndRank(rows, "2000")
	want := []ParsedRow{rows[1], rows[0]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterAndRank:\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(want))
	}

	// The input must not be reordered.
	if rows[0].Country != "A" || rows[1].Country != "B" {
		t.Errorf("FilterAndRank modified its input: %+v", rows)
	}
}

func TestFilterAndRankStable(t *testing.T) {
	rows := []ParsedRow{
		row("A", "2000", 5, 0, 0),
		row("B", "2000", 9, 0, 0),
		row("C", "2000", 5, 0, 0),
		row("D", "2000", 5, 0, 0),
	}
	var got []string
	for _, r := range FilterAndRank(rows, "2000") {
		got = append(got, r.Country)
	}
	if want := []string{"B", "A", "C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestFilterAndRankExactYear(t *testing.T) {
	rows := []ParsedRow{row("A", "2000", 5, 0, 0)}
	for _, year := range []string{"2000.0", " 2000", "00"} {
		if got := FilterAndRank(rows, year); len(got) != 0 {
			t.Errorf("FilterAndRank(%q) = %+v, want empty", year, got)
		}
	}
}

func TestTotalPopulationBillions(t *testing.T) {
	rows := []ParsedRow{
		row("A", "2000", 1_000_000, 0, 0),
		row("B", "2000", 2_000_000, 0, 0),
	}
	got := TotalPopulationBillions(rows)
	if got != 3 {
		t.Errorf("TotalPopulationBillions = %v, want 3", got)
	}
	if s := FormatBillions(got); s != "3.00" {
		t.Errorf("FormatBillions = %q, want 3.00", s)
	}
	if got := TotalPopulationBillions(nil); got != 0 {
		t.Errorf("TotalPopulationBillions(nil) = %v, want 0", got)
	}
}

func TestAverageDensityBelow(t *testing.T) {
	if got := AverageDensityBelow([]ParsedRow{row("A", "2000", 0, 900, 0)}, 800); !math.IsNaN(got) {
		t.Errorf("AverageDensityBelow = %v, want NaN", got)
	}
	if got := AverageDensityBelow(nil, DefaultDensityThreshold); !math.IsNaN(got) {
		t.Errorf("AverageDensityBelow(nil) = %v, want NaN", got)
	}

	rows := []ParsedRow{
		row("A", "2000", 0, 100, 0),
		row("B", "2000", 0, 300, 0),
		row("C", "2000", 0, 800, 0),
		row("D", "2000", 0, 20000, 0),
	}
	if got := AverageDensityBelow(rows, 800); got != 200 {
		t.Errorf("AverageDensityBelow = %v, want 200", got)
	}
}
