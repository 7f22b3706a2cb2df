package stats

import (
	"bytes"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/davecgh/go-spew/spew"
)

// The header keeps the spaces around the numeric column names.
const sampleCSV = "Country,Year, Population (000s) , Population_Density , Population_Growth_Rate \n" +
	"A,2000,(100),50,1.5\n" +
	"B,2000,200,900,2.0\n" +
	"A,2001,\"1,100\",55,(0.5)\n"

func TestReadCSV(t *testing.T) {
	got, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	want := []RawRow{
		{Country: "A", Year: "2000", Population: "(100)", Density: "50", GrowthRate: "1.5"},
		{Country: "B", Year: "2000", Population: "200", Density: "900", GrowthRate: "2.0"},
		{Country: "A", Year: "2001", Population: "1,100", Density: "55", GrowthRate: "(0.5)"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadCSV:\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(want))
	}
}

func TestReadCSVColumnOrder(t *testing.T) {
	in := "\ufeff Population_Growth_Rate ,Extra,Year, Population_Density ,Country, Population (000s) \n" +
		"0.1,x,1990,10,Japan,123\n" +
		"\n"
	got, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []RawRow{{Country: "Japan", Year: "1990", Population: "123", Density: "10", GrowthRate: "0.1"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadCSV:\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(want))
	}
}

func TestReadCSVExactHeaders(t *testing.T) {
	// Header names without their surrounding spaces don't match.
	in := "Country,Year,Population (000s),Population_Density,Population_Growth_Rate\nA,2000,1,2,3\n"
	if _, err := ReadCSV(strings.NewReader(in)); !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("ReadCSV error = %v, want ErrMissingColumn", err)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("ReadCSV error = %v, want ErrNoHeader", err)
	}
}

func TestReadFileXLSX(t *testing.T) {
	f := xlsx.NewFile()
	sheet := "Sheet1"
	records := [][]string{
		datasetColumns,
		{"A", "2000", "(100)", "50", "1.5"},
		{"B", "2000", "200", "900", "2.0"},
	}
	for i, rec := range records {
		for j, v := range rec {
			cell, err := xlsx.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellStr(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile("world_population.xlsx", &buf)
	if err != nil {
		t.Fatal(err)
	}
	want := []RawRow{
		{Country: "A", Year: "2000", Population: "(100)", Density: "50", GrowthRate: "1.5"},
		{Country: "B", Year: "2000", Population: "200", Density: "900", GrowthRate: "2.0"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadFile:\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(want))
	}
}

func TestReadFileXLS(t *testing.T) {
	f, err := os.Open("testdata/world_population.xls")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := ReadFile("world_population.xls", f)
	if err != nil {
		t.Fatal(err)
	}
	want := []RawRow{
		{Country: "A", Year: "2000", Population: "(100)", Density: "50", GrowthRate: "1.5"},
		{Country: "B", Year: "2000", Population: "200", Density: "900", GrowthRate: "2.0"},
		{Country: "A", Year: "2001", Population: "1,100", Density: "55", GrowthRate: "(0.5)"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadFile:\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(want))
	}

	rows, err := ParseRows(got)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Population != -100 || rows[2].Population != 1100 || rows[2].GrowthRate != -0.5 {
		t.Errorf("parsed rows = %+v", rows)
	}
}
