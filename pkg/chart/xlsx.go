package chart

import (
	"io"
	"math"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"

	"github.com/anrid/world-population/pkg/stats"
)

const (
	worldSheet = "World"
	dataSheet  = "Countries"
)

// WriteXLSX exports the world population series and the selected year's
// ranked countries as a workbook with one sheet each.
func WriteXLSX(w io.Writer, area []stats.AreaPoint, view stats.ScatterView) error {
	f := xlsx.NewFile()
	f.SetSheetName("Sheet1", worldSheet)
	f.NewSheet(dataSheet)

	worldRows := [][]interface{}{{"Year", "Total Population (000s)", "Population (Bn)"}}
	for _, a := range area {
		worldRows = append(worldRows, []interface{}{a.Year, a.TotalPopulation, a.PopulationBillions})
	}
	if err := setRows(f, worldSheet, worldRows); err != nil {
		return err
	}

	dataRows := [][]interface{}{{
		stats.ColumnCountry, stats.ColumnYear, "Region",
		stats.ColumnPopulation, stats.ColumnDensity, stats.ColumnGrowthRate,
	}}
	for _, p := range view.Points {
		dataRows = append(dataRows, []interface{}{
			p.Country, p.Year, p.Region, p.Population, p.Density, p.GrowthRate,
		})
	}
	dataRows = append(dataRows,
		[]interface{}{},
		[]interface{}{"World Population (Bn)", view.WorldPopulationBillions},
	)
	if !math.IsNaN(view.WorldAverageDensity) {
		dataRows = append(dataRows, []interface{}{"World Average Density", view.WorldAverageDensity})
	} else {
		dataRows = append(dataRows, []interface{}{"World Average Density", "no data"})
	}
	if err := setRows(f, dataSheet, dataRows); err != nil {
		return err
	}

	return f.Write(w)
}

func setRows(f *xlsx.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := xlsx.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
