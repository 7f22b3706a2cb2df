package stats

// Column headers of the world population dataset. The surrounding spaces
// are part of the header names.
const (
	ColumnCountry    = "Country"
	ColumnYear       = "Year"
	ColumnPopulation = " Population (000s) "
	ColumnDensity    = " Population_Density "
	ColumnGrowthRate = " Population_Growth_Rate "
)

// RawRow is one (country, year) observation exactly as read from the
// dataset. Numeric fields are untrusted text until parsed.
type RawRow struct {
	Country    string
	Year       string
	Population string
	Density    string
	GrowthRate string
}

// ParsedRow is a RawRow with its numeric fields converted.
// Population is recorded in thousands.
type ParsedRow struct {
	Country    string
	Year       string
	Population float64
	Density    float64
	GrowthRate float64
}

// YearSeriesPoint is the total population of all countries for one year.
type YearSeriesPoint struct {
	Year            string
	TotalPopulation float64
}

// AreaPoint is one point of the world population area chart.
type AreaPoint struct {
	Year               int
	Label              string
	TotalPopulation    float64
	PopulationBillions float64
}

// ScatterPoint is one bubble of the density vs. growth rate chart.
type ScatterPoint struct {
	Country            string
	Year               string
	Region             string
	Population         float64
	Density            float64
	GrowthRate         float64
	PopulationBillions float64
}

// ScatterView is everything the scatter chart needs for one selected year.
// WorldAverageDensity is NaN when no row qualifies for the average.
type ScatterView struct {
	Year                    string
	Points                  []ScatterPoint
	WorldPopulationBillions float64
	WorldAverageDensity     float64
}

// Empty reports whether the view has nothing to plot.
func (v ScatterView) Empty() bool {
	return len(v.Points) == 0
}

// Size is a chart container size in pixels.
type Size struct {
	Width  int
	Height int
}
