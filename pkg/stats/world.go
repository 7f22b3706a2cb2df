package stats

import (
	"math"
	"strconv"
)

// DefaultDensityThreshold excludes city states and other outliers from the
// world average density.
const DefaultDensityThreshold = 800

// Population is recorded in thousands, so a million of them is a billion.
const thousandsPerBillion = 1_000_000

// TotalPopulationBillions sums the population of rows in billions.
func TotalPopulationBillions(rows []ParsedRow) float64 {
	var total float64
	for _, r := range rows {
		total += r.Population
	}
	return total / thousandsPerBillion
}

// AverageDensityBelow averages the density of the rows whose density is
// strictly below threshold. It returns NaN when no row qualifies.
func AverageDensityBelow(rows []ParsedRow, threshold float64) float64 {
	var sum float64
	var n int
	for _, r := range rows {
		if r.Density < threshold {
			sum += r.Density
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// FormatBillions renders a billions figure with two decimals.
func FormatBillions(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
