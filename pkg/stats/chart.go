package stats

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrYearLabel is returned when a year label isn't a plain integer year.
var ErrYearLabel = errors.New("stats: year label is not an integer")

// ToAreaSeries turns the per-year totals into area chart points sorted by
// year. Year labels must be integers; the original label is kept.
func ToAreaSeries(points []YearSeriesPoint) ([]AreaPoint, error) {
	area := make([]AreaPoint, 0, len(points))
	for _, p := range points {
		year, err := strconv.Atoi(strings.TrimSpace(p.Year))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrYearLabel, p.Year)
		}
		area = append(area, AreaPoint{
			Year:               year,
			Label:              p.Year,
			TotalPopulation:    p.TotalPopulation,
			PopulationBillions: p.TotalPopulation / thousandsPerBillion,
		})
	}

	sort.SliceStable(area, func(i, j int) bool {
		return area[i].Year < area[j].Year
	})

	return area, nil
}

// ToScatterPoints turns rows into scatter chart points, tagging each with
// the region regions reports for its country. A nil lookup tags every
// point with UnknownRegion.
func ToScatterPoints(rows []ParsedRow, regions RegionLookup) []ScatterPoint {
	if regions == nil {
		regions = StaticRegions(nil)
	}

	points := make([]ScatterPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, ScatterPoint{
			Country:            r.Country,
			Year:               r.Year,
			Region:             regions.Region(r.Country),
			Population:         r.Population,
			Density:            r.Density,
			GrowthRate:         r.GrowthRate,
			PopulationBillions: r.Population / thousandsPerBillion,
		})
	}
	return points
}
