package stats

// AggregateByYear sums the population of all rows sharing a year.
// Points come out in the order their year is first seen; they are not
// sorted.
func AggregateByYear(rows []ParsedRow) []YearSeriesPoint {
	points := make([]YearSeriesPoint, 0)
	index := make(map[string]int)

	for _, r := range rows {
		i, ok := index[r.Year]
		if !ok {
			i = len(points)
			index[r.Year] = i
			points = append(points, YearSeriesPoint{Year: r.Year})
		}
		points[i].TotalPopulation += r.Population
	}

	return points
}

// UniqueYears returns the distinct years in first-seen order.
func UniqueYears(rows []ParsedRow) []string {
	return unique(rows, func(r ParsedRow) string { return r.Year })
}

// UniqueCountries returns the distinct countries in first-seen order.
func UniqueCountries(rows []ParsedRow) []string {
	return unique(rows, func(r ParsedRow) string { return r.Country })
}

func unique(rows []ParsedRow, key func(ParsedRow) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range rows {
		k := key(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		values = append(values, k)
	}
	return values
}
