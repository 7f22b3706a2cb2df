package stats

import "sort"

// FilterAndRank returns the rows recorded for year, largest population
// first. Years are compared as exact strings. Rows with equal population
// keep their input order.
func FilterAndRank(rows []ParsedRow, year string) []ParsedRow {
	ranked := make([]ParsedRow, 0)
	for _, r := range rows {
		if r.Year == year {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Population > ranked[j].Population
	})

	return ranked
}
