package chart

import (
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anrid/world-population/pkg/stats"
)

// WriteReport prints the world population series and the ranked countries
// of the selected year as text. Numbers are formatted for tag, e.g.
// language.English.
func WriteReport(w io.Writer, tag language.Tag, area []stats.AreaPoint, view stats.ScatterView, limit int) error {
	p := message.NewPrinter(tag)

	if _, err := p.Fprintf(w, "World Population by Year:\n\n"); err != nil {
		return err
	}
	if len(area) == 0 {
		p.Fprintln(w, "no data")
	}
	for _, a := range area {
		p.Fprintf(w, "%6s  %15.f  %6.2fBn\n", a.Label, a.TotalPopulation*1_000, a.PopulationBillions)
	}

	p.Fprintf(w, "\n\nPopulation by Country, %s:\n\n", view.Year)
	if view.Empty() {
		p.Fprintln(w, "no data")
		return nil
	}

	for i, s := range view.Points {
		if limit > 0 && i >= limit {
			p.Fprintf(w, "... %d more\n", len(view.Points)-limit)
			break
		}
		p.Fprintf(w, "%03d. %-30s  %-15s  %15.f  %9.1f/km²  %6.2f%%\n",
			i+1, s.Country, s.Region, s.Population*1_000, s.Density, s.GrowthRate)
	}

	p.Fprintf(w, "\nWorld Population      : %sBn\n", stats.FormatBillions(view.WorldPopulationBillions))
	if math.IsNaN(view.WorldAverageDensity) {
		_, err := p.Fprintln(w, "World Average Density : no data")
		return err
	}
	_, err := p.Fprintf(w, "World Average Density : %.f\n", view.WorldAverageDensity)
	return err
}
