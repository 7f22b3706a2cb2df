package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	svg "github.com/ajstarks/svgo"

	"github.com/anrid/world-population/pkg/stats"
)

// WriteAreaSVG plots the world population series as an SVG area chart.
func WriteAreaSVG(w io.Writer, points []stats.AreaPoint, size stats.Size) error {
	size = sizeOrDefault(size)
	if len(points) == 0 {
		return WriteMessageSVG(w, "no data", size)
	}

	years := make([]float64, 0, len(points))
	for _, p := range points {
		years = append(years, float64(p.Year))
	}

	// Always show Y=0.
	y := gg.NewLinearScaler().Include(0)
	if allZero(points) {
		y.Include(1)
	}

	plot := gg.NewPlot(table.TableFromStructs(points))
	plot.SetScale("y", y)
	if x := flatScale(years); x != nil {
		plot.SetScale("x", x)
	}

	plot.Add(gg.LayerArea{
		X:     "Year",
		Upper: "PopulationBillions",
		Fill:  plot.Const(color.RGBA{0xff, 0xdd, 0xb5, 0xff}),
	})
	plot.Add(gg.LayerLines{
		X:     "Year",
		Y:     "PopulationBillions",
		Color: plot.Const(color.RGBA{0xff, 0x9c, 0x05, 0xff}),
	})
	plot.Add(
		gg.AxisLabel("x", "Year"),
		gg.AxisLabel("y", "Population (Bn)"),
		gg.Title("World Population"),
	)

	return plot.WriteSVG(w, size.Width, size.Height)
}

// WriteScatterSVG plots population density against growth rate for the
// year of view, colored by region and sized by population.
func WriteScatterSVG(w io.Writer, view stats.ScatterView, size stats.Size) error {
	size = sizeOrDefault(size)
	if view.Empty() {
		return WriteMessageSVG(w, "no data for "+view.Year, size)
	}

	var density, growth, population []float64
	for _, p := range view.Points {
		density = append(density, p.Density)
		growth = append(growth, p.GrowthRate)
		population = append(population, p.Population)
	}

	plot := gg.NewPlot(table.TableFromStructs(view.Points))
	for aes, vs := range map[string][]float64{"x": density, "y": growth, "size": population} {
		if sc := flatScale(vs); sc != nil {
			plot.SetScale(aes, sc)
		}
	}
	plot.Add(gg.LayerPoints{
		X:     "Density",
		Y:     "GrowthRate",
		Color: "Region",
		Size:  "Population",
	})
	plot.Add(
		gg.AxisLabel("x", "Population Density"),
		gg.AxisLabel("y", "Population Growth (%)"),
		gg.Title(fmt.Sprintf("%s: world population %sBn, world avg density %s",
			view.Year, stats.FormatBillions(view.WorldPopulationBillions), formatDensity(view.WorldAverageDensity))),
	)

	return plot.WriteSVG(w, size.Width, size.Height)
}

// flatScale returns a linear scale padded around vs when all of vs are
// equal, since a scale over a single value has no ticks. It returns nil
// when vs spans a range or is empty.
func flatScale(vs []float64) gg.ContinuousScaler {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo > hi || lo < hi {
		return nil
	}
	pad := math.Max(math.Abs(lo)*0.1, 1)
	return gg.NewLinearScaler().Include(lo - pad).Include(hi + pad)
}

func allZero(points []stats.AreaPoint) bool {
	for _, p := range points {
		if p.PopulationBillions != 0 {
			return false
		}
	}
	return true
}

// WriteMessageSVG writes an SVG containing only msg, centered. It stands
// in for a chart while there's nothing to plot.
func WriteMessageSVG(w io.Writer, msg string, size stats.Size) error {
	size = sizeOrDefault(size)

	canvas := svg.New(w)
	canvas.Start(size.Width, size.Height)
	canvas.Rect(0, 0, size.Width, size.Height, "fill:#fafafa;stroke:#ddd")
	canvas.Text(size.Width/2, size.Height/2, msg, "text-anchor:middle;font-family:sans-serif;font-size:16px;fill:#666")
	canvas.End()
	return nil
}
