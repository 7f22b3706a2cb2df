package chart

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/anrid/world-population/pkg/stats"
)

const (
	lineColor = "#FF9C05"
	areaColor = "#ffddb5"
)

// Bubble sizes in pixels for the smallest and largest population.
const (
	minBubble = 6
	maxBubble = 20
)

func px(n int) string {
	return fmt.Sprintf("%dpx", n)
}

// AreaChart builds the world population chart.
func AreaChart(points []stats.AreaPoint, size stats.Size) *charts.Line {
	size = sizeOrDefault(size)

	title := opts.Title{Title: "World Population"}
	if len(points) == 0 {
		title.Subtitle = "no data"
	} else {
		first, last := points[0], points[len(points)-1]
		title.Subtitle = fmt.Sprintf("%s: %sBn, %s: %sBn",
			first.Label, stats.FormatBillions(first.PopulationBillions),
			last.Label, stats.FormatBillions(last.PopulationBillions))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  px(size.Width),
			Height: px(size.Height),
		}),
		charts.WithTitleOpts(title),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Year",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Population (Bn)",
			Min:  0,
		}),
	)

	labels := make([]string, 0, len(points))
	data := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Label)
		data = append(data, opts.LineData{Value: round2(p.PopulationBillions)})
	}

	line.SetXAxis(labels).AddSeries("World", data,
		charts.WithLineStyleOpts(opts.LineStyle{Color: lineColor}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: areaColor}),
	)
	return line
}

// ScatterChart builds the density vs. growth rate chart of one year with
// one series per region. The world average density is drawn as a
// vertical mark line.
func ScatterChart(view stats.ScatterView, size stats.Size) *charts.Scatter {
	size = sizeOrDefault(size)

	title := opts.Title{Title: "Population Density vs. Growth " + view.Year}
	if view.Empty() {
		title.Subtitle = "no data"
	} else {
		title.Subtitle = fmt.Sprintf("world population: %sBn, world avg density: %s",
			stats.FormatBillions(view.WorldPopulationBillions), formatDensity(view.WorldAverageDensity))
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  px(size.Width),
			Height: px(size.Height),
		}),
		charts.WithTitleOpts(title),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Right:  "10",
			Orient: "vertical",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Population Density",
			Min:  0,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Population Growth (%)",
		}),
	)

	bubble := bubbleScale(view.Points)
	byRegion := make(map[string][]opts.ScatterData)
	for _, p := range view.Points {
		byRegion[p.Region] = append(byRegion[p.Region], opts.ScatterData{
			Name:       p.Country,
			Value:      []interface{}{p.Density, p.GrowthRate, p.Population},
			SymbolSize: bubble(p.Population),
		})
	}

	regions := make([]string, 0, len(byRegion))
	for r := range byRegion {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	for i, r := range regions {
		var seriesOpts []charts.SeriesOpts
		if i == 0 && !math.IsNaN(view.WorldAverageDensity) {
			seriesOpts = append(seriesOpts, charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
				Name:  "world avg",
				XAxis: round2(view.WorldAverageDensity),
			}))
		}
		sc.AddSeries(r, byRegion[r], seriesOpts...)
	}
	return sc
}

// WritePage renders both charts as one HTML page.
func WritePage(w io.Writer, area []stats.AreaPoint, areaSize stats.Size, view stats.ScatterView, scatterSize stats.Size) error {
	page := components.NewPage()
	page.PageTitle = "World Population Dashboard"
	page.AddCharts(
		AreaChart(area, areaSize),
		ScatterChart(view, scatterSize),
	)
	return page.Render(w)
}

// bubbleScale maps populations linearly onto bubble sizes between
// minBubble and maxBubble.
func bubbleScale(points []stats.ScatterPoint) func(float64) int {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Population)
		hi = math.Max(hi, p.Population)
	}
	return func(pop float64) int {
		if !(hi > lo) {
			return minBubble
		}
		return minBubble + int(math.Round((pop-lo)/(hi-lo)*(maxBubble-minBubble)))
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatDensity(v float64) string {
	if math.IsNaN(v) {
		return "no data"
	}
	return fmt.Sprintf("%.0f", v)
}
