// Package chart renders the chart-ready data of a stats.Dashboard as
// interactive HTML (go-echarts), SVG (go-gg), text reports and XLSX
// workbooks.
package chart

import "github.com/anrid/world-population/pkg/stats"

// DefaultSize is used when a chart is asked to render into a zero-sized
// container.
var DefaultSize = stats.Size{Width: 900, Height: 500}

func sizeOrDefault(s stats.Size) stats.Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

// Recorder is a stats.Renderer that keeps the latest chart data so it can
// be rendered on demand.
type Recorder struct {
	Area        []stats.AreaPoint
	AreaSize    stats.Size
	Scatter     stats.ScatterView
	ScatterSize stats.Size

	// Renders counts calls to RenderArea and RenderScatter.
	Renders int
}

func (r *Recorder) RenderArea(points []stats.AreaPoint, size stats.Size) {
	r.Area = points
	r.AreaSize = size
	r.Renders++
}

func (r *Recorder) RenderScatter(view stats.ScatterView, size stats.Size) {
	r.Scatter = view
	r.ScatterSize = size
	r.Renders++
}
