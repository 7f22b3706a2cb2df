package stats

import (
	"context"
	"errors"
	"fmt"
	"log"
)

var (
	// ErrNotReady is returned by SelectYear before the dataset is loaded.
	ErrNotReady = errors.New("stats: dashboard is not ready")
	// ErrLoadInProgress is returned when a second load is started while
	// one is outstanding.
	ErrLoadInProgress = errors.New("stats: dataset load already in progress")
	// ErrAlreadyLoaded is returned when loading into a ready dashboard.
	ErrAlreadyLoaded = errors.New("stats: dataset already loaded")
)

// State is the lifecycle state of a Dashboard.
type State int

const (
	Loading State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Renderer draws the chart-ready data of a Dashboard.
type Renderer interface {
	RenderArea(points []AreaPoint, size Size)
	RenderScatter(view ScatterView, size Size)
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithViewport sets the function reporting the chart container size.
func WithViewport(viewport func() Size) Option {
	return func(d *Dashboard) {
		d.viewport = viewport
	}
}

// WithRegions sets the lookup used to color scatter points.
func WithRegions(regions RegionLookup) Option {
	return func(d *Dashboard) {
		d.regions = regions
	}
}

// WithDensityThreshold sets the density below which countries count
// towards the world average density.
func WithDensityThreshold(threshold float64) Option {
	return func(d *Dashboard) {
		d.threshold = threshold
	}
}

// Dashboard holds the loaded dataset and the selected year, and hands
// chart-ready data to its Renderer whenever either changes.
//
// A Dashboard is not safe for concurrent use; callers deliver load and
// selection events from one goroutine at a time.
type Dashboard struct {
	renderer  Renderer
	viewport  func() Size
	regions   RegionLookup
	threshold float64

	state   State
	loading bool
	err     error

	rows      []ParsedRow
	years     []string
	countries []string
	selected  string
	area      []AreaPoint
	scatter   ScatterView
}

func NewDashboard(r Renderer, opts ...Option) *Dashboard {
	d := &Dashboard{
		renderer:  r,
		viewport:  func() Size { return Size{} },
		regions:   CountryRegions{},
		threshold: DefaultDensityThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load fetches the dataset from src and hands it to OnDataLoaded. On
// failure the error is logged and kept in Err, and the dashboard stays in
// Loading.
func (d *Dashboard) Load(ctx context.Context, src Source) error {
	if err := d.StartLoad(); err != nil {
		return err
	}

	raw, err := Fetch(ctx, src)
	if err != nil {
		return d.LoadFailed(err)
	}
	return d.OnDataLoaded(raw)
}

// StartLoad marks a dataset fetch as outstanding until OnDataLoaded or
// LoadFailed is called. Callers that fetch on their own call it first.
func (d *Dashboard) StartLoad() error {
	if d.state == Ready {
		return ErrAlreadyLoaded
	}
	if d.loading {
		return ErrLoadInProgress
	}
	d.loading = true
	return nil
}

// LoadFailed records a failed dataset fetch. The dashboard stays in
// Loading and reports err from Err.
func (d *Dashboard) LoadFailed(err error) error {
	log.Printf("Could not load dataset: %v", err)
	d.loading = false
	d.err = err
	return err
}

// OnDataLoaded parses raw, derives the distinct years and countries,
// selects the last year and renders both charts.
func (d *Dashboard) OnDataLoaded(raw []RawRow) error {
	if d.state == Ready {
		return ErrAlreadyLoaded
	}
	d.loading = false

	rows, err := ParseRows(raw)
	if err != nil {
		return d.LoadFailed(err)
	}
	area, err := ToAreaSeries(AggregateByYear(rows))
	if err != nil {
		return d.LoadFailed(err)
	}

	d.rows = rows
	d.years = UniqueYears(rows)
	d.countries = UniqueCountries(rows)
	d.area = area
	d.selected = ""
	if len(d.years) > 0 {
		d.selected = d.years[len(d.years)-1]
	}
	d.scatter = d.scatterView(d.selected)
	d.state = Ready
	d.err = nil

	size := d.viewport()
	d.renderer.RenderArea(d.area, size)
	d.renderer.RenderScatter(d.scatter, size)
	return nil
}

// SelectYear makes year the selected year and renders the scatter chart
// for it. A year without rows renders an empty chart.
func (d *Dashboard) SelectYear(year string) error {
	if d.state != Ready {
		return ErrNotReady
	}

	d.selected = year
	d.scatter = d.scatterView(year)
	d.renderer.RenderScatter(d.scatter, d.viewport())
	return nil
}

func (d *Dashboard) scatterView(year string) ScatterView {
	ranked := FilterAndRank(d.rows, year)
	return ScatterView{
		Year:                    year,
		Points:                  ToScatterPoints(ranked, d.regions),
		WorldPopulationBillions: TotalPopulationBillions(ranked),
		WorldAverageDensity:     AverageDensityBelow(ranked, d.threshold),
	}
}

func (d *Dashboard) State() State { return d.state }

// Err returns the last load failure, if any.
func (d *Dashboard) Err() error { return d.err }

func (d *Dashboard) Years() []string           { return d.years }
func (d *Dashboard) Countries() []string       { return d.countries }
func (d *Dashboard) SelectedYear() string      { return d.selected }
func (d *Dashboard) Area() []AreaPoint         { return d.area }
func (d *Dashboard) Scatter() ScatterView      { return d.scatter }
func (d *Dashboard) Rows() []ParsedRow         { return d.rows }
func (d *Dashboard) Viewport() Size            { return d.viewport() }
func (d *Dashboard) DensityThreshold() float64 { return d.threshold }
