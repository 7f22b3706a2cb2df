package web

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	ready        prometheus.Gauge
	rows         prometheus.Gauge
	selections   prometheus.Counter
	loadFailures prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "worldpop_dashboard_ready",
			Help: "1 once the dataset is loaded and the dashboard is ready.",
		}),
		rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "worldpop_rows_loaded",
			Help: "Number of dataset rows loaded.",
		}),
		selections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "worldpop_year_selections_total",
			Help: "Number of year selections.",
		}),
		loadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "worldpop_load_failures_total",
			Help: "Number of failed dataset loads.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ready, m.rows, m.selections, m.loadFailures)
	}
	return m
}
