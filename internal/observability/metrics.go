package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the API.
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec // labels: path, status
	DatasetRecords    prometheus.Gauge
	DatasetLoadErrors prometheus.Counter
}

// NewMetrics creates and registers all API metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RequestsTotal,
		m.DatasetRecords,
		m.DatasetLoadErrors,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ecomonitor",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"path", "status"}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ecomonitor",
			Name:      "dataset_records",
			Help:      "Number of pollution records in the loaded dataset.",
		}),
		DatasetLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ecomonitor",
			Name:      "dataset_load_errors_total",
			Help:      "Dataset loads that degraded to the empty dataset.",
		}),
	}
}
