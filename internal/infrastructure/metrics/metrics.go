package metrics

import (
	"bemu_storefront/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the store's Prometheus collectors.
type Metrics struct {
	drawerCalculations *prometheus.CounterVec
	uncoveredCells     prometheus.Histogram
	requestCounter     *prometheus.CounterVec
	requestLatency     *prometheus.HistogramVec
}

var _ interfaces.IDrawerMetrics = (*Metrics)(nil)

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		drawerCalculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drawer_calculations_total",
				Help: "Total number of drawer layout calculations by result",
			},
			[]string{"result"},
		),
		uncoveredCells: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "drawer_uncovered_cells",
				Help:    "Grid cells left uncovered per successful calculation",
				Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
			},
		),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	reg.MustRegister(m.drawerCalculations, m.uncoveredCells, m.requestCounter, m.requestLatency)
	return m
}

func (m *Metrics) ObserveCalculation(result string, uncoveredCells int) {
	m.drawerCalculations.WithLabelValues(result).Inc()
	if result != "invalid" {
		m.uncoveredCells.Observe(float64(uncoveredCells))
	}
}

// ObserveRequest records one served request. route is the matched pattern, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(d.Seconds())
}
