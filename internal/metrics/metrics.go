package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Calculations        *prometheus.CounterVec
	OrientationClicks   prometheus.Counter
	SessionsActive      prometheus.Gauge
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers every metric with reg. Passing a fresh prometheus.NewRegistry()
// keeps tests isolated from the default registry.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Calculations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "qibla",
			Name:      "calculations_total",
			Help:      "Total number of engine calculations by operation.",
		}, []string{"operation"}),
		OrientationClicks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "qibla",
			Name:      "orientation_clicks_total",
			Help:      "Total number of points clicked across orientation sessions.",
		}),
		SessionsActive: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: "qibla",
			Name:      "orientation_sessions_active",
			Help:      "Current number of live orientation sessions.",
		}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "qibla",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "qibla",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method"}),
	}
}

// CountCalculation increments the calculation counter for operation. Safe on a nil receiver.
func (m *Metrics) CountCalculation(operation string) {
	if m == nil {
		return
	}
	m.Calculations.WithLabelValues(operation).Inc()
}

// CountClick records one orientation point click. Safe on a nil receiver.
func (m *Metrics) CountClick() {
	if m == nil {
		return
	}
	m.OrientationClicks.Inc()
}

// SetSessions publishes the live session count. Safe on a nil receiver.
func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.SessionsActive.Set(float64(n))
}
