package metrics

import "github.com/prometheus/client_golang/prometheus"

// Addition results.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
)

// APIMetrics holds Prometheus metrics for the greeting and addition endpoints.
type APIMetrics struct {
	Greetings prometheus.Counter
	Additions *prometheus.CounterVec
}

// NewAPIMetrics creates and registers API metrics on the given registry.
func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	m := &APIMetrics{
		Greetings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "greetings_total",
			Help:      "Total number of greetings served.",
		}),
		Additions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "additions_total",
			Help:      "Total number of addition requests, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.Greetings, m.Additions)

	// Pre-initialize label values so both series are exported from the start.
	m.Additions.WithLabelValues(ResultOK)
	m.Additions.WithLabelValues(ResultInvalid)
	return m
}
