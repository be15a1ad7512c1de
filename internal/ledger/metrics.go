package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
}

// NewMetrics registers the node call metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "walletview",
			Subsystem: "node",
			Name:      "calls_total",
			Help:      "Logical calls to the ledger node by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "walletview",
			Subsystem: "node",
			Name:      "call_duration_seconds",
			Help:      "Duration of logical calls to the ledger node, retries included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		retries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "walletview",
			Subsystem: "node",
			Name:      "retries_total",
			Help:      "Attempts repeated after a transport failure.",
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) observe(endpoint string, seconds float64, err error) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	m.calls.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(seconds)
}

func (m *Metrics) retried(endpoint string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(endpoint).Inc()
}
