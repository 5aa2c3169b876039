package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store write results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds all Prometheus metrics for the service
type Metrics struct {
	Inferences         *prometheus.CounterVec
	StoreWrites        *prometheus.CounterVec
	StoreWriteDuration *prometheus.HistogramVec
}

// New creates the metrics and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Inferences: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "inferlog_inferences_total",
			Help: "Total number of inferences served, by prediction",
		}, []string{"prediction"}),
		StoreWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "inferlog_store_writes_total",
			Help: "Total number of audit store writes, by store and result",
		}, []string{"store", "result"}),
		StoreWriteDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "inferlog_store_write_duration_seconds",
			Help:    "Latency of audit store writes",
			Buckets: prometheus.DefBuckets,
		}, []string{"store"}),
	}
}

// ObserveInference counts a served inference
func (m *Metrics) ObserveInference(prediction string) {
	m.Inferences.WithLabelValues(prediction).Inc()
}

// ObserveStoreWrite records the outcome and latency of a store write
func (m *Metrics) ObserveStoreWrite(store string, d time.Duration, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.StoreWrites.WithLabelValues(store, result).Inc()
	m.StoreWriteDuration.WithLabelValues(store).Observe(d.Seconds())
}
