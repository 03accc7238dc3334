package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RemoteCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rebill_remote_calls_total",
			Help: "Remote rebill operations by operation and outcome",
		},
		[]string{"operation", "outcome"}, // ok|fault|error
	)

	RemoteCallSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rebill_remote_call_seconds",
			Help:    "Latency of remote rebill operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rebill_validation_failures_total",
			Help: "Calls rejected locally before reaching the service",
		},
		[]string{"record", "field"},
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		RemoteCallsTotal,
		RemoteCallSeconds,
		ValidationFailuresTotal,
	)
}
