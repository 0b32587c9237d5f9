package proxy

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for the invocation counter.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomePanic   = "panic"
)

// metricsObserver records call counts and durations.
type metricsObserver struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// MetricsObserver creates an observer that records invocation counts and
// durations and registers its collectors with reg.
func MetricsObserver(reg prometheus.Registerer) (Observer, error) {
	o := &metricsObserver{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dynproxy",
				Name:      "invocations_total",
				Help:      "Number of calls forwarded through the proxy",
			},
			[]string{"method", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "dynproxy",
				Name:      "invocation_duration_seconds",
				Help:      "Time spent in the target for forwarded calls",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 7),
			},
			[]string{"method"},
		),
	}

	for _, c := range []prometheus.Collector{o.invocations, o.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register proxy metrics: %w", err)
		}
	}
	return o, nil
}

func (o *metricsObserver) Before(*Invocation) {}

func (o *metricsObserver) After(inv *Invocation, _ Result, err error) {
	outcome := OutcomeSuccess
	switch {
	case errors.Is(err, ErrDelegatePanicked):
		outcome = OutcomePanic
	case err != nil:
		outcome = OutcomeError
	}
	o.invocations.WithLabelValues(inv.Method, outcome).Inc()
	o.duration.WithLabelValues(inv.Method).Observe(time.Since(inv.Started).Seconds())
}
