package botapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded per API call.
const (
	OutcomeOK        = "ok"
	OutcomeAPIError  = "api_error"
	OutcomeTransport = "transport_error"
)

// Metrics holds the Prometheus collectors for Bot API calls. A nil *Metrics
// records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	retries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg. Registering
// twice on the same registry fails.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tgmcp",
			Subsystem: "botapi",
			Name:      "requests_total",
			Help:      "Bot API calls by method and outcome.",
		}, []string{"method", "outcome"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tgmcp",
			Subsystem: "botapi",
			Name:      "rate_limited_total",
			Help:      "Bot API attempts answered with 429 and retried.",
		}, []string{"method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tgmcp",
			Subsystem: "botapi",
			Name:      "request_duration_seconds",
			Help:      "Bot API call latency including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.retries, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("botapi: register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observe(method string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			outcome = OutcomeAPIError
		} else {
			outcome = OutcomeTransport
		}
	}
	m.requests.WithLabelValues(method, outcome).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) rateLimited(method string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(method).Inc()
}
