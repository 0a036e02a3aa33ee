package remoteapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "autoparts"

// Refresh and provisioning outcomes.
const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultReused  = "reused"
)

// Metrics counts outbound traffic and the refresh protocol.
type Metrics struct {
	apiRequests       *prometheus.CounterVec
	apiDuration       *prometheus.HistogramVec
	tokenRefreshes    *prometheus.CounterVec
	refreshCoalesced  prometheus.Counter
	anonymousSessions *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		apiRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "api_requests_total",
			Help:      "Requests sent to the remote API by method and status",
		}, []string{"method", "status"}),

		apiDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "api_request_duration_seconds",
			Help:      "Remote API latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),

		tokenRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "token_refresh_total",
			Help:      "Token refresh outcomes",
		}, []string{"result"}),

		refreshCoalesced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "token_refresh_coalesced_total",
			Help:      "Callers that reused another caller's refresh instead of starting one",
		}),

		anonymousSessions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "anonymous_sessions_total",
			Help:      "Anonymous session provisioning outcomes",
		}, []string{"result"}),
	}
}

func (m *Metrics) observeRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.apiRequests.WithLabelValues(method, label).Inc()
	m.apiDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) observeRefresh(result string) {
	if m == nil {
		return
	}
	m.tokenRefreshes.WithLabelValues(result).Inc()
}

func (m *Metrics) observeCoalesced() {
	if m == nil {
		return
	}
	m.refreshCoalesced.Inc()
}

func (m *Metrics) observeAnonymous(result string) {
	if m == nil {
		return
	}
	m.anonymousSessions.WithLabelValues(result).Inc()
}
