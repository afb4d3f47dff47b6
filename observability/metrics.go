// Package observability exposes the Prometheus instrumentation of the service.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels of MessagesTotal.
const (
	OutcomeAccepted  = "accepted"
	OutcomeBanned    = "banned"
	OutcomeRejected  = "rejected"
	OutcomeStored    = "stored"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

var (
	// MessagesTotal counts messages by pipeline outcome.
	MessagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_screener_messages_total",
		Help: "Total number of messages handled, by outcome",
	}, []string{"outcome"})

	// ScreeningDuration records the time spent matching a message against the corpus.
	ScreeningDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chat_screener_screening_duration_seconds",
		Help:    "Banned word screening latency in seconds",
		Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25},
	})

	// RequestDuration records HTTP latency by route and status code.
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chat_screener_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "code"})

	RateLimitedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_screener_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(
		MessagesTotal,
		ScreeningDuration,
		RequestDuration,
		RateLimitedTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
