package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studybot_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studybot_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Chat metrics
	ChatExchanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studybot_chat_exchanges_total",
			Help: "Chat exchanges by outcome",
		},
		[]string{"outcome"}, // "ok", "history_error", "provider_error", "persist_error"
	)

	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studybot_completion_duration_seconds",
			Help:    "Completion provider call duration",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	TurnsPersisted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studybot_turns_persisted_total",
			Help: "Chat turns written to the history store",
		},
		[]string{"role"},
	)
)
