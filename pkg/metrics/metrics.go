package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CommandsTotal counts slash command invocations by command and outcome.
var CommandsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loahelper_commands_total",
		Help: "Number of slash command invocations.",
	},
	[]string{"command", "status"},
)

// APIRequestsTotal counts Lost Ark API requests by endpoint and HTTP status.
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loahelper_api_requests_total",
		Help: "Number of Lost Ark API requests.",
	},
	[]string{"endpoint", "status"},
)

// APIRequestDuration observes Lost Ark API request latency per endpoint.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "loahelper_api_request_duration_seconds",
		Help:    "Latency of Lost Ark API requests.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ExpeditionUpserts counts expedition register syncs by outcome.
var ExpeditionUpserts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loahelper_expedition_upserts_total",
		Help: "Number of expedition register operations.",
	},
	[]string{"status"},
)
