// Package metrics defines and registers the custom Prometheus metrics of the
// dashboard. It is the single source of truth for metric names, labels and
// help strings; promauto registers them with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Gateway metrics ──────────────────────────────────────────────────────────

// GatewayRequestsTotal counts outbound calls to the remote API.
// Labels:
//   - endpoint: the request path (e.g. "/api/v1/jobs")
//   - outcome: success, rejected, timeout, unreachable or unexpected
var GatewayRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Total number of remote API calls, by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// GatewayRequestDuration measures remote API latency, failures included.
var GatewayRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of remote API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// SessionTransitionsTotal counts session store transitions by resulting phase.
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session transitions, by resulting phase.",
	},
	[]string{"phase"},
)

// SessionAuthenticated is 1 while an identity is present, else 0.
var SessionAuthenticated = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_authenticated",
		Help:      "Whether the dashboard session currently holds an identity.",
	},
)

// GuardDecisionsTotal counts route guard decisions.
// Label:
//   - gate: pending, open or closed
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by gate.",
	},
	[]string{"gate"},
)

// ── Screen metrics ───────────────────────────────────────────────────────────

// ActionFailuresTotal counts failed user actions by outcome kind.
var ActionFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "action_failures_total",
		Help:      "Total number of user actions that ended in an error message, by outcome.",
	},
	[]string{"outcome"},
)

// SupersededFetchesTotal counts fetch results dropped because a newer fetch
// for the same screen had started.
var SupersededFetchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "superseded_fetches_total",
		Help:      "Total number of fetch results dropped as stale.",
	},
)
