// Package metrics defines and registers all custom Prometheus metrics for the
// back-office console and its upstream API. It is the single source of truth
// for metric names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Session metrics ───────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login, registration and sign-out attempts.
// Labels:
//   - operation: "login", "register" or "logout"
//   - result: "success", "invalid", "rejected", "busy" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of session operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// SessionStorageErrorsTotal counts failed reads and writes of the persisted session.
// Label:
//   - op: "load", "save" or "clear"
var SessionStorageErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_storage_errors_total",
		Help:      "Total number of session storage failures.",
	},
	[]string{"op"},
)

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - outcome: "render", "placeholder" or "redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by outcome.",
	},
	[]string{"outcome"},
)

// CapabilityDenialsTotal counts views refused because the role lacks a capability.
var CapabilityDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "capability_denials_total",
		Help:      "Total number of views redirected home for lack of a capability.",
	},
	[]string{"capability"},
)

// ── Query metrics ─────────────────────────────────────────────────────────────

// QueryDuration measures list query fetches.
// Labels:
//   - query: the query name (e.g. "companies")
//   - result: "success" or "error"
var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of list query fetches.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"query", "result"},
)

// UpstreamRequestDuration measures calls to the upstream API.
// Labels:
//   - path: the endpoint path (e.g. "/auth/login")
//   - code: the HTTP status code, or "error" when no response arrived
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the upstream API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"path", "code"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts served requests.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request handling time by route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
