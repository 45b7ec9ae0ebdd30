// Package metrics defines and registers all custom Prometheus metrics for the
// SmartLogi front-end. It is the single source of truth for metric names,
// labels, and help strings.
//
// Registration happens at import time through promauto; expose them by
// mounting the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smartlogi"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected", "conflict" (attempt while another login
//     was still in flight), or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GuardDecisionsTotal counts route-guard evaluations.
// Label:
//   - outcome: "allowed", "unauthenticated" (sent to login), or "forbidden"
//     (sent to access-denied)
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of navigation guard decisions, by outcome.",
	},
	[]string{"outcome"},
)

// BackendFaultsTotal counts failed backend calls.
// Label:
//   - status: the HTTP status of the failed response, "0" when the backend
//     was unreachable
var BackendFaultsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_faults_total",
		Help:      "Total number of failed backend calls, by HTTP status.",
	},
	[]string{"status"},
)

// BackendRequestDuration measures backend call latency end-to-end, including
// the interceptor chain.
// Label:
//   - method: HTTP method of the outbound request
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of outbound backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)
