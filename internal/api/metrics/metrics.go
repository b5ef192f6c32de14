// Package metrics defines and registers the custom Prometheus metrics for the
// EmpowerUp API. It is the single source of truth for metric names, labels,
// and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "empowerup"

// AuthResolutionsTotal counts principal resolutions by outcome.
// Label:
//   - outcome: "token" (bearer strategy won), "session" (fallback won),
//     "denied" (no strategy yielded a principal on a required route)
var AuthResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_resolutions_total",
		Help:      "Total number of authentication resolutions, by outcome.",
	},
	[]string{"outcome"},
)

// LoginAttemptsTotal counts login attempts by result.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitDecisionsTotal counts rate-limiter decisions.
// Label:
//   - decision: "allowed" or "blocked"
var RateLimitDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_decisions_total",
		Help:      "Total number of rate limiter decisions, by outcome.",
	},
	[]string{"decision"},
)

// ContentCreatedTotal counts created content entities.
// Label:
//   - kind: "post", "group" or "event"
var ContentCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_created_total",
		Help:      "Total number of content entities created, by kind.",
	},
	[]string{"kind"},
)
