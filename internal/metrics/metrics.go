// Package metrics defines all custom Prometheus metrics for the forum. It
// is the single source of truth for metric names, labels, and help strings.
// Metrics register with the default registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "phorum"

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created through registration.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// RepliesCreatedTotal counts persisted replies.
// Label:
//   - source: "user" for human replies, "bot" for synthesized ones
var RepliesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "replies_created_total",
		Help:      "Total number of replies persisted, labelled by source.",
	},
	[]string{"source"},
)

// BotCheckSkipsTotal counts triggering replies whose bot reply could not be
// synthesized (bot account unresolvable or persistence failure).
var BotCheckSkipsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bot_check_skips_total",
		Help:      "Total number of bot trigger invocations skipped after a failure.",
	},
)
