// Package metrics defines the custom Prometheus metrics for the BUMDes
// backend. It is the single source of truth for metric names, labels and
// help strings; echo-contrib provides the generic request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bumdes"

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ApplicationsSubmittedTotal counts capital applications received through
// the public form.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "capital_applications_submitted_total",
		Help:      "Total number of capital applications submitted.",
	},
)

// ApplicationsReviewedTotal counts admin review decisions.
// Label:
//   - status: "approved" or "rejected"
var ApplicationsReviewedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "capital_applications_reviewed_total",
		Help:      "Total number of capital application reviews, by decision.",
	},
	[]string{"status"},
)

// MessagesSubmittedTotal counts contact messages received through the
// public form.
var MessagesSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_submitted_total",
		Help:      "Total number of contact messages submitted.",
	},
)
