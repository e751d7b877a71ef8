// Package metrics defines and registers all custom Prometheus metrics for the
// committee service. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics are registered with the default Prometheus registry at package
// load via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "committee"

// CommitteesCreatedTotal counts successfully persisted committees.
// Label:
//   - notified: "true" when the create request opted into member notification
var CommitteesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "committees_created_total",
		Help:      "Total number of committees created, by notification opt-in.",
	},
	[]string{"notified"},
)

// FormationLettersStoredTotal counts formation-letter files written to the
// file store during committee creation.
var FormationLettersStoredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "formation_letters_stored_total",
		Help:      "Total number of formation letter files stored.",
	},
)

// FormationLetterOrphansRemovedTotal counts stored letters deleted because
// the committee record failed to persist after the file was written.
var FormationLetterOrphansRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "formation_letter_orphans_removed_total",
		Help:      "Total number of orphaned formation letters cleaned up after a failed create.",
	},
)

// NotificationsSentTotal counts committee-assignment emails delivered to the
// relay without error.
var NotificationsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of member assignment notifications sent.",
	},
)

// NotificationsFailedTotal counts per-recipient dispatch failures. Failures
// are operational signal only; they never fail the enclosing create.
var NotificationsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of member assignment notifications that failed to send.",
	},
)
