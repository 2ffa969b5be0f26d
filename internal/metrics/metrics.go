// Package metrics exposes Prometheus counters for compliance activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChecksTotal counts individual covenant evaluations by outcome:
	// compliant, warning, breach, skipped, failed.
	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "navlend_covenant_checks_total",
		Help: "Covenant compliance evaluations by outcome.",
	}, []string{"outcome"})

	// BreachNotificationsTotal counts breach notification attempts by result:
	// sent, skipped_no_owner, failed.
	BreachNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "navlend_breach_notifications_total",
		Help: "Breach notification attempts by result.",
	}, []string{"result"})

	// DueRunsTotal counts scheduler passes over due covenants.
	DueRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "navlend_due_check_runs_total",
		Help: "Scheduled due-covenant check runs.",
	})
)

const (
	OutcomeCompliant = "compliant"
	OutcomeWarning   = "warning"
	OutcomeBreach    = "breach"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"

	NotifySent    = "sent"
	NotifyNoOwner = "skipped_no_owner"
	NotifyFailed  = "failed"
)
