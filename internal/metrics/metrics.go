// Package metrics registers the Prometheus counters of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CheckoutSessionsStarted counts created checkout sessions per package.
	CheckoutSessionsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neurobond_checkout_sessions_started_total",
		Help: "Number of checkout sessions created, by package type.",
	}, []string{"package_type"})

	// CheckoutReconciled counts status checks by their outcome.
	CheckoutReconciled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neurobond_checkout_reconciled_total",
		Help: "Number of checkout status checks, by payment status.",
	}, []string{"payment_status"})

	// CommunityCasesSubmitted counts accepted community case submissions.
	CommunityCasesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "neurobond_community_cases_submitted_total",
		Help: "Number of community cases accepted for storage.",
	})

	// DialogAnalyses counts analysis requests by provider name.
	DialogAnalyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neurobond_dialog_analyses_total",
		Help: "Number of dialog analyses served, by provider.",
	}, []string{"provider"})
)
