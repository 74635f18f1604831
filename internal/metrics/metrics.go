// Package metrics exposes Prometheus counters for the registration workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var (
	registrationsTotal = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "quizreg_registrations_total",
		Help: "Team registrations by admission outcome.",
	}, []string{"outcome"})

	promotionsTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "quizreg_promotions_total",
		Help: "Waitlisted teams promoted to a confirmed slot.",
	})

	cancellationsTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "quizreg_cancellations_total",
		Help: "Registrations cancelled by captains or admins.",
	})

	notificationFailures = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "quizreg_notification_failures_total",
		Help: "Captain emails that could not be delivered.",
	})
)

// Registry returns the registry served on the metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}

func RecordRegistration(outcome string) {
	registrationsTotal.WithLabelValues(outcome).Inc()
}

func RecordPromotion() {
	promotionsTotal.Inc()
}

func RecordCancellation() {
	cancellationsTotal.Inc()
}

func RecordNotificationFailure() {
	notificationFailures.Inc()
}
