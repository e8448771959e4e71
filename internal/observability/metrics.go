package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "enrollment_service",
		Subsystem: "store",
		Name:      "signups_total",
		Help:      "Signup attempts, labeled by outcome.",
	}, []string{"outcome"})

	withdrawalCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "enrollment_service",
		Subsystem: "store",
		Name:      "withdrawals_total",
		Help:      "Withdrawal attempts, labeled by outcome.",
	}, []string{"outcome"})

	spotsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "enrollment_service",
		Subsystem: "store",
		Name:      "spots_available",
		Help:      "Remaining capacity per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, withdrawalCounter, spotsGauge)
}

// RecordSignup counts one signup attempt by outcome.
func RecordSignup(outcome string) {
	signupCounter.WithLabelValues(outcome).Inc()
}

// RecordWithdrawal counts one withdrawal attempt by outcome.
func RecordWithdrawal(outcome string) {
	withdrawalCounter.WithLabelValues(outcome).Inc()
}

// RecordSpotsAvailable updates the remaining-capacity gauge for an activity.
func RecordSpotsAvailable(activity string, spots int) {
	spotsGauge.WithLabelValues(activity).Set(float64(spots))
}
