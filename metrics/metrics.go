// Package metrics holds the Prometheus instruments shared across the
// application.  Collectors register with the global registry, so importing
// this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LoginSuccessTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "login_success_total",
			Help: "Cumulative number of successful logins.",
		})

	LoginFailureTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "login_failure_total",
			Help: "Cumulative number of rejected login attempts.",
		})

	GateRedirectTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gate_redirect_total",
			Help: "Cumulative number of route-gate redirects by reason.",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(
		LoginSuccessTotal,
		LoginFailureTotal,
		GateRedirectTotal,
	)
}
