// Package metrics defines the custom Prometheus metrics for the travel
// planner API. It is the single source of truth for metric names, labels,
// and help strings; per-request HTTP metrics come from the echoprometheus
// middleware and are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travelplanner"

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (unknown email and wrong password are
//     both "failure" so the metric cannot leak account existence either)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TripsCreatedTotal counts newly created trips.
var TripsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trips_created_total",
		Help:      "Total number of trips created.",
	},
)

// TripsDeletedTotal counts deleted trips.
var TripsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trips_deleted_total",
		Help:      "Total number of trips deleted.",
	},
)
