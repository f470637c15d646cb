// Package metrics defines and registers all custom Prometheus metrics for the
// planet API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics registered here use promauto, so importing the package is enough to
// register them with the default Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "planetapi"

// PlanetsCreatedTotal counts newly created planets.
// Label:
//   - type: the planet type (e.g. "terrestrial", "gas giant")
var PlanetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "planets_created_total",
		Help:      "Total number of planets created, by planet type.",
	},
	[]string{"type"},
)

// PlanetsDeletedTotal counts planet deletions. Each deletion also cascades to
// the planet's moons.
var PlanetsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "planets_deleted_total",
		Help:      "Total number of planets deleted (cascading to their moons).",
	},
)

// MoonsCreatedTotal counts newly created moons.
var MoonsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moons_created_total",
		Help:      "Total number of moons created.",
	},
)

// UsersCreatedTotal counts newly created users.
// Label:
//   - role: "ADMIN", "STAFF", or "STUDENT"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "disabled", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
