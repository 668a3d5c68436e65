// Package metrics defines and registers the custom Prometheus metrics for
// the users API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto against
// the default registry; HTTP-level metrics come separately from the
// echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users_api"

// UsersCreatedTotal counts successfully created users.
// Label:
//   - role: the access-level role of the new user (ADMIN, MANAGER, USER)
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)

// UsersMutatedTotal counts successful updates to existing users.
// Label:
//   - kind: "update" (full replace) or "patch" (partial)
var UsersMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_mutated_total",
		Help:      "Total number of successful user mutations, by kind.",
	},
	[]string{"kind"},
)

// UsersDeletedTotal counts hard-deleted users.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted.",
	},
)

// MutationsRejectedTotal counts requests rejected before any store mutation.
// Label:
//   - reason: "field_validation" (payload constraints), "validation"
//     (business rule), or "email_conflict" (duplicate email)
var MutationsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_rejected_total",
		Help:      "Total number of rejected mutation requests, by reason.",
	},
	[]string{"reason"},
)
