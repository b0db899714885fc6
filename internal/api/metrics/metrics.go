// Package metrics defines and registers all custom Prometheus metrics for
// the employee system API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered on the default registry via promauto at package
// init and exposed at GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee_system"

// LoginsTotal counts login attempts.
// Labels:
//   - role: "admin" or "employee"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SignupsTotal counts account registrations that succeeded.
// Label:
//   - role: "admin" or "employee"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful account registrations, by role.",
	},
	[]string{"role"},
)

// RecordMutationsTotal counts create/update/delete operations on records.
// Labels:
//   - entity: "employee" or "category"
//   - op: "create", "update" or "delete"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of successful record mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// TokenVerificationsTotal counts middleware token checks.
// Label:
//   - result: "ok", "missing", "invalid" or "expired"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)
