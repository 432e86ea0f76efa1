// Package metrics defines and registers all custom Prometheus metrics for
// the sleep tracker API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register with the default Prometheus registry at package load;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sleeptracker"

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SleepRecordsCreatedTotal counts newly logged sleep sessions.
var SleepRecordsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sleep_records_created_total",
		Help:      "Total number of sleep records created.",
	},
)

// EntityWritesTotal counts create/update/delete operations per entity kind.
// Labels:
//   - entity: "sleep_record", "note", "goal", "reminder", "user"
//   - op: "create", "update" or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of persisted entity mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)
