// Package metrics defines and registers all custom Prometheus metrics for
// the case management API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// Prometheus registry at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "casedesk"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EntitiesCreatedTotal counts created rows per entity type.
// Label:
//   - entity: "case", "customer", "investigation", "target", "user"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by entity type.",
	},
	[]string{"entity"},
)

// EntitiesDeletedTotal counts deleted rows per entity type. Cascaded child
// deletions are not counted separately.
var EntitiesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of entities deleted, by entity type.",
	},
	[]string{"entity"},
)

// SearchesTotal counts executed search requests.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of search requests executed.",
	},
)

// SearchDuration measures how long a search request takes end-to-end.
var SearchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of search execution across all requested entity types.",
		Buckets:   prometheus.DefBuckets,
	},
)
