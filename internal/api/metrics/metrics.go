// Package metrics defines the custom Prometheus metrics for the roster API.
// It is the single source of truth for metric names, labels and help strings;
// all metrics register with the default registry via promauto and are exposed
// on /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roster"

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "player" or "admin"
//   - result: "success", "rejected" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

// MutationsTotal counts roster mutations that completed successfully.
// Label:
//   - action: "create", "update", "delete" or "reorder"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful roster mutations, by action.",
	},
	[]string{"action"},
)

// ReorderBatchSize measures how many position assignments each reorder call
// carries.
var ReorderBatchSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reorder_batch_size",
		Help:      "Number of position assignments per reorder request.",
		Buckets:   []float64{1, 2, 5, 10, 20, 50},
	},
)
