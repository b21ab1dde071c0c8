package matrix

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ComparisonsTotal counts every (i,j) cell computed, labeled by measure
// name, for long-running matrix or benchmark processes to export.
var ComparisonsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "harry_comparisons_total",
		Help: "Pairwise comparisons computed, by measure",
	},
	[]string{"measure"},
)

// RunDuration observes the wall-clock time of a complete matrix Run call,
// labeled by measure name.
var RunDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "harry_run_duration_seconds",
		Help:    "Matrix run duration",
		Buckets: prometheus.ExponentialBuckets(0.001, 10, 8),
	},
	[]string{"measure"},
)

// CacheHitRate reports vcache.Stats().HitRate at the end of a run,
// labeled by the uuid that identifies it so successive runs in one
// process don't overwrite each other's last-observed figure.
var CacheHitRate = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "harry_cache_hit_rate",
		Help: "Value cache hit rate observed at the end of a run",
	},
	[]string{"run_id"},
)
