package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total number of users created through the service",
		},
	)

	StoreInsertsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_inserts_total",
			Help: "Total number of entities inserted into the store",
		},
	)

	StoreLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_lookups_total",
			Help: "Total number of store lookups",
		},
		[]string{"result"},
	)

	StoreLookupDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_lookup_duration_seconds",
			Help:    "Duration of store lookups in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"mode"},
	)
)

const (
	LookupResultHit  = "hit"
	LookupResultMiss = "miss"

	LookupModeAsync = "async"
)
