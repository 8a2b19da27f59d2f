package services

import "github.com/prometheus/client_golang/prometheus"

var (
	CatalogOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "watchmarket",
			Subsystem: "catalog",
			Name:      "operations_total",
			Help:      "Catalog mutations by operation and outcome",
		},
		[]string{"op", "result"},
	)

	StorageWriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "watchmarket",
			Subsystem: "storage",
			Name:      "write_failures_total",
			Help:      "Durable writes that failed, by key",
		},
		[]string{"key"},
	)

	BrandFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "watchmarket",
			Subsystem: "brands",
			Name:      "fetches_total",
			Help:      "Brand endpoint fetches by source",
		},
		[]string{"source"},
	)
)

// Collectors lists the service metrics for registration
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{CatalogOperations, StorageWriteFailures, BrandFetches}
}
