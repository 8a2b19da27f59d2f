package health

import "github.com/prometheus/client_golang/prometheus"

var routeLabels = []string{"method", "path", "status"}

var (
	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "watchmarket",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of API requests by route pattern",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		routeLabels,
	)

	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "watchmarket",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "API requests by route pattern and status",
		},
		routeLabels,
	)

	HttpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "watchmarket",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "API requests currently being served",
		},
	)
)
