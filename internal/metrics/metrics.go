package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RoutesResolved     *prometheus.CounterVec
	APIErrors          prometheus.Counter
	RequestSeconds     *prometheus.HistogramVec
	RouteDistance      prometheus.Histogram
	OccupancyRatio     *prometheus.GaugeVec
	OccupancyRefreshes *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RoutesResolved: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "compass_routes_resolved_total",
			Help: "Total number of resolved routes by geometry source (service or fallback).",
		}, []string{"source"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "compass_routing_provider_api_errors_total",
			Help: "Total number of errors received from the routing provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "compass_routing_provider_request_duration_seconds",
			Help:    "Duration of requests to the routing provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		RouteDistance: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "compass_route_distance_meters",
			Help:    "Length of planned routes in meters.",
			Buckets: prometheus.ExponentialBuckets(50, 2, 10),
		}),
		OccupancyRatio: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "compass_facility_occupancy_ratio",
			Help: "Latest occupancy ratio (current/max) per facility.",
		}, []string{"facility", "type"}),
		OccupancyRefreshes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "compass_occupancy_refreshes_total",
			Help: "Total number of occupancy snapshot refreshes.",
		}, []string{"status"}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "compass_http_requests_total",
			Help: "Total HTTP requests processed by the API.",
		}, []string{"method", "route", "status"}),
	}
}
