package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commune_post_cache_lookups_total",
		Help: "Post cache lookups partitioned by kind (detail, like_count) and result (hit, miss).",
	}, []string{"kind", "result"})

	postCacheLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "commune_post_cache_lookup_seconds",
		Help:    "Latency of post cache lookups.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"result"})

	likeStatusChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commune_like_status_checks_total",
		Help: "Like status checks by outcome.",
	}, []string{"status"})

	likeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commune_like_toggles_total",
		Help: "Like toggles by resulting state.",
	}, []string{"state"})
)

func IncDetailHit() { postCacheLookups.WithLabelValues("detail", "hit").Inc() }

func IncDetailMiss() { postCacheLookups.WithLabelValues("detail", "miss").Inc() }

func IncLikeCountHit() { postCacheLookups.WithLabelValues("like_count", "hit").Inc() }

func IncLikeCountMiss() { postCacheLookups.WithLabelValues("like_count", "miss").Inc() }

func AddHitDuration(seconds float64) { postCacheLatency.WithLabelValues("hit").Observe(seconds) }

func AddMissDuration(seconds float64) { postCacheLatency.WithLabelValues("miss").Observe(seconds) }

// IncLikeStatus counts a like status outcome ("liked", "not_liked", ...).
func IncLikeStatus(status string) { likeStatusChecks.WithLabelValues(status).Inc() }

func IncLikeToggle(liked bool) {
	state := "unliked"
	if liked {
		state = "liked"
	}
	likeToggles.WithLabelValues(state).Inc()
}

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commune_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "commune_http_request_duration_seconds",
		Help:    "HTTP request duration by method and route.",
		Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2, 5},
	}, []string{"method", "path"})
)

// ObserveHTTPRequest records one finished request. path is the route
// template, not the raw URL, to keep label cardinality bounded.
func ObserveHTTPRequest(method, path, status string, seconds float64) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}
