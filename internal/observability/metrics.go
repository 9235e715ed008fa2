package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedCompositionLatency records how long composing a personalized feed takes.
	FeedCompositionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "artfolio_feed_composition_latency_seconds",
		Help:    "Personalized feed composition latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// FeedFallbackTotal counts feed requests served by the per-followee fallback path.
	FeedFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artfolio_feed_fallback_total",
		Help: "Total number of feed requests that used the fallback composition path",
	})

	// EngagementWrites counts engagement edge writes by relation and outcome.
	EngagementWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artfolio_engagement_writes_total",
		Help: "Total engagement edge writes by relation and outcome",
	}, []string{"relation", "outcome"})

	// BlobUploadErrors counts failed blob store uploads.
	BlobUploadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artfolio_blob_upload_errors_total",
		Help: "Total number of failed blob store uploads",
	})

	// ThrottledRequests counts requests rejected by the rate limiter, by resource.
	ThrottledRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artfolio_throttled_requests_total",
		Help: "Total number of requests rejected by the rate limiter by resource",
	}, []string{"resource"})

	// RedisErrors counts failed Redis commands by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artfolio_redis_errors_total",
		Help: "Total number of failed Redis commands by command",
	}, []string{"command"})

	// OrphanedBlobs counts uploads whose follow-up database insert failed,
	// leaving an unreferenced object in the blob store.
	OrphanedBlobs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artfolio_orphaned_blobs_total",
		Help: "Total number of blob uploads orphaned by a failed database insert",
	})
)
