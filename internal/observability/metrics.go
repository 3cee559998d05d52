package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedBuildDuration records how long assembling the feed view takes,
	// including the concurrent count phase.
	FeedBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "plantify_feed_build_seconds",
		Help:    "Feed assembly latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// ImageUploads counts image uploads by outcome (accepted, rejected, failed).
	ImageUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantify_image_uploads_total",
		Help: "Total image upload attempts by outcome",
	}, []string{"outcome"})

	// DescribeRequests counts AI description requests by outcome.
	DescribeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantify_describe_requests_total",
		Help: "Total AI description requests by outcome",
	}, []string{"outcome"})
)

// ObserveFeedBuild records a feed assembly duration from the given start time.
func ObserveFeedBuild(start time.Time) {
	FeedBuildDuration.Observe(time.Since(start).Seconds())
}
