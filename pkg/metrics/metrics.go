// Package metrics exposes pipeline counters for the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedFetchesTotal counts feed fetch attempts by outcome
	FeedFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedclip_feed_fetches_total",
			Help: "Total number of feed fetch attempts",
		},
		[]string{"status"}, // ok, error, skipped
	)

	// ItemsMergedTotal counts new raw items inserted into the cache
	ItemsMergedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedclip_items_merged_total",
			Help: "Total number of new raw items merged into the cache",
		},
	)

	// ArticlesPromotedTotal counts promoted article records
	ArticlesPromotedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedclip_articles_promoted_total",
			Help: "Total number of articles promoted",
		},
		[]string{"source"}, // feed, manual
	)

	// ExtractionFailuresTotal counts failed readability extractions
	ExtractionFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedclip_extraction_failures_total",
			Help: "Total number of failed content extractions",
		},
	)

	// IngestDuration observes full batch duration
	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedclip_ingest_duration_seconds",
			Help:    "Duration of a full ingestion batch",
			Buckets: prometheus.DefBuckets,
		},
	)
)
