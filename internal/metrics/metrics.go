package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счётчики и гистограммы конвейера. Регистрируются в реестре по
// умолчанию и отдаются обработчиком /metrics сервера.
var (
	SourceFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beacon",
		Name:      "source_fetches_total",
		Help:      "Adapter fetch attempts by source and outcome.",
	}, []string{"source", "outcome"})

	SourceArticles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beacon",
		Name:      "source_articles_total",
		Help:      "Raw articles contributed by each source.",
	}, []string{"source"})

	ArticlesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beacon",
		Name:      "articles_dropped_total",
		Help:      "Articles dropped during processing by reason.",
	}, []string{"reason"})

	GeocodeLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beacon",
		Name:      "geocode_lookups_total",
		Help:      "Geocode resolutions by method (gazetteer, capital, cache, nominatim, miss).",
	}, []string{"method"})

	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beacon",
		Name:      "pipeline_runs_total",
		Help:      "Pipeline executions by outcome.",
	}, []string{"outcome"})

	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "beacon",
		Name:      "pipeline_duration_seconds",
		Help:      "Wall time of a full pipeline run.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beacon",
		Name:      "cache_requests_total",
		Help:      "Cache layer reads by result (hit, refresh, stale).",
	}, []string{"result"})
)
