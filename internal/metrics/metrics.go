// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RefdataLoadTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refdata_load_total",
			Help: "Reference-data load attempts by result (ok, error, store_hit, stale).",
		}, []string{"result"})

	RefdataEntities = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "refdata_entities",
			Help: "Number of entities in the published reference-data snapshot.",
		}, []string{"collection"})

	SegmentResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "segment_resolutions_total",
			Help: "Path segments classified by the segment resolver, by kind.",
		}, []string{"kind"})

	LocalizedRewritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localized_rewrites_total",
			Help: "Requests rewritten from a localized section route.",
		}, []string{"section", "lang"})

	FilterNotFoundTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filter_not_found_total",
			Help: "Filter paths rejected as invalid, split by crawler traffic.",
		}, []string{"bot"})
)

func init() {
	prometheus.MustRegister(
		RefdataLoadTotal,
		RefdataEntities,
		SegmentResolutionsTotal,
		LocalizedRewritesTotal,
		FilterNotFoundTotal,
	)
}
