package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookie_api_requests_total",
		Help: "Read API requests by route and status code.",
	}, []string{"route", "status"})

	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookie_searches_total",
		Help: "Searches served by the read API, by mode.",
	}, []string{"mode"})

	BookmarksTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookie_bookmarks_total",
		Help: "Total number of bookmarks in the store.",
	})
)
