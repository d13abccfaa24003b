package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Feed label values for the upstream collectors.
const (
	FeedLocations  = "mvg-locations"
	FeedDepartures = "mvg-departures"
	FeedForecast   = "open-meteo"
)

type Collector struct {
	reg *prometheus.Registry

	UpstreamRequests *prometheus.CounterVec
	UpstreamErrors   *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec

	ViewsRendered  prometheus.Counter
	SuggestQueries prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "board_upstream_requests_total",
			Help: "Total outbound feed requests.",
		}, []string{"feed"}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "board_upstream_errors_total",
			Help: "Total failed outbound feed requests.",
		}, []string{"feed"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "board_upstream_duration_seconds",
			Help:    "Duration of outbound feed requests.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		}, []string{"feed"}),
		ViewsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "board_views_rendered_total",
			Help: "Total board views built.",
		}),
		SuggestQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "board_suggest_queries_total",
			Help: "Total station name suggestions served.",
		}),
	}

	reg.MustRegister(
		c.UpstreamRequests, c.UpstreamErrors, c.UpstreamDuration,
		c.ViewsRendered, c.SuggestQueries,
	)

	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
