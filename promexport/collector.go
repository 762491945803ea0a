// Package promexport exposes leakcheck ledgers as Prometheus metrics.
package promexport

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ygrebnov/leakcheck"
)

// Source is the read-only ledger surface the collector scrapes. *leakcheck.Ledger implements it.
type Source interface {
	Snapshot() leakcheck.Snapshot
}

var _ Source = (*leakcheck.Ledger)(nil)

type config struct {
	namespace   string
	constLabels prometheus.Labels
}

// Option configures a Collector.
type Option func(*config)

// WithNamespace overrides the metric namespace (default "leakcheck").
func WithNamespace(ns string) Option {
	return func(c *config) { c.namespace = ns }
}

// WithConstLabels attaches constant labels to every exported metric.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *config) {
		if len(labels) == 0 {
			return
		}
		// copy to avoid external mutation
		c.constLabels = make(prometheus.Labels, len(labels))
		for k, v := range labels {
			c.constLabels[k] = v
		}
	}
}

// Collector implements prometheus.Collector on top of a ledger.
// It keeps no state; every scrape reads one consistent snapshot of the ledger's session.
type Collector struct {
	src     Source
	live    *prometheus.Desc
	events  *prometheus.Desc
	enabled *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector for src.
func NewCollector(src Source, opts ...Option) *Collector {
	cfg := &config{namespace: "leakcheck"}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	return &Collector{
		src: src,
		live: prometheus.NewDesc(
			prometheus.BuildFQName(cfg.namespace, "", "live_instances"),
			"Live tracked instances per type identity and tag in the current session.",
			[]string{"identity", "tag"}, cfg.constLabels,
		),
		events: prometheus.NewDesc(
			prometheus.BuildFQName(cfg.namespace, "", "session_events"),
			"Lifecycle events recorded in the current session.",
			[]string{"kind"}, cfg.constLabels,
		),
		enabled: prometheus.NewDesc(
			prometheus.BuildFQName(cfg.namespace, "", "logging_enabled"),
			"Whether the ledger is currently recording (1) or not (0).",
			nil, cfg.constLabels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.live
	ch <- c.events
	ch <- c.enabled
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.src.Snapshot()
	for _, r := range snap.Live {
		ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue,
			float64(r.Count), r.Identity.String(), r.Tag)
	}

	var allocs, deallocs int
	for _, e := range snap.Events {
		switch e.Kind {
		case leakcheck.Allocation:
			allocs++
		case leakcheck.Deallocation:
			deallocs++
		}
	}
	ch <- prometheus.MustNewConstMetric(c.events, prometheus.GaugeValue,
		float64(allocs), leakcheck.Allocation.String())
	ch <- prometheus.MustNewConstMetric(c.events, prometheus.GaugeValue,
		float64(deallocs), leakcheck.Deallocation.String())

	enabled := 0.0
	if snap.Enabled {
		enabled = 1
	}
	ch <- prometheus.MustNewConstMetric(c.enabled, prometheus.GaugeValue, enabled)
}
