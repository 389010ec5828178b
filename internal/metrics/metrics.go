// Package metrics exposes Prometheus counters for the signal loop.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the bot.
type Metrics struct {
	Registry *prometheus.Registry

	TicksTotal          prometheus.Counter
	NewRoundsTotal      prometheus.Counter
	FetchFailuresTotal  prometheus.Counter
	NotifyFailuresTotal prometheus.Counter
	ColdMessagesTotal   prometheus.Counter
	SignalsOpened       *prometheus.CounterVec // labels: pattern
	Resolutions         *prometheus.CounterVec // labels: result
	SignalPending       prometheus.Gauge       // 0=idle, 1=pending
	FetchDuration       prometheus.Histogram
}

// NewMetrics creates and registers all metrics on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bacbo_ticks_total",
			Help: "Primary ticks executed",
		}),
		NewRoundsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bacbo_new_rounds_total",
			Help: "Ticks that observed a new round",
		}),
		FetchFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bacbo_fetch_failures_total",
			Help: "Ticks skipped because the feed could not be fetched or parsed",
		}),
		NotifyFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bacbo_notify_failures_total",
			Help: "Notifications that could not be delivered",
		}),
		ColdMessagesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bacbo_cold_messages_total",
			Help: "Idle heartbeat messages sent",
		}),
		SignalsOpened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bacbo_signals_opened_total",
			Help: "Signals opened by pattern",
		}, []string{"pattern"}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bacbo_resolutions_total",
			Help: "Resolved signals by result",
		}, []string{"result"}),
		SignalPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bacbo_signal_pending",
			Help: "1 while a signal awaits resolution",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bacbo_fetch_duration_seconds",
			Help:    "Feed fetch latency",
			Buckets: prometheus.DefBuckets,
		}),
	}

	m.Registry.MustRegister(
		m.TicksTotal,
		m.NewRoundsTotal,
		m.FetchFailuresTotal,
		m.NotifyFailuresTotal,
		m.ColdMessagesTotal,
		m.SignalsOpened,
		m.Resolutions,
		m.SignalPending,
		m.FetchDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
