// Package metrics exposes the bot's operational counters on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	AnnouncementsTotal    *prometheus.CounterVec
	GreetingsTotal        prometheus.Counter
	ClaimsTotal           prometheus.Counter
	CaptionFallbacksTotal prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.AnnouncementsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agendabot",
		Name:      "announcements_total",
		Help:      "Event announcement cycles by outcome",
	}, []string{"status"})
	m.GreetingsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agendabot",
		Name:      "greetings_total",
		Help:      "Daily greetings sent",
	})
	m.ClaimsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agendabot",
		Name:      "claims_total",
		Help:      "Successful event claims",
	})
	m.CaptionFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agendabot",
		Name:      "caption_fallbacks_total",
		Help:      "Announcements that used the deterministic fallback text",
	})

	m.registry.MustRegister(
		m.AnnouncementsTotal,
		m.GreetingsTotal,
		m.ClaimsTotal,
		m.CaptionFallbacksTotal,
	)

	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
