package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the preview counters on a private registry so several servers
// can run in one process.
type Metrics struct {
	registry *prometheus.Registry
	renders  *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldgen",
			Name:      "renders_total",
			Help:      "Rendered preview pages by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fieldgen",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering preview pages.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Observe records one render.
func (m *Metrics) Observe(started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.renders.WithLabelValues(outcome).Inc()
	m.duration.Observe(time.Since(started).Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
