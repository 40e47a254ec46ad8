package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shelter"

// Metrics agrupa los collectors del servicio sobre un registry propio
// (cada router de test tiene el suyo, sin colisiones de registro global).
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	predictions  *prometheus.CounterVec
	trainings    *prometheus.CounterVec
	cascades     prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		predictions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "predictions",
			Name:      "items_total",
			Help:      "Per-animal predictions by outcome (ok, not_trained, error)",
		}, []string{"outcome"}),
		trainings: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "predictions",
			Name:      "training_runs_total",
			Help:      "Model training runs by model and result (trained, insufficient_data, error)",
		}, []string{"model", "result"}),
		cascades: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "volunteers",
			Name:      "reference_cleanups_total",
			Help:      "Dangling volunteer references removed from animals",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) Prediction(outcome string) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Training(model, result string) {
	if m == nil {
		return
	}
	m.trainings.WithLabelValues(model, result).Inc()
}

func (m *Metrics) ReferencesCleaned(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.cascades.Add(float64(n))
}
