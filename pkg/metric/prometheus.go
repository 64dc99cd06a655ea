package metric

import (
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PrometheusMetrics interface {
	Metrics
	Handler() http.Handler
}

// A metric name is bound to the label names of its first use.
// Later calls with another label set are dropped instead of panicking.
type prometheusRegistry struct {
	mutex      sync.Mutex
	impl       *prometheus.Registry
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

type prometheusMetrics struct {
	registry *prometheusRegistry
	labels   Labels
}

func NewPrometheusMetrics() PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return prometheusMetrics{
		registry: &prometheusRegistry{
			impl:       registry,
			counters:   make(map[string]*prometheus.CounterVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
		labels: Labels{},
	}
}

func (m prometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry.impl, promhttp.HandlerOpts{})
}

func (m prometheusMetrics) With(labels Labels) Metrics {
	if len(labels) == 0 {
		return m
	}

	merged := maps.Clone(m.labels)
	maps.Copy(merged, labels)
	return prometheusMetrics{registry: m.registry, labels: merged}
}

func (m prometheusMetrics) WithLabel(name, value string) Metrics {
	return m.With(Labels{name: value})
}

func (m prometheusMetrics) Increment(key string) {
	counter, err := m.registry.counter(key, m.labelNames()).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	counter.Inc()
}

func (m prometheusMetrics) Duration(key string, duration time.Duration) {
	histogram, err := m.registry.histogram(key, m.labelNames()).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	histogram.Observe(duration.Seconds())
}

func (m prometheusMetrics) labelNames() []string {
	return slices.Sorted(maps.Keys(m.labels))
}

func (r *prometheusRegistry) counter(key string, labelNames []string) *prometheus.CounterVec {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	counter, ok := r.counters[key]
	if ok {
		return counter
	}

	counter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: key,
		Help: strings.ReplaceAll(key, "_", " "),
	}, labelNames)
	r.impl.MustRegister(counter)
	r.counters[key] = counter
	return counter
}

func (r *prometheusRegistry) histogram(key string, labelNames []string) *prometheus.HistogramVec {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	histogram, ok := r.histograms[key]
	if ok {
		return histogram
	}

	histogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    key,
		Help:    strings.ReplaceAll(key, "_", " "),
		Buckets: prometheus.DefBuckets,
	}, labelNames)
	r.impl.MustRegister(histogram)
	r.histograms[key] = histogram
	return histogram
}
