package metric

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type prometheusMetrics struct {
	registry *prometheus.Registry

	mutex      *sync.Mutex
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec

	labels Labels
}

// NewPrometheusMetrics returns a Metrics implementation backed by a dedicated
// prometheus registry and the handler exposing it.
// Label names of a metric are fixed by its first use: observations with a
// different label set are dropped rather than failing the caller.
func NewPrometheusMetrics() (Metrics, http.Handler) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &prometheusMetrics{
		registry:   registry,
		mutex:      &sync.Mutex{},
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		histograms: make(map[string]*prometheus.HistogramVec),
		labels:     nil,
	}, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func (m *prometheusMetrics) With(labels Labels) Metrics {
	if len(labels) == 0 {
		return m
	}

	merged := make(Labels, len(m.labels)+len(labels))
	for name, value := range m.labels {
		merged[name] = value
	}
	for name, value := range labels {
		merged[name] = value
	}

	copied := *m
	copied.labels = merged
	return &copied
}

func (m *prometheusMetrics) Increment(key string) {
	m.Count(key, 1)
}

func (m *prometheusMetrics) Count(key string, value int) {
	m.mutex.Lock()
	vec, ok := m.counters[key]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{Name: key}, m.labelNames())
		if err := m.registry.Register(vec); err != nil {
			m.mutex.Unlock()
			return
		}
		m.counters[key] = vec
	}
	m.mutex.Unlock()

	counter, err := vec.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	counter.Add(float64(value))
}

func (m *prometheusMetrics) Gauge(key string, value int) {
	m.mutex.Lock()
	vec, ok := m.gauges[key]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: key}, m.labelNames())
		if err := m.registry.Register(vec); err != nil {
			m.mutex.Unlock()
			return
		}
		m.gauges[key] = vec
	}
	m.mutex.Unlock()

	gauge, err := vec.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	gauge.Set(float64(value))
}

func (m *prometheusMetrics) Duration(key string, duration time.Duration) {
	m.mutex.Lock()
	vec, ok := m.histograms[key]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    key,
			Buckets: prometheus.DefBuckets,
		}, m.labelNames())
		if err := m.registry.Register(vec); err != nil {
			m.mutex.Unlock()
			return
		}
		m.histograms[key] = vec
	}
	m.mutex.Unlock()

	histogram, err := vec.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	histogram.Observe(duration.Seconds())
}

func (m *prometheusMetrics) labelNames() []string {
	names := make([]string, 0, len(m.labels))
	for name := range m.labels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
