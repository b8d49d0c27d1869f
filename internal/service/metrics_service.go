package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation.
type MetricsService struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	cacheLatency       prometheus.Histogram
	cacheWrite         prometheus.Histogram
	cacheHitRatio      prometheus.Gauge
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	viewRecomputations *prometheus.CounterVec
	viewSize           *prometheus.HistogramVec
	supersededFetches  prometheus.Counter
	documentJobs       *prometheus.HistogramVec
	documents          *prometheus.CounterVec
	wizardTransitions  *prometheus.CounterVec

	cacheHitCount  uint64
	cacheMissCount uint64
}

// NewMetricsService registers the collectors of the dashboard API.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	m := &MetricsService{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		cacheLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cache_latency_seconds",
			Help:    "Latency for cache lookups",
			Buckets: prometheus.DefBuckets,
		}),
		cacheWrite: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cache_write_seconds",
			Help:    "Latency for cache set operations",
			Buckets: prometheus.DefBuckets,
		}),
		cacheHitRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cache_hit_ratio",
			Help: "Ratio of cache hits to total cache lookups",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total cache hits",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total cache misses",
		}),
		viewRecomputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "view_recomputations_total",
			Help: "Derived view recomputations by view",
		}, []string{"view"}),
		viewSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "view_result_size",
			Help:    "Number of records in a derived view before pagination",
			Buckets: []float64{0, 1, 7, 25, 100, 500, 1000, 2000},
		}, []string{"view"}),
		supersededFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_fetches_superseded_total",
			Help: "Attendance fetches cancelled by a newer fetch of the same session",
		}),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "documents_generated_total",
			Help: "Generated documents by kind",
		}, []string{"kind"}),
		documentJobs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "document_job_duration_seconds",
			Help:    "Background document job runs by kind and outcome",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind", "outcome"}),
		wizardTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wizard_transitions_total",
			Help: "Enrollment wizard transitions by action and outcome",
		}, []string{"action", "outcome"}),
	}

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(
		m.requestDuration, m.requestTotal,
		m.cacheLatency, m.cacheWrite,
		m.cacheHitRatio, m.cacheHits, m.cacheMisses,
		m.viewRecomputations, m.viewSize, m.supersededFetches, m.documents, m.documentJobs, m.wizardTransitions,
		goroutines,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry exposes the underlying registry, mostly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records cache hit/miss metrics and updates hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	total := hits + atomic.LoadUint64(&m.cacheMissCount)
	if total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite tracks the duration for cache write operations.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// RecordViewRecomputation counts one derived view computation of size records.
func (m *MetricsService) RecordViewRecomputation(view string, size int) {
	if m == nil {
		return
	}
	m.viewRecomputations.WithLabelValues(view).Inc()
	m.viewSize.WithLabelValues(view).Observe(float64(size))
}

// RecordSupersededFetch counts a cancelled attendance fetch.
func (m *MetricsService) RecordSupersededFetch() {
	if m == nil {
		return
	}
	m.supersededFetches.Inc()
}

// RecordDocument counts a generated document.
func (m *MetricsService) RecordDocument(kind string) {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(kind).Inc()
}

// ObserveDocumentJob records one run of a background document job.
func (m *MetricsService) ObserveDocumentJob(kind string, took time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.documentJobs.WithLabelValues(kind, outcome).Observe(took.Seconds())
}

// RecordWizardTransition counts a wizard action and whether it was accepted.
func (m *MetricsService) RecordWizardTransition(action string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	m.wizardTransitions.WithLabelValues(action, outcome).Inc()
}
