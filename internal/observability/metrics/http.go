package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServerMetrics owns the API's prometheus registry: generic HTTP
// request metrics plus domain counters for detections, simulations and
// recommendations.
type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	detectionsTotal      *prometheus.CounterVec
	detectedItems        *prometheus.HistogramVec
	referenceFoundTotal  *prometheus.CounterVec
	simulationsTotal     *prometheus.CounterVec
	overflowPlacements   *prometheus.CounterVec
	spaceEfficiency      *prometheus.HistogramVec
	recommendationsTotal *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "packing",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "packing",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "packing",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	detectionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "packing",
			Subsystem: "vision",
			Name:      "detections_total",
			Help:      "Total photo detections by status.",
		},
		[]string{"service", "status"},
	)
	detectedItems := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "packing",
			Subsystem: "vision",
			Name:      "detected_items",
			Help:      "Distribution of items detected per photo.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
		[]string{"service"},
	)
	referenceFoundTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "packing",
			Subsystem: "vision",
			Name:      "reference_found_total",
			Help:      "Total detections where a calibration reference was identified.",
		},
		[]string{"service", "found"},
	)
	simulationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "packing",
			Subsystem: "layout",
			Name:      "simulations_total",
			Help:      "Total packing simulations by status.",
		},
		[]string{"service", "status"},
	)
	overflowPlacements := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "packing",
			Subsystem: "layout",
			Name:      "overflow_placements_total",
			Help:      "Total item placements that spilled past the container bounds.",
		},
		[]string{"service", "strategy"},
	)
	spaceEfficiency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "packing",
			Subsystem: "layout",
			Name:      "space_efficiency_percent",
			Help:      "Distribution of space efficiency across generated layouts.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"service", "strategy"},
	)
	recommendationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "packing",
			Subsystem: "methods",
			Name:      "recommendations_total",
			Help:      "Total method recommendation requests by status.",
		},
		[]string{"service", "status"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		detectionsTotal,
		detectedItems,
		referenceFoundTotal,
		simulationsTotal,
		overflowPlacements,
		spaceEfficiency,
		recommendationsTotal,
	)

	return &HTTPServerMetrics{
		registry:             registry,
		requestTotal:         requestTotal,
		requestDuration:      requestDuration,
		requestInFlight:      requestInFlight,
		detectionsTotal:      detectionsTotal,
		detectedItems:        detectedItems,
		referenceFoundTotal:  referenceFoundTotal,
		simulationsTotal:     simulationsTotal,
		overflowPlacements:   overflowPlacements,
		spaceEfficiency:      spaceEfficiency,
		recommendationsTotal: recommendationsTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			r.URL.Path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

func (m *HTTPServerMetrics) RecordDetection(service, status string, itemCount int, referenceFound bool) {
	m.detectionsTotal.WithLabelValues(service, status).Inc()
	if status != "ok" {
		return
	}
	m.detectedItems.WithLabelValues(service).Observe(float64(itemCount))
	m.referenceFoundTotal.WithLabelValues(service, strconv.FormatBool(referenceFound)).Inc()
}

func (m *HTTPServerMetrics) RecordSimulation(service, status string) {
	m.simulationsTotal.WithLabelValues(service, status).Inc()
}

func (m *HTTPServerMetrics) RecordLayout(service, strategy string, efficiency float64, overflowCount int) {
	m.spaceEfficiency.WithLabelValues(service, strategy).Observe(efficiency)
	if overflowCount > 0 {
		m.overflowPlacements.WithLabelValues(service, strategy).Add(float64(overflowCount))
	}
}

func (m *HTTPServerMetrics) RecordRecommendation(service, status string) {
	m.recommendationsTotal.WithLabelValues(service, status).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
