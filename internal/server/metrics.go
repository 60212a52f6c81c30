package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spigell/resume-relevance/internal/scoring"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume_relevance"

// metrics lives on its own registry so every Server can be built in tests
// without duplicate registration panics.
type metrics struct {
	registry *prometheus.Registry

	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	outcomes           *prometheus.CounterVec
	totalScore         prometheus.Histogram
	extractionFailures *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scored_job_descriptions_total",
				Help:      "Total number of scored job descriptions by status",
			},
			[]string{"status"},
		),
		totalScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "total_score",
				Help:      "Distribution of total relevance scores",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
		),
		extractionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "extraction_failures_total",
				Help:      "Total number of documents whose text could not be extracted",
			},
			[]string{"format"},
		),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observeRequest(route, method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *metrics) observeOutcomes(outcomes []scoring.Outcome) {
	for _, o := range outcomes {
		if o.Err != nil {
			m.outcomes.WithLabelValues("error").Inc()
			continue
		}
		m.outcomes.WithLabelValues("ok").Inc()
		m.totalScore.Observe(o.Result.TotalScore)
	}
}

func (m *metrics) observeExtractionFailure(format string) {
	format = strings.TrimPrefix(format, ".")
	if format == "" {
		format = "unknown"
	}
	m.extractionFailures.WithLabelValues(format).Inc()
}
