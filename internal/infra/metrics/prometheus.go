// Package metrics exposes prometheus collectors for the navigation engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"wildnav/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "wildnav"

// Recorder implements service.MetricsRecorder on a private registry
type Recorder struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	directionsRequests *prometheus.CounterVec
	directionsDuration *prometheus.HistogramVec
	directionsCache    *prometheus.CounterVec

	clusteringRuns     prometheus.Counter
	clusteringPoints   prometheus.Histogram
	clusteringHotspots prometheus.Gauge
	clusteringDuration prometheus.Histogram

	navigationEvents *prometheus.CounterVec
	activeSessions   prometheus.Gauge
}

// NewRecorder registers all collectors, plus the Go and process collectors
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),

		directionsRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "directions",
			Name:      "requests_total",
			Help:      "Directions requests by provider and outcome",
		}, []string{"provider", "outcome"}),
		directionsDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "directions",
			Name:      "request_duration_seconds",
			Help:      "Directions request latency in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"provider"}),
		directionsCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "directions",
			Name:      "cache_lookups_total",
			Help:      "Directions cache lookups by result",
		}, []string{"result"}),

		clusteringRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clustering",
			Name:      "runs_total",
			Help:      "Hotspot clustering passes",
		}),
		clusteringPoints: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "clustering",
			Name:      "input_points",
			Help:      "Sightings fed into a clustering pass",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 7),
		}),
		clusteringHotspots: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "clustering",
			Name:      "hotspots",
			Help:      "Hotspots produced by the latest clustering pass",
		}),
		clusteringDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "clustering",
			Name:      "duration_seconds",
			Help:      "Clustering pass latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),

		navigationEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "navigation",
			Name:      "events_total",
			Help:      "Navigation events by type",
		}, []string{"type"}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "navigation",
			Name:      "active_sessions",
			Help:      "Navigation sessions currently held in memory",
		}),
	}
}

func (r *Recorder) ObserveDirections(provider string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.directionsRequests.WithLabelValues(provider, outcome).Inc()
	r.directionsDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveDirectionsCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.directionsCache.WithLabelValues(result).Inc()
}

func (r *Recorder) ObserveClustering(points, hotspots int, elapsed time.Duration) {
	r.clusteringRuns.Inc()
	r.clusteringPoints.Observe(float64(points))
	r.clusteringHotspots.Set(float64(hotspots))
	r.clusteringDuration.Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveNavigationEvent(eventType service.NavigationEventType) {
	r.navigationEvents.WithLabelValues(string(eventType)).Inc()
}

func (r *Recorder) SetActiveSessions(n int) {
	r.activeSessions.Set(float64(n))
}

// Handler serves the registry in the prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware records request count and latency per route pattern
func (r *Recorder) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			r.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
			r.httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRecorder,
		func(r *Recorder) service.MetricsRecorder { return r },
	),
)
