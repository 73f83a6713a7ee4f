package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wildnav/internal/domain/service"
	"wildnav/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Directions(t *testing.T) {
	r := NewRecorder()

	r.ObserveDirections("google", 120*time.Millisecond, nil)
	r.ObserveDirections("google", 80*time.Millisecond, errors.New("quota"))
	r.ObserveDirections("pmtiles", 5*time.Millisecond, nil)
	r.ObserveDirectionsCache(true)
	r.ObserveDirectionsCache(false)
	r.ObserveDirectionsCache(false)

	assert.InDelta(t, 1, testutil.ToFloat64(r.directionsRequests.WithLabelValues("google", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.directionsRequests.WithLabelValues("google", "error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.directionsRequests.WithLabelValues("pmtiles", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.directionsCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.directionsCache.WithLabelValues("miss")), 0)
}

func TestRecorder_ClusteringAndNavigation(t *testing.T) {
	r := NewRecorder()

	r.ObserveClustering(250, 4, 3*time.Millisecond)
	r.ObserveClustering(10, 1, time.Millisecond)
	r.ObserveNavigationEvent(service.NavigationEventArrived)
	r.ObserveNavigationEvent(service.NavigationEventArrived)
	r.ObserveNavigationEvent(service.NavigationEventCompleted)
	r.SetActiveSessions(3)

	assert.InDelta(t, 2, testutil.ToFloat64(r.clusteringRuns), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.clusteringHotspots), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.navigationEvents.WithLabelValues("arrived")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.navigationEvents.WithLabelValues("completed")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(r.activeSessions), 0)
}

func TestRecorder_MiddlewareAndHandler(t *testing.T) {
	r := NewRecorder()

	e := echo.New()
	e.Use(r.Middleware())
	e.GET("/v1/sessions/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})
	e.GET("/metrics", echo.WrapHandler(r.Handler()))

	for _, path := range []string{"/v1/sessions/a", "/v1/sessions/b", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(r.httpRequestsTotal.WithLabelValues("GET", "/v1/sessions/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.httpRequestsTotal.WithLabelValues("GET", "/boom", "418")), 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "wildnav_http_requests_total"))
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}
