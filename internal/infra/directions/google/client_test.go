package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"

	"wildnav/config"
	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"
)

var (
	origin      = entity.Coordinate{Latitude: 25.03301, Longitude: 121.56541}
	destination = entity.Coordinate{Latitude: 25.03401, Longitude: 121.56641}
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.DirectionsProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(&config.GoogleDirectionsConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return c
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&config.GoogleDirectionsConfig{}, slog.Default())
	assert.Error(t, err)

	_, err = NewClient(nil, slog.Default())
	assert.Error(t, err)
}

func TestClient_GetRoute(t *testing.T) {
	encoded := string(polyline.EncodeCoords([][]float64{
		{origin.Latitude, origin.Longitude},
		{25.03351, 121.56541},
		{destination.Latitude, destination.Longitude},
	}))

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, computeRoutes, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, fieldMask, r.Header.Get("X-Goog-FieldMask"))

		var req computeRoutesRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "WALK", req.TravelMode)
		assert.Equal(t, origin.Latitude, req.Origin.Location.LatLng.Latitude)
		assert.Equal(t, destination.Longitude, req.Destination.Location.LatLng.Longitude)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"routes": [{
				"distanceMeters": 152,
				"duration": "118s",
				"polyline": {"encodedPolyline": "`+encoded+`"},
				"legs": [{"steps": [
					{"distanceMeters": 55, "navigationInstruction": {"instructions": "Head north"}},
					{"distanceMeters": 97, "navigationInstruction": {"instructions": "Turn right"}}
				]}]
			}]
		}`)
	})

	dirs, err := c.GetRoute(context.Background(), origin, destination, service.TravelModeWalking)
	require.NoError(t, err)

	assert.InDelta(t, 152, dirs.DistanceMeters, 1e-9)
	assert.InDelta(t, 118, dirs.DurationSeconds, 1e-9)
	require.Len(t, dirs.Polyline, 3)
	assert.InDelta(t, origin.Latitude, dirs.Polyline[0].Latitude, 1e-5)
	assert.InDelta(t, destination.Longitude, dirs.Polyline[2].Longitude, 1e-5)
	require.Len(t, dirs.Steps, 2)
	assert.Equal(t, "Turn right", dirs.Steps[1].Instruction)
	assert.InDelta(t, 97, dirs.Steps[1].DistanceMeters, 1e-9)
}

func TestClient_GetRoute_ErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403}}`, http.StatusForbidden)
	})

	_, err := c.GetRoute(context.Background(), origin, destination, service.TravelModeWalking)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}

func TestClient_GetRoute_NoRoutes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	_, err := c.GetRoute(context.Background(), origin, destination, service.TravelModeWalking)
	assert.ErrorIs(t, err, domainerrors.ErrNoPathFound)
}

func TestClient_GetRoute_InvalidCoordinate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.GetRoute(context.Background(), entity.Coordinate{Latitude: 100}, destination, service.TravelModeWalking)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestClient_GetRoute_MissingPolylineFallsBackToEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"routes":[{"distanceMeters":10,"duration":"8s"}]}`)
	})

	dirs, err := c.GetRoute(context.Background(), origin, destination, service.TravelModeWalking)
	require.NoError(t, err)
	assert.Equal(t, []entity.Coordinate{origin, destination}, dirs.Polyline)
	assert.Empty(t, dirs.Steps)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		wantErr  bool
	}{
		{"", 0, false},
		{"0s", 0, false},
		{"123s", 123, false},
		{"1.5s", 1.5, false},
		{"12", 0, true},
		{"abcs", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseDuration(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}
