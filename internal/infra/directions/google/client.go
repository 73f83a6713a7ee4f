// Package google implements walking directions on top of the Google Routes API.
package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wildnav/config"
	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twpayne/go-polyline"
)

const (
	DefaultBaseURL = "https://routes.googleapis.com"
	computeRoutes  = "/directions/v2:computeRoutes"
	serviceName    = "google routes"

	fieldMask = "routes.distanceMeters,routes.duration,routes.polyline.encodedPolyline," +
		"routes.legs.steps.distanceMeters,routes.legs.steps.navigationInstruction.instructions"
)

// client implements service.DirectionsProvider using the Routes API computeRoutes call.
type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Routes API client from configuration.
func NewClient(cfg *config.GoogleDirectionsConfig, logger *slog.Logger) (service.DirectionsProvider, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("google directions api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type waypoint struct {
	Location struct {
		LatLng latLng `json:"latLng"`
	} `json:"location"`
}

type computeRoutesRequest struct {
	Origin           waypoint `json:"origin"`
	Destination      waypoint `json:"destination"`
	TravelMode       string   `json:"travelMode"`
	PolylineEncoding string   `json:"polylineEncoding"`
}

type computeRoutesResponse struct {
	Routes []struct {
		DistanceMeters float64 `json:"distanceMeters"`
		Duration       string  `json:"duration"`
		Polyline       struct {
			EncodedPolyline string `json:"encodedPolyline"`
		} `json:"polyline"`
		Legs []struct {
			Steps []struct {
				DistanceMeters        float64 `json:"distanceMeters"`
				NavigationInstruction struct {
					Instructions string `json:"instructions"`
				} `json:"navigationInstruction"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func newWaypoint(c entity.Coordinate) waypoint {
	var wp waypoint
	wp.Location.LatLng = latLng{Latitude: c.Latitude, Longitude: c.Longitude}

	return wp
}

func travelMode(mode service.TravelMode) string {
	switch mode {
	case service.TravelModeWalking:
		return "WALK"
	default:
		return strings.ToUpper(string(mode))
	}
}

// GetRoute calls computeRoutes and converts the first returned route.
func (c *client) GetRoute(ctx context.Context, from, to entity.Coordinate, mode service.TravelMode) (*service.Directions, error) {
	if !from.Valid() || !to.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(fmt.Sprintf("%s -> %s", from, to))
	}

	body, err := json.Marshal(computeRoutesRequest{
		Origin:           newWaypoint(from),
		Destination:      newWaypoint(to),
		TravelMode:       travelMode(mode),
		PolylineEncoding: "ENCODED_POLYLINE",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+computeRoutes, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(errors.WithStack(err), serviceName)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Routes API request rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)

		return nil, domainerrors.NewUpstreamError(errors.Errorf("unexpected status code: %d", resp.StatusCode), serviceName)
	}

	var payload computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domainerrors.NewUpstreamError(errors.Wrap(err, "decode response"), serviceName)
	}
	if len(payload.Routes) == 0 {
		return nil, domainerrors.ErrNoPathFound.WithDetails(fmt.Sprintf("%s -> %s", from, to))
	}

	route := payload.Routes[0]

	path, err := decodePolyline(route.Polyline.EncodedPolyline)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, serviceName)
	}
	if len(path) == 0 {
		path = []entity.Coordinate{from, to}
	}

	duration, err := parseDuration(route.Duration)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, serviceName)
	}

	var steps []entity.RouteStep
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			steps = append(steps, entity.RouteStep{
				Instruction:    step.NavigationInstruction.Instructions,
				DistanceMeters: step.DistanceMeters,
			})
		}
	}

	return &service.Directions{
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: duration,
		Polyline:        path,
		Steps:           steps,
	}, nil
}

// decodePolyline decodes an encoded polyline into coordinates.
func decodePolyline(encoded string) ([]entity.Coordinate, error) {
	if encoded == "" {
		return nil, nil
	}

	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "decode polyline")
	}
	if len(rest) != 0 {
		return nil, errors.Errorf("decode polyline: %d trailing bytes", len(rest))
	}

	path := make([]entity.Coordinate, len(coords))
	for i, coord := range coords {
		path[i] = entity.Coordinate{Latitude: coord[0], Longitude: coord[1]}
	}

	return path, nil
}

// parseDuration parses the protobuf JSON duration form, e.g. "123s" or "1.5s".
func parseDuration(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	if !strings.HasSuffix(raw, "s") {
		return 0, errors.Errorf("invalid duration %q", raw)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSuffix(raw, "s"), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid duration %q", raw)
	}

	return seconds, nil
}
