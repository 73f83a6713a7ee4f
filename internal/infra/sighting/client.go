// Package sighting fetches wildlife sightings from the sighting backend.
package sighting

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wildnav/config"
	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const serviceName = "sighting backend"

// sightingPayload is the backend's wire form of a sighting
type sightingPayload struct {
	ID          string    `json:"id"`
	SpeciesID   string    `json:"species_id"`
	SpeciesName string    `json:"species_name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ObservedAt  time.Time `json:"observed_at"`
	Note        string    `json:"note"`
	IsPublic    bool      `json:"is_public"`
}

type listResponse struct {
	Sightings []sightingPayload `json:"sightings"`
}

// client implements service.SightingFetcher over HTTP
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for the sighting client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a sighting backend client
func NewClient(params ClientParams) (service.SightingFetcher, error) {
	cfg := params.Config.Sightings
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("sightings base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}, nil
}

// GetSightings lists sightings in the query box. Entries with coordinates
// outside WGS84 ranges are dropped.
func (c *client) GetSightings(ctx context.Context, query service.SightingQuery) ([]entity.Sighting, error) {
	params := url.Values{}
	params.Set("bbox", query.Box.String())
	if query.From != nil {
		params.Set("from", query.From.UTC().Format(time.RFC3339))
	}
	if query.To != nil {
		params.Set("to", query.To.UTC().Format(time.RFC3339))
	}
	if len(query.SpeciesIDs) > 0 {
		params.Set("species", strings.Join(query.SpeciesIDs, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sightings?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(errors.WithStack(err), serviceName)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.NewUpstreamError(errors.Errorf("unexpected status code: %d", resp.StatusCode), serviceName)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domainerrors.NewUpstreamError(errors.Wrap(err, "decode response"), serviceName)
	}

	sightings := make([]entity.Sighting, 0, len(payload.Sightings))
	for _, p := range payload.Sightings {
		coord := entity.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
		if !coord.Valid() {
			c.logger.Debug("Dropping sighting with invalid coordinate",
				slog.String("sighting_id", p.ID),
				slog.String("coordinate", coord.String()),
			)

			continue
		}

		sightings = append(sightings, entity.Sighting{
			ID:          p.ID,
			SpeciesID:   p.SpeciesID,
			SpeciesName: p.SpeciesName,
			Coordinate:  coord,
			ObservedAt:  p.ObservedAt,
			Note:        p.Note,
			IsPublic:    p.IsPublic,
		})
	}

	return sightings, nil
}

// Module provides the sighting client FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewClient),
)
