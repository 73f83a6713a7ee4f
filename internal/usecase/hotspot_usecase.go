package usecase

import (
	"context"
	"time"

	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"

	"github.com/paulmach/orb/geojson"
)

// HotspotQuery selects the sightings to cluster and optionally overrides the
// configured clustering parameters
type HotspotQuery struct {
	service.SightingQuery
	RadiusMiles *float64 `json:"radius_miles,omitempty"`
	MinPoints   *int     `json:"min_points,omitempty"`
}

// HotspotSet is the result of one clustering pass
type HotspotSet struct {
	Hotspots      []entity.Hotspot `json:"hotspots"`
	SightingCount int              `json:"sighting_count"`
	BoundingBox   string           `json:"bounding_box"`
	RadiusMiles   float64          `json:"radius_miles"`
	MinPoints     int              `json:"min_points"`
	ComputedAt    time.Time        `json:"computed_at"`
}

// HotspotUsecase defines the interface for High Volume Area detection
type HotspotUsecase interface {
	// Hotspots fetches sightings and clusters them. On a fetch failure the previous
	// set is kept and ErrSightingFetchFailed is returned.
	Hotspots(ctx context.Context, query *HotspotQuery) (*HotspotSet, error)

	// Waypoints returns the hotspots followed by the raw sightings of the query as
	// navigable waypoints
	Waypoints(ctx context.Context, query *HotspotQuery) ([]entity.Waypoint, error)

	// Latest returns the last successfully computed set, nil before the first one
	Latest() *HotspotSet

	// Layer renders the latest set as a GeoJSON FeatureCollection for map display
	Layer() *geojson.FeatureCollection
}
