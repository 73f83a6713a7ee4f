package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wildnav/config"
	deliverycontext "wildnav/internal/delivery/context"
	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"
	"wildnav/internal/spatial"
	"wildnav/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const (
	defaultClusterRadiusMiles = 0.1
	defaultClusterMinPoints   = 3
)

// HotspotServiceParams holds dependencies for HotspotService, injected by Fx.
type HotspotServiceParams struct {
	fx.In

	Config  *config.Config
	Fetcher service.SightingFetcher
	Metrics service.MetricsRecorder `optional:"true"`
	Logger  *slog.Logger
}

type hotspotService struct {
	fetcher     service.SightingFetcher
	metrics     service.MetricsRecorder
	logger      *slog.Logger
	radiusMiles float64
	minPoints   int
	now         func() time.Time

	mu     sync.RWMutex
	latest *usecase.HotspotSet
}

// NewHotspotService creates a new hotspot service instance
func NewHotspotService(params HotspotServiceParams) usecase.HotspotUsecase {
	radius := defaultClusterRadiusMiles
	minPoints := defaultClusterMinPoints
	if cfg := params.Config.Clustering; cfg != nil {
		if cfg.RadiusMiles > 0 {
			radius = cfg.RadiusMiles
		}
		if cfg.MinPoints > 0 {
			minPoints = cfg.MinPoints
		}
	}

	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &hotspotService{
		fetcher:     params.Fetcher,
		metrics:     metrics,
		logger:      params.Logger,
		radiusMiles: radius,
		minPoints:   minPoints,
		now:         time.Now,
	}
}

// Hotspots fetches the sightings of query and clusters them
func (s *hotspotService) Hotspots(ctx context.Context, query *usecase.HotspotQuery) (*usecase.HotspotSet, error) {
	_, set, err := s.compute(ctx, query)
	if err != nil {
		return nil, err
	}

	return set, nil
}

// Waypoints returns the hotspots of query followed by its sightings
func (s *hotspotService) Waypoints(ctx context.Context, query *usecase.HotspotQuery) ([]entity.Waypoint, error) {
	sightings, set, err := s.compute(ctx, query)
	if err != nil {
		return nil, err
	}

	waypoints := entity.NewWaypointSet()
	for _, h := range set.Hotspots {
		waypoints.Add(entity.NewHotspotWaypoint(h))
	}
	for _, sighting := range sightings {
		if !sighting.Coordinate.Valid() {
			continue
		}
		waypoints.Add(entity.NewSightingWaypoint(sighting))
	}

	return waypoints.Items(), nil
}

func (s *hotspotService) compute(ctx context.Context, query *usecase.HotspotQuery) ([]entity.Sighting, *usecase.HotspotSet, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if query == nil {
		return nil, nil, domainerrors.ErrInvalidBoundingBox.WithDetails("bounding box is required")
	}
	if err := query.Box.Validate(); err != nil {
		return nil, nil, domainerrors.ErrInvalidBoundingBox.WithDetails(err.Error())
	}
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return nil, nil, domainerrors.ErrInvalidTimeWindow.WithDetails("from must not be after to")
	}

	radius, minPoints := s.radiusMiles, s.minPoints
	if query.RadiusMiles != nil {
		if *query.RadiusMiles <= 0 {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
		}
		radius = *query.RadiusMiles
	}
	if query.MinPoints != nil {
		if *query.MinPoints <= 0 {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails("min points must be positive")
		}
		minPoints = *query.MinPoints
	}

	sightings, err := s.fetcher.GetSightings(ctx, query.SightingQuery)
	if err != nil {
		// The previous set stays in place and no clustering runs.
		logger.Warn("Failed to fetch sightings",
			slog.String("bbox", query.Box.String()),
			slog.Any("error", err),
		)

		return nil, nil, domainerrors.ErrSightingFetchFailed.WithDetails(err.Error())
	}

	start := s.now()
	hotspots := spatial.NewClusterer(radius, minPoints).Hotspots(sightings)
	elapsed := s.now().Sub(start)
	s.metrics.ObserveClustering(len(sightings), len(hotspots), elapsed)

	logger.Debug("Clustered sightings",
		slog.Int("sightings", len(sightings)),
		slog.Int("hotspots", len(hotspots)),
		slog.Float64("radius_miles", radius),
		slog.Int("min_points", minPoints),
	)

	set := &usecase.HotspotSet{
		Hotspots:      hotspots,
		SightingCount: len(sightings),
		BoundingBox:   query.Box.String(),
		RadiusMiles:   radius,
		MinPoints:     minPoints,
		ComputedAt:    s.now(),
	}

	s.mu.Lock()
	s.latest = set
	s.mu.Unlock()

	return sightings, set, nil
}

// Latest returns the last computed set
func (s *hotspotService) Latest() *usecase.HotspotSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latest
}

// Layer renders the latest set as GeoJSON points carrying name and density
func (s *hotspotService) Layer() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	latest := s.Latest()
	if latest == nil {
		return fc
	}

	for _, h := range latest.Hotspots {
		f := geojson.NewFeature(h.Coordinate.Point())
		f.ID = h.ID
		f.Properties["name"] = h.Name
		f.Properties["density_score"] = h.DensityScore
		fc.Append(f)
	}

	return fc
}
