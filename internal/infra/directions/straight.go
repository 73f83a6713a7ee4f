package directions

import (
	"context"
	"fmt"

	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"
	"wildnav/internal/geo"
)

// DefaultWalkingSpeedKmh is used when no walking speed is configured.
const DefaultWalkingSpeedKmh = 5.0

// straightLineProvider answers every request with the great-circle segment
// between the two coordinates. It never fails for valid input and backs the
// other providers when no path network is available.
type straightLineProvider struct {
	metersPerSecond float64
}

// NewStraightLineProvider creates a provider walking at the given speed.
func NewStraightLineProvider(walkingSpeedKmh float64) service.DirectionsProvider {
	if walkingSpeedKmh <= 0 {
		walkingSpeedKmh = DefaultWalkingSpeedKmh
	}

	return &straightLineProvider{metersPerSecond: walkingSpeedKmh * 1000 / 3600}
}

// GetRoute returns a two-point polyline with a single step.
func (p *straightLineProvider) GetRoute(ctx context.Context, from, to entity.Coordinate, mode service.TravelMode) (*service.Directions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !from.Valid() || !to.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(fmt.Sprintf("%s -> %s", from, to))
	}

	distance := geo.DistanceMeters(from, to)

	return &service.Directions{
		DistanceMeters:  distance,
		DurationSeconds: distance / p.metersPerSecond,
		Polyline:        []entity.Coordinate{from, to},
		Steps: []entity.RouteStep{{
			Instruction:    fmt.Sprintf("Head %s", compassPoint(geo.BearingDegrees(from, to))),
			DistanceMeters: distance,
		}},
	}, nil
}

var compassPoints = [...]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

// compassPoint names the eight-wind direction closest to a bearing in [0, 360).
func compassPoint(bearing float64) string {
	idx := int((geo.NormalizeDegrees(bearing)+22.5)/45) % len(compassPoints)

	return compassPoints[idx]
}
