package service

import (
	"context"

	"wildnav/internal/domain/entity"
)

// TravelMode selects the kind of path a directions provider computes
type TravelMode string

const (
	TravelModeWalking TravelMode = "walking"
)

// Directions is the result of a single point-to-point directions request
type Directions struct {
	DistanceMeters  float64             `json:"distance_meters"`
	DurationSeconds float64             `json:"duration_seconds"`
	Polyline        []entity.Coordinate `json:"polyline"`
	Steps           []entity.RouteStep  `json:"steps"`
}

// DirectionsProvider computes a path between two coordinates
type DirectionsProvider interface {
	// GetRoute returns the path from one coordinate to another for the given travel mode
	GetRoute(ctx context.Context, from, to entity.Coordinate, mode TravelMode) (*Directions, error)
}
