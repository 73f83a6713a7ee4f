package service

import (
	"context"
	"time"

	"wildnav/internal/domain/entity"
)

// SightingQuery selects sightings inside a bounding box
type SightingQuery struct {
	Box        entity.BoundingBox
	From       *time.Time // optional lower bound of observedAt
	To         *time.Time // optional upper bound of observedAt
	SpeciesIDs []string   // optional species filter
}

// SightingFetcher retrieves sightings from the sighting backend
type SightingFetcher interface {
	GetSightings(ctx context.Context, query SightingQuery) ([]entity.Sighting, error)
}
