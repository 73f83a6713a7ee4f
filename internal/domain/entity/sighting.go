package entity

import "time"

// Sighting is an observation of an animal reported by a user.
type Sighting struct {
	ID          string     `json:"id"`
	SpeciesID   string     `json:"species_id"`
	SpeciesName string     `json:"species_name,omitempty"`
	Coordinate  Coordinate `json:"coordinate"`
	ObservedAt  time.Time  `json:"observed_at"`
	Note        string     `json:"note,omitempty"`
	IsPublic    bool       `json:"is_public"`
}

// Hotspot is a High Volume Area derived from nearby sightings.
type Hotspot struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Coordinate   Coordinate `json:"coordinate"`
	DensityScore float64    `json:"density_score"`
}
