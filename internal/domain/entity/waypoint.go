package entity

import (
	"encoding/json"
)

// WaypointKind tags the variant of a Waypoint.
type WaypointKind string

const (
	WaypointKindSighting WaypointKind = "sighting"
	WaypointKindHotspot  WaypointKind = "hotspot"
)

// Waypoint is a navigable point of interest. The set of implementations is
// closed: SightingWaypoint and HotspotWaypoint.
type Waypoint interface {
	// Key is the stable identity, "s-<id>" for sightings and "h-<id>" for hotspots.
	Key() string
	Kind() WaypointKind
	Location() Coordinate
	Title() string

	sealed()
}

// SightingWaypoint wraps a Sighting as a Waypoint.
type SightingWaypoint struct {
	Sighting Sighting
}

// HotspotWaypoint wraps a Hotspot as a Waypoint.
type HotspotWaypoint struct {
	Hotspot Hotspot
}

func NewSightingWaypoint(s Sighting) SightingWaypoint { return SightingWaypoint{Sighting: s} }

func NewHotspotWaypoint(h Hotspot) HotspotWaypoint { return HotspotWaypoint{Hotspot: h} }

func (w SightingWaypoint) Key() string          { return "s-" + w.Sighting.ID }
func (w SightingWaypoint) Kind() WaypointKind   { return WaypointKindSighting }
func (w SightingWaypoint) Location() Coordinate { return w.Sighting.Coordinate }
func (w SightingWaypoint) sealed()              {}

func (w SightingWaypoint) Title() string {
	if w.Sighting.SpeciesName != "" {
		return w.Sighting.SpeciesName
	}

	return "Sighting " + w.Sighting.ID
}

func (w SightingWaypoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(ViewOf(w))
}

func (w HotspotWaypoint) Key() string          { return "h-" + w.Hotspot.ID }
func (w HotspotWaypoint) Kind() WaypointKind   { return WaypointKindHotspot }
func (w HotspotWaypoint) Location() Coordinate { return w.Hotspot.Coordinate }
func (w HotspotWaypoint) Title() string        { return w.Hotspot.Name }
func (w HotspotWaypoint) sealed()              {}

func (w HotspotWaypoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(ViewOf(w))
}

// WaypointView is the flat wire representation shared by both variants.
type WaypointView struct {
	Key       string       `json:"key"`
	Kind      WaypointKind `json:"kind"`
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
}

// ViewOf flattens a waypoint. A nil waypoint yields the zero view.
func ViewOf(w Waypoint) WaypointView {
	if w == nil {
		return WaypointView{}
	}

	view := WaypointView{
		Key:       w.Key(),
		Kind:      w.Kind(),
		Title:     w.Title(),
		Latitude:  w.Location().Latitude,
		Longitude: w.Location().Longitude,
	}

	switch v := w.(type) {
	case SightingWaypoint:
		view.ID = v.Sighting.ID
	case HotspotWaypoint:
		view.ID = v.Hotspot.ID
	}

	return view
}

// WaypointSet is an insertion-ordered set of waypoints keyed by identity.
type WaypointSet struct {
	items []Waypoint
	index map[string]int
}

// NewWaypointSet builds a set, dropping duplicate identities.
func NewWaypointSet(waypoints ...Waypoint) *WaypointSet {
	set := &WaypointSet{index: make(map[string]int)}
	for _, w := range waypoints {
		set.Add(w)
	}

	return set
}

// Add inserts w. Adding an identity already present is a no-op.
func (s *WaypointSet) Add(w Waypoint) bool {
	if w == nil {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[w.Key()]; ok {
		return false
	}

	s.index[w.Key()] = len(s.items)
	s.items = append(s.items, w)

	return true
}

// Remove deletes the waypoint with the given identity. Removing an absent one is a no-op.
func (s *WaypointSet) Remove(key string) bool {
	pos, ok := s.index[key]
	if !ok {
		return false
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, key)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].Key()] = i
	}

	return true
}

func (s *WaypointSet) Contains(key string) bool {
	_, ok := s.index[key]

	return ok
}

func (s *WaypointSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the waypoints in insertion order.
func (s *WaypointSet) Items() []Waypoint {
	out := make([]Waypoint, len(s.items))
	copy(out, s.items)

	return out
}
