package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate is finite and inside the WGS84 ranges.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Point converts the coordinate to an orb point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// FromPoint converts an orb point back to a Coordinate.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}

// BoundingBox is an axis-aligned area given by its west/south/east/north edges.
type BoundingBox struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// ParseBoundingBox parses the "west,south,east,north" form used by the sighting backend.
func ParseBoundingBox(raw string) (BoundingBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return BoundingBox{}, errors.Errorf("bounding box %q must have 4 comma separated values", raw)
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BoundingBox{}, errors.Wrapf(err, "bounding box value %q", part)
		}
		values[i] = v
	}

	box := BoundingBox{West: values[0], South: values[1], East: values[2], North: values[3]}
	if err := box.Validate(); err != nil {
		return BoundingBox{}, err
	}

	return box, nil
}

// Validate checks ranges and edge ordering.
func (b BoundingBox) Validate() error {
	sw := Coordinate{Latitude: b.South, Longitude: b.West}
	ne := Coordinate{Latitude: b.North, Longitude: b.East}
	if !sw.Valid() || !ne.Valid() {
		return errors.New("bounding box is outside WGS84 ranges")
	}
	if b.West > b.East || b.South > b.North {
		return errors.New("bounding box edges are inverted")
	}

	return nil
}

// String renders the box in the "west,south,east,north" form.
func (b BoundingBox) String() string {
	return strings.Join([]string{
		strconv.FormatFloat(b.West, 'f', -1, 64),
		strconv.FormatFloat(b.South, 'f', -1, 64),
		strconv.FormatFloat(b.East, 'f', -1, 64),
		strconv.FormatFloat(b.North, 'f', -1, 64),
	}, ",")
}

// Bound converts the box to an orb.Bound.
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// Contains reports whether c lies inside the box, edges included.
func (b BoundingBox) Contains(c Coordinate) bool {
	return b.Bound().Contains(c.Point())
}
