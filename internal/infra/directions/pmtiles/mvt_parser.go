package pmtiles

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
)

// PathSegment is a walkable line extracted from a vector tile
type PathSegment struct {
	Points []orb.Point
	Class  string // e.g. "footway", "path", "residential"
	Name   string
}

// nonWalkable lists transportation classes pedestrians may not use
//
//nolint:gochecknoglobals
var nonWalkable = map[string]struct{}{
	"motorway":      {},
	"motorway_link": {},
	"trunk":         {},
	"trunk_link":    {},
	"rail":          {},
	"transit":       {},
	"ferry":         {},
	"aerialway":     {},
}

// TileParser extracts walkable segments from MVT tiles
type TileParser struct {
	layerName string
}

// NewTileParser creates a parser reading the given transportation layer
func NewTileParser(layerName string) *TileParser {
	return &TileParser{layerName: layerName}
}

// Parse decodes a (possibly gzipped) MVT tile and returns its walkable segments
// in WGS84 coordinates.
func (p *TileParser) Parse(data []byte, tile maptile.Tile) ([]PathSegment, error) {
	layers, err := mvt.UnmarshalGzipped(data)
	if err != nil {
		layers, err = mvt.Unmarshal(data)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	var layer *mvt.Layer
	for _, l := range layers {
		if l.Name == p.layerName {
			layer = l

			break
		}
	}
	if layer == nil {
		return []PathSegment{}, nil
	}

	layer.ProjectToWGS84(tile)

	segments := make([]PathSegment, 0, len(layer.Features))
	for _, feature := range layer.Features {
		class := stringProperty(feature, "class", "highway", "type")
		if _, blocked := nonWalkable[class]; blocked {
			continue
		}
		if access := stringProperty(feature, "access"); access == "no" || access == "private" {
			continue
		}

		for _, line := range lines(feature.Geometry) {
			segments = append(segments, PathSegment{
				Points: line,
				Class:  class,
				Name:   stringProperty(feature, "name", "name:latin", "name_en"),
			})
		}
	}

	return segments, nil
}

// lines returns the line parts of a geometry. MultiLineString parts are kept
// apart so that disjoint parts are not joined by a phantom edge.
func lines(g orb.Geometry) [][]orb.Point {
	switch geom := g.(type) {
	case orb.LineString:
		if len(geom) < 2 {
			return nil
		}

		return [][]orb.Point{append([]orb.Point(nil), geom...)}
	case orb.MultiLineString:
		out := make([][]orb.Point, 0, len(geom))
		for _, ls := range geom {
			if len(ls) >= 2 {
				out = append(out, append([]orb.Point(nil), ls...))
			}
		}

		return out
	default:
		return nil
	}
}

func stringProperty(feature *geojson.Feature, keys ...string) string {
	for _, key := range keys {
		if val, ok := feature.Properties[key]; ok {
			if str, ok := val.(string); ok {
				return str
			}
		}
	}

	return ""
}
