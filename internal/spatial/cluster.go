package spatial

import (
	"cmp"
	"fmt"
	"slices"

	"wildnav/internal/domain/constants"
	"wildnav/internal/domain/entity"
	"wildnav/internal/geo"

	"github.com/google/uuid"
)

// Cluster is an emitted hotspot together with the sightings it consumed.
type Cluster struct {
	Hotspot entity.Hotspot
	Members []entity.Sighting
}

// Clusterer groups sightings into hotspots with a greedy range-query sweep.
type Clusterer struct {
	radiusMiles float64
	minPoints   int
	newID       func(seed entity.Sighting) string
}

// ClustererOption configures a Clusterer.
type ClustererOption func(*Clusterer)

// WithIDGenerator replaces the hotspot id derivation. fn receives the sighting the
// hotspot was seeded from.
func WithIDGenerator(fn func(seed entity.Sighting) string) ClustererOption {
	return func(c *Clusterer) {
		c.newID = fn
	}
}

// NewClusterer returns a clusterer using a neighbourhood half-width of radiusMiles and
// requiring at least minPoints unused sightings per hotspot.
func NewClusterer(radiusMiles float64, minPoints int, opts ...ClustererOption) *Clusterer {
	c := &Clusterer{
		radiusMiles: max(radiusMiles, 0),
		minPoints:   max(minPoints, 1),
		newID:       HotspotID,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Cluster runs one clustering pass. Points are swept in (latitude, longitude, id) order.
// A sighting joins at most one hotspot; unclustered sightings are omitted. Sightings with
// invalid coordinates are ignored.
func (c *Clusterer) Cluster(sightings []entity.Sighting) []Cluster {
	pts := make([]Point, 0, len(sightings))
	for i, s := range sightings {
		if !s.Coordinate.Valid() {
			continue
		}
		pts = append(pts, Point{Coordinate: s.Coordinate, Ref: i})
	}

	slices.SortStableFunc(pts, func(a, b Point) int {
		return cmp.Or(
			cmp.Compare(a.Coordinate.Latitude, b.Coordinate.Latitude),
			cmp.Compare(a.Coordinate.Longitude, b.Coordinate.Longitude),
			cmp.Compare(sightings[a.Ref].ID, sightings[b.Ref].ID),
		)
	})

	index := NewIndex(pts)
	used := make(map[int]bool, len(pts))
	var clusters []Cluster

	index.Do(func(p Point) bool {
		if used[p.Ref] {
			return false
		}

		latHalf := geo.MilesToLatDegrees(c.radiusMiles)
		lonHalf := geo.MilesToLonDegrees(c.radiusMiles, p.Coordinate.Latitude)
		neighbours := index.RangeQuery(
			Range{Lo: p.Coordinate.Latitude - latHalf, Hi: p.Coordinate.Latitude + latHalf},
			Range{Lo: p.Coordinate.Longitude - lonHalf, Hi: p.Coordinate.Longitude + lonHalf},
		)

		members := make([]entity.Sighting, 0, len(neighbours))
		refs := make([]int, 0, len(neighbours))
		for _, n := range neighbours {
			if used[n.Ref] {
				continue
			}
			members = append(members, sightings[n.Ref])
			refs = append(refs, n.Ref)
		}

		if len(members) < c.minPoints {
			return false
		}

		used[p.Ref] = true
		for _, ref := range refs {
			used[ref] = true
		}

		clusters = append(clusters, Cluster{
			Hotspot: entity.Hotspot{
				ID:           c.newID(sightings[p.Ref]),
				Name:         fmt.Sprintf("%s %d", constants.HotspotNamePrefix, len(clusters)+1),
				Coordinate:   p.Coordinate,
				DensityScore: float64(len(members)),
			},
			Members: members,
		})

		return false
	})

	return clusters
}

// hotspotNamespace scopes hotspot ids derived with uuid.NewSHA1.
var hotspotNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("wildnav:hotspot"))

// HotspotID derives a stable hotspot id from the seed sighting, so the same
// neighbourhood keeps its id across clustering passes.
func HotspotID(seed entity.Sighting) string {
	name := seed.ID
	if name == "" {
		name = fmt.Sprintf("%.6f,%.6f", seed.Coordinate.Latitude, seed.Coordinate.Longitude)
	}

	return uuid.NewSHA1(hotspotNamespace, []byte(name)).String()
}

// Hotspots runs Cluster and returns only the hotspots.
func (c *Clusterer) Hotspots(sightings []entity.Sighting) []entity.Hotspot {
	clusters := c.Cluster(sightings)
	hotspots := make([]entity.Hotspot, len(clusters))
	for i, cl := range clusters {
		hotspots[i] = cl.Hotspot
	}

	return hotspots
}
