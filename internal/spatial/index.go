// Package spatial indexes sighting coordinates in a 2-d tree and groups dense
// neighbourhoods into hotspots.
package spatial

import (
	"slices"

	"wildnav/internal/domain/entity"

	"gonum.org/v1/gonum/spatial/kdtree"
)

const (
	dimLatitude  kdtree.Dim = 0
	dimLongitude kdtree.Dim = 1
)

// boundsSlack widens range queries so that points lying exactly on a split plane
// equal to a query edge are still visited; results are filtered inclusively afterwards.
const boundsSlack = 1e-12

// Point is an indexed coordinate with a back-reference to its source.
type Point struct {
	Coordinate entity.Coordinate
	Ref        int // position of the source sighting in the clustered batch
}

// Compare satisfies kdtree.Comparable.
func (p Point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(Point)
	switch d {
	case dimLatitude:
		return p.Coordinate.Latitude - q.Coordinate.Latitude
	case dimLongitude:
		return p.Coordinate.Longitude - q.Coordinate.Longitude
	default:
		panic("spatial: illegal dimension")
	}
}

func (p Point) Dims() int { return 2 }

// Distance returns the squared degree-space distance to c.
func (p Point) Distance(c kdtree.Comparable) float64 {
	q := c.(Point)
	dLat := p.Coordinate.Latitude - q.Coordinate.Latitude
	dLon := p.Coordinate.Longitude - q.Coordinate.Longitude

	return dLat*dLat + dLon*dLon
}

type points []Point

func (p points) Index(i int) kdtree.Comparable         { return p[i] }
func (p points) Len() int                              { return len(p) }
func (p points) Pivot(d kdtree.Dim) int                { return plane{points: p, Dim: d}.Pivot() }
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }

type plane struct {
	kdtree.Dim
	points
}

func (p plane) Less(i, j int) bool {
	return p.points[i].Compare(p.points[j], p.Dim) < 0
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]

	return p
}

func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

// Range is an inclusive interval of degrees.
type Range struct {
	Lo, Hi float64
}

// Index is a bulk-built 2-d tree over latitude and longitude.
type Index struct {
	tree  *kdtree.Tree
	order []Point
}

// NewIndex builds an index over pts. The slice is not modified.
func NewIndex(pts []Point) *Index {
	if len(pts) == 0 {
		return &Index{}
	}

	// kdtree.New partitions its input in place.
	owned := make(points, len(pts))
	copy(owned, pts)

	return &Index{tree: kdtree.New(owned, false), order: slices.Clone(pts)}
}

// Len returns the number of indexed points.
func (i *Index) Len() int {
	return len(i.order)
}

// RangeQuery returns every point whose latitude and longitude both fall inside the
// given ranges, bounds included.
func (i *Index) RangeQuery(lat, lon Range) []Point {
	if i.tree == nil || lat.Lo > lat.Hi || lon.Lo > lon.Hi {
		return nil
	}

	bounds := &kdtree.Bounding{
		Min: Point{Coordinate: entity.Coordinate{Latitude: lat.Lo - boundsSlack, Longitude: lon.Lo - boundsSlack}},
		Max: Point{Coordinate: entity.Coordinate{Latitude: lat.Hi + boundsSlack, Longitude: lon.Hi + boundsSlack}},
	}

	var found []Point
	i.tree.DoBounded(bounds, func(c kdtree.Comparable, _ *kdtree.Bounding, _ int) bool {
		p := c.(Point)
		if p.Coordinate.Latitude >= lat.Lo && p.Coordinate.Latitude <= lat.Hi &&
			p.Coordinate.Longitude >= lon.Lo && p.Coordinate.Longitude <= lon.Hi {
			found = append(found, p)
		}

		return false
	})

	return found
}

// Do calls fn for every indexed point, in the order they were given to NewIndex,
// until fn returns true.
func (i *Index) Do(fn func(Point) bool) {
	for _, p := range i.order {
		if fn(p) {
			return
		}
	}
}
