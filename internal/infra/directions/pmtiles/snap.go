package pmtiles

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const metersPerDegree = orb.EarthRadius * math.Pi / 180

type gridKey struct {
	row int
	col int
}

// nodeIndex is a uniform grid over graph nodes in a local equirectangular
// projection, so cells are square in meters at any latitude.
type nodeIndex struct {
	ids    []NodeID
	points []orb.Point
	xy     [][2]float64
	grid   map[gridKey][]int

	originLat float64
	originLng float64
	cosLat    float64
	cell      float64

	minKey gridKey
	maxKey gridKey
}

func newNodeIndex(g *WalkGraph, cellMeters float64) *nodeIndex {
	ix := &nodeIndex{
		grid: make(map[gridKey][]int),
		cell: cellMeters,
	}
	if len(g.nodes) == 0 {
		return ix
	}

	bound := orb.Bound{Min: orb.Point{math.Inf(1), math.Inf(1)}, Max: orb.Point{math.Inf(-1), math.Inf(-1)}}
	for _, p := range g.nodes {
		bound = bound.Extend(p)
	}
	ix.originLat = bound.Min.Lat()
	ix.originLng = bound.Min.Lon()
	ix.cosLat = math.Max(math.Cos(bound.Center().Lat()*math.Pi/180), 1e-6)

	first := true
	for id, p := range g.nodes {
		x, y := ix.project(p)
		key := ix.keyOf(x, y)

		idx := len(ix.ids)
		ix.ids = append(ix.ids, id)
		ix.points = append(ix.points, p)
		ix.xy = append(ix.xy, [2]float64{x, y})
		ix.grid[key] = append(ix.grid[key], idx)

		if first {
			ix.minKey, ix.maxKey = key, key
			first = false

			continue
		}
		ix.minKey.row = min(ix.minKey.row, key.row)
		ix.minKey.col = min(ix.minKey.col, key.col)
		ix.maxKey.row = max(ix.maxKey.row, key.row)
		ix.maxKey.col = max(ix.maxKey.col, key.col)
	}

	return ix
}

func (ix *nodeIndex) project(p orb.Point) (x, y float64) {
	x = (p.Lon() - ix.originLng) * ix.cosLat * metersPerDegree
	y = (p.Lat() - ix.originLat) * metersPerDegree

	return x, y
}

func (ix *nodeIndex) keyOf(x, y float64) gridKey {
	return gridKey{row: int(math.Floor(y / ix.cell)), col: int(math.Floor(x / ix.cell))}
}

// Nearest returns the node closest to p and its great-circle distance in meters
func (ix *nodeIndex) Nearest(p orb.Point) (NodeID, float64, bool) {
	if len(ix.ids) == 0 {
		return 0, 0, false
	}

	x, y := ix.project(p)
	center := ix.keyOf(x, y)

	maxRing := max(
		abs(center.row-ix.minKey.row), abs(center.row-ix.maxKey.row),
		abs(center.col-ix.minKey.col), abs(center.col-ix.maxKey.col),
	)

	best := -1
	bestSq := math.MaxFloat64

	for ring := 0; ring <= maxRing; ring++ {
		ix.searchRing(x, y, center, ring, &best, &bestSq)

		// Anything outside rings 0..ring is at least ring cells away.
		if best >= 0 {
			reach := float64(ring) * ix.cell
			if bestSq <= reach*reach {
				break
			}
		}
	}

	return ix.ids[best], geo.DistanceHaversine(p, ix.points[best]), true
}

func (ix *nodeIndex) searchRing(x, y float64, center gridKey, ring int, best *int, bestSq *float64) {
	for dr := -ring; dr <= ring; dr++ {
		for dc := -ring; dc <= ring; dc++ {
			if abs(dr) != ring && abs(dc) != ring {
				continue
			}

			for _, idx := range ix.grid[gridKey{row: center.row + dr, col: center.col + dc}] {
				dx := ix.xy[idx][0] - x
				dy := ix.xy[idx][1] - y
				if sq := dx*dx + dy*dy; sq < *bestSq {
					*bestSq = sq
					*best = idx
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
