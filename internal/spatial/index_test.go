package spatial

import (
	"math/rand/v2"
	"sort"
	"testing"

	"wildnav/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refsOf(pts []Point) []int {
	refs := make([]int, len(pts))
	for i, p := range pts {
		refs[i] = p.Ref
	}
	sort.Ints(refs)

	return refs
}

func TestIndex_Empty(t *testing.T) {
	idx := NewIndex(nil)

	assert.Zero(t, idx.Len())
	assert.Empty(t, idx.RangeQuery(Range{Lo: -90, Hi: 90}, Range{Lo: -180, Hi: 180}))

	calls := 0
	idx.Do(func(Point) bool { calls++; return false })
	assert.Zero(t, calls)
}

func TestIndex_RangeQueryInclusive(t *testing.T) {
	pts := []Point{
		{Coordinate: entity.Coordinate{Latitude: 1, Longitude: 1}, Ref: 0},
		{Coordinate: entity.Coordinate{Latitude: 2, Longitude: 2}, Ref: 1},
		{Coordinate: entity.Coordinate{Latitude: 3, Longitude: 3}, Ref: 2},
		{Coordinate: entity.Coordinate{Latitude: 2, Longitude: 5}, Ref: 3},
		{Coordinate: entity.Coordinate{Latitude: 2, Longitude: 2}, Ref: 4},
	}
	idx := NewIndex(pts)
	require.Equal(t, 5, idx.Len())

	tests := []struct {
		name     string
		lat, lon Range
		want     []int
	}{
		{name: "edges are inclusive", lat: Range{Lo: 1, Hi: 2}, lon: Range{Lo: 1, Hi: 2}, want: []int{0, 1, 4}},
		{name: "single point box", lat: Range{Lo: 3, Hi: 3}, lon: Range{Lo: 3, Hi: 3}, want: []int{2}},
		{name: "duplicates", lat: Range{Lo: 2, Hi: 2}, lon: Range{Lo: 2, Hi: 2}, want: []int{1, 4}},
		{name: "row", lat: Range{Lo: 2, Hi: 2}, lon: Range{Lo: -10, Hi: 10}, want: []int{1, 3, 4}},
		{name: "nothing", lat: Range{Lo: 10, Hi: 20}, lon: Range{Lo: 10, Hi: 20}, want: []int{}},
		{name: "inverted", lat: Range{Lo: 3, Hi: 1}, lon: Range{Lo: 1, Hi: 3}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, refsOf(idx.RangeQuery(tt.lat, tt.lon)))
		})
	}
}

func TestIndex_DoesNotModifyInput(t *testing.T) {
	pts := []Point{
		{Coordinate: entity.Coordinate{Latitude: 3}, Ref: 0},
		{Coordinate: entity.Coordinate{Latitude: 1}, Ref: 1},
		{Coordinate: entity.Coordinate{Latitude: 2}, Ref: 2},
	}
	before := append([]Point(nil), pts...)

	NewIndex(pts)

	assert.Equal(t, before, pts)
}

func TestIndex_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pts := make([]Point, 500)
	for i := range pts {
		// Coarse grid so that many points share split values.
		pts[i] = Point{
			Coordinate: entity.Coordinate{
				Latitude:  float64(rng.IntN(40)) / 10,
				Longitude: float64(rng.IntN(40)) / 10,
			},
			Ref: i,
		}
	}
	idx := NewIndex(pts)

	for range 100 {
		a, b := float64(rng.IntN(40))/10, float64(rng.IntN(40))/10
		c, d := float64(rng.IntN(40))/10, float64(rng.IntN(40))/10
		lat := Range{Lo: min(a, b), Hi: max(a, b)}
		lon := Range{Lo: min(c, d), Hi: max(c, d)}

		want := []int{}
		for _, p := range pts {
			if p.Coordinate.Latitude >= lat.Lo && p.Coordinate.Latitude <= lat.Hi &&
				p.Coordinate.Longitude >= lon.Lo && p.Coordinate.Longitude <= lon.Hi {
				want = append(want, p.Ref)
			}
		}

		assert.Equal(t, want, refsOf(idx.RangeQuery(lat, lon)))
	}
}

func TestIndex_DoVisitsInBuildOrder(t *testing.T) {
	pts := []Point{
		{Coordinate: entity.Coordinate{Latitude: 3}, Ref: 0},
		{Coordinate: entity.Coordinate{Latitude: 1}, Ref: 1},
		{Coordinate: entity.Coordinate{Latitude: 2}, Ref: 2},
		{Coordinate: entity.Coordinate{Latitude: 0}, Ref: 3},
	}
	idx := NewIndex(pts)

	var seen []int
	idx.Do(func(p Point) bool {
		seen = append(seen, p.Ref)
		return false
	})
	assert.Equal(t, []int{0, 1, 2, 3}, seen)

	seen = nil
	idx.Do(func(p Point) bool {
		seen = append(seen, p.Ref)
		return p.Ref == 1
	})
	assert.Equal(t, []int{0, 1}, seen)
}
