package pmtiles

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeIndex_Empty(t *testing.T) {
	ix := newNodeIndex(NewWalkGraph(), snapCellMeters)

	_, _, ok := ix.Nearest(ptA)
	assert.False(t, ok)
}

func TestNodeIndex_Nearest(t *testing.T) {
	g := buildSquare()
	ix := newNodeIndex(g, snapCellMeters)

	id, dist, ok := ix.Nearest(orb.Point{121.56599, 25.03301})
	require.True(t, ok)

	p, _ := g.Node(id)
	assert.Equal(t, ptB, p)
	assert.InDelta(t, geo.DistanceHaversine(orb.Point{121.56599, 25.03301}, ptB), dist, 1e-9)
}

func TestNodeIndex_QueryOutsideBounds(t *testing.T) {
	g := buildSquare()
	ix := newNodeIndex(g, snapCellMeters)

	id, _, ok := ix.Nearest(orb.Point{121.70, 25.20})
	require.True(t, ok)

	p, _ := g.Node(id)
	assert.Equal(t, ptC, p)
}

func TestNodeIndex_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	g := NewWalkGraph()
	for range 300 {
		a := orb.Point{121.55 + rng.Float64()*0.03, 60.0 + rng.Float64()*0.03}
		b := orb.Point{a[0] + 0.0005, a[1] + 0.0003}
		g.AddSegment(&PathSegment{Points: []orb.Point{a, b}})
	}
	ix := newNodeIndex(g, snapCellMeters)

	for range 200 {
		q := orb.Point{121.54 + rng.Float64()*0.05, 59.99 + rng.Float64()*0.05}

		_, got, ok := ix.Nearest(q)
		require.True(t, ok)

		want := math.MaxFloat64
		for _, p := range g.nodes {
			want = math.Min(want, geo.DistanceHaversine(q, p))
		}

		// Planar ranking may pick a near-tie neighbour.
		assert.LessOrEqual(t, got, want*1.005+0.01, "query %v", q)
	}
}
