package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_Totals(t *testing.T) {
	route := &Route{
		ID: "r",
		Legs: []*RouteLeg{
			{ID: "0"},
			{ID: "1"},
			{ID: "2"},
		},
	}

	assert.Zero(t, route.TotalDistance())
	assert.Zero(t, route.TotalExpectedTime())

	route.Legs[0].Resolve(100, 60, nil, nil)
	route.Legs[2].Resolve(250, 200, []Coordinate{{}, {Latitude: 1}}, []RouteStep{{Instruction: "Head north", DistanceMeters: 250}})

	assert.InDelta(t, 350.0, route.TotalDistance(), 1e-9)
	assert.InDelta(t, 260.0, route.TotalExpectedTime(), 1e-9)
	assert.Equal(t, 2, route.ResolvedCount())
	assert.False(t, route.Legs[1].Resolved())
}

func TestRoute_CloneIsDeep(t *testing.T) {
	route := &Route{ID: "r", Legs: []*RouteLeg{{ID: "0"}}}
	route.Legs[0].Resolve(10, 5, []Coordinate{{Latitude: 1}}, []RouteStep{{Instruction: "go"}})

	clone := route.Clone()
	*route.Legs[0].DistanceMeters = 99
	route.Legs[0].Polyline[0].Latitude = 42

	require.Len(t, clone.Legs, 1)
	assert.InDelta(t, 10.0, *clone.Legs[0].DistanceMeters, 1e-9)
	assert.InDelta(t, 1.0, clone.Legs[0].Polyline[0].Latitude, 1e-9)

	var nilRoute *Route
	assert.Nil(t, nilRoute.Clone())
}
