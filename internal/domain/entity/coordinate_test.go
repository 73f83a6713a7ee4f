package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{name: "origin", coord: Coordinate{}, want: true},
		{name: "corner", coord: Coordinate{Latitude: -90, Longitude: 180}, want: true},
		{name: "lat out of range", coord: Coordinate{Latitude: 90.1}, want: false},
		{name: "lon out of range", coord: Coordinate{Longitude: -180.5}, want: false},
		{name: "nan", coord: Coordinate{Latitude: math.NaN()}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.Valid())
		})
	}
}

func TestCoordinate_PointRoundTrip(t *testing.T) {
	c := Coordinate{Latitude: 25.03, Longitude: 121.56}

	p := c.Point()
	assert.InDelta(t, 121.56, p[0], 1e-12)
	assert.InDelta(t, 25.03, p[1], 1e-12)
	assert.Equal(t, c, FromPoint(p))
}

func TestParseBoundingBox(t *testing.T) {
	box, err := ParseBoundingBox("-122.5, 37.7,-122.3,37.8")
	require.NoError(t, err)
	assert.Equal(t, BoundingBox{West: -122.5, South: 37.7, East: -122.3, North: 37.8}, box)
	assert.Equal(t, "-122.5,37.7,-122.3,37.8", box.String())

	assert.True(t, box.Contains(Coordinate{Latitude: 37.75, Longitude: -122.4}))
	assert.True(t, box.Contains(Coordinate{Latitude: 37.7, Longitude: -122.5}))
	assert.False(t, box.Contains(Coordinate{Latitude: 37.9, Longitude: -122.4}))
}

func TestParseBoundingBox_Invalid(t *testing.T) {
	for _, raw := range []string{"", "1,2,3", "a,b,c,d", "10,0,5,1", "0,10,1,5", "0,0,200,1"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseBoundingBox(raw)
			assert.Error(t, err)
		})
	}
}
