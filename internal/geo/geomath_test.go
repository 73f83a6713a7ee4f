package geo

import (
	"testing"

	"wildnav/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_Symmetric(t *testing.T) {
	pairs := [][2]entity.Coordinate{
		{{Latitude: 0, Longitude: 0}, {Latitude: 0.0001, Longitude: 0}},
		{{Latitude: 25.0330, Longitude: 121.5654}, {Latitude: 25.0478, Longitude: 121.5170}},
		{{Latitude: -33.8688, Longitude: 151.2093}, {Latitude: 51.5074, Longitude: -0.1278}},
		{{Latitude: 89.9, Longitude: 179.9}, {Latitude: -89.9, Longitude: -179.9}},
	}

	for _, p := range pairs {
		assert.InDelta(t, DistanceMeters(p[0], p[1]), DistanceMeters(p[1], p[0]), 1e-6)
		assert.InDelta(t, 0.0, DistanceMeters(p[0], p[0]), 1e-9)
	}
}

func TestDistanceMeters_KnownValue(t *testing.T) {
	a := entity.Coordinate{Latitude: 0, Longitude: 0}
	b := entity.Coordinate{Latitude: 0.0001, Longitude: 0}

	// One ten-thousandth of a degree on the equatorial radius.
	assert.InDelta(t, 11.13, DistanceMeters(a, b), 0.01)
}

func TestBearingDegrees(t *testing.T) {
	origin := entity.Coordinate{}
	tests := []struct {
		name string
		to   entity.Coordinate
		want float64
	}{
		{name: "north", to: entity.Coordinate{Latitude: 1}, want: 0},
		{name: "east", to: entity.Coordinate{Longitude: 1}, want: 90},
		{name: "south", to: entity.Coordinate{Latitude: -1}, want: 180},
		{name: "west", to: entity.Coordinate{Longitude: -1}, want: 270},
		{name: "same point", to: origin, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BearingDegrees(origin, tt.to)
			assert.InDelta(t, tt.want, got, 1e-6)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}

func TestDegreeRadianConversion(t *testing.T) {
	assert.InDelta(t, 3.141592653589793, DegreesToRadians(180), 1e-15)
	assert.InDelta(t, 90.0, RadiansToDegrees(DegreesToRadians(90)), 1e-12)
}

func TestNormalizeDegrees(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeDegrees(360), 1e-12)
	assert.InDelta(t, 350.0, NormalizeDegrees(-10), 1e-12)
	assert.InDelta(t, 10.0, NormalizeDegrees(730), 1e-12)
	assert.Less(t, NormalizeDegrees(-1e-15), 360.0)
}

func TestRelativeAngle(t *testing.T) {
	tests := []struct {
		bearing, heading, want float64
	}{
		{bearing: 90, heading: 0, want: 90},
		{bearing: 0, heading: 90, want: -90},
		{bearing: 10, heading: 350, want: 20},
		{bearing: 350, heading: 10, want: -20},
		{bearing: 180, heading: 0, want: 180},
		{bearing: 0, heading: 180, want: 180},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RelativeAngle(tt.bearing, tt.heading), 1e-9)
	}
}

func TestInterpolate(t *testing.T) {
	a := entity.Coordinate{Latitude: 10, Longitude: 20}
	b := entity.Coordinate{Latitude: 20, Longitude: 40}

	assert.Equal(t, a, Interpolate(a, b, 0))
	assert.Equal(t, b, Interpolate(a, b, 1))
	assert.Equal(t, entity.Coordinate{Latitude: 15, Longitude: 30}, Interpolate(a, b, 0.5))
}
