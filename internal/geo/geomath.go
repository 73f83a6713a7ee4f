// Package geo holds the coordinate geometry of the navigation engine: great-circle
// distance and bearing for guidance, polyline sampling for breadcrumbs and the planar
// mileage approximation used by clustering.
package geo

import (
	"math"

	"wildnav/internal/domain/entity"

	"github.com/paulmach/orb/geo"
)

// DistanceMeters returns the haversine distance between a and b.
func DistanceMeters(a, b entity.Coordinate) float64 {
	return geo.DistanceHaversine(a.Point(), b.Point())
}

// BearingDegrees returns the initial compass bearing from one coordinate toward another,
// 0 being true north and increasing clockwise, in [0,360).
// The bearing between identical coordinates is undefined and reported as 0.
func BearingDegrees(from, to entity.Coordinate) float64 {
	if from == to {
		return 0
	}

	return NormalizeDegrees(geo.Bearing(from.Point(), to.Point()))
}

func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

func RadiansToDegrees(r float64) float64 {
	return r * 180 / math.Pi
}

// NormalizeDegrees maps any angle into [0,360).
func NormalizeDegrees(d float64) float64 {
	n := math.Mod(d, 360)
	if n < 0 {
		n += 360
	}
	if n >= 360 {
		n = 0
	}

	return n
}

// RelativeAngle returns the rotation from the device heading to the target bearing,
// in (-180,180]. Positive values mean the target is to the right.
func RelativeAngle(bearing, heading float64) float64 {
	a := NormalizeDegrees(bearing - heading)
	if a > 180 {
		a -= 360
	}

	return a
}

// Interpolate returns the point at fraction f of the way from a to b, interpolating
// latitude and longitude linearly in degree space.
func Interpolate(a, b entity.Coordinate, f float64) entity.Coordinate {
	return entity.Coordinate{
		Latitude:  a.Latitude + (b.Latitude-a.Latitude)*f,
		Longitude: a.Longitude + (b.Longitude-a.Longitude)*f,
	}
}
