package geo

import (
	"math"

	"wildnav/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// TotalLength returns the summed great-circle length of the path segments.
// Paths with fewer than two points have zero length.
func TotalLength(path []entity.Coordinate) float64 {
	if len(path) < 2 {
		return 0
	}

	return geo.LengthHaversine(LineString(path))
}

// PointAtDistance walks the path and returns the point the given distance from its start.
// Negative distances clamp to the first point and distances past the end return the
// last point. The boolean is false only for an empty path.
func PointAtDistance(path []entity.Coordinate, distance float64) (entity.Coordinate, bool) {
	if len(path) == 0 {
		return entity.Coordinate{}, false
	}

	remaining := math.Max(distance, 0)
	for i := 1; i < len(path); i++ {
		segment := DistanceMeters(path[i-1], path[i])
		if segment > 0 && remaining <= segment {
			return Interpolate(path[i-1], path[i], remaining/segment), true
		}
		remaining -= segment
	}

	return path[len(path)-1], true
}

// EvenlySpacedPoints returns the points at 0, interval, 2*interval... along the path,
// up to and including floor(total/interval)*interval. Intervals that are not positive
// and finite yield no points.
func EvenlySpacedPoints(path []entity.Coordinate, interval float64) []entity.Coordinate {
	total := TotalLength(path)
	if !(interval > 0) || math.IsInf(interval, 0) || total <= 0 {
		return []entity.Coordinate{}
	}

	count := int(math.Floor(total/interval)) + 1
	points := make([]entity.Coordinate, 0, count)
	for i := range count {
		p, _ := PointAtDistance(path, float64(i)*interval)
		points = append(points, p)
	}

	return points
}

// LineString converts a path to an orb.LineString.
func LineString(path []entity.Coordinate) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = c.Point()
	}

	return ls
}
