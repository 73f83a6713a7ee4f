package geo

import "math"

// MilesPerDegreeLatitude is the length of one degree of latitude used by the planar
// approximation.
const MilesPerDegreeLatitude = 69.17

// minCosLatitude keeps longitude scaling finite at the poles.
const minCosLatitude = 1e-6

// MilesToLatDegrees converts a north-south distance in miles to degrees of latitude.
func MilesToLatDegrees(miles float64) float64 {
	return miles / MilesPerDegreeLatitude
}

// MilesToLonDegrees converts an east-west distance in miles to degrees of longitude at
// the given latitude.
func MilesToLonDegrees(miles, latitude float64) float64 {
	return miles / (MilesPerDegreeLatitude * cosLatitude(latitude))
}

func cosLatitude(latitude float64) float64 {
	return math.Max(math.Abs(math.Cos(DegreesToRadians(latitude))), minCosLatitude)
}
