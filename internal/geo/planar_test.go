package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMilesToDegrees(t *testing.T) {
	assert.InDelta(t, 1.0, MilesToLatDegrees(MilesPerDegreeLatitude), 1e-12)
	assert.InDelta(t, 1.0, MilesToLonDegrees(MilesPerDegreeLatitude, 0), 1e-12)
	assert.InDelta(t, 2.0, MilesToLonDegrees(MilesPerDegreeLatitude, 60), 1e-9)

	polar := MilesToLonDegrees(1, 90)
	assert.False(t, math.IsInf(polar, 0))
	assert.False(t, math.IsNaN(polar))
}
