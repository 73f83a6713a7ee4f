package directions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"
	"wildnav/internal/geo"
)

func TestStraightLineProvider_GetRoute(t *testing.T) {
	provider := NewStraightLineProvider(3.6) // 1 m/s

	from := entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	to := entity.Coordinate{Latitude: 25.0340, Longitude: 121.5654}

	dirs, err := provider.GetRoute(context.Background(), from, to, service.TravelModeWalking)
	require.NoError(t, err)

	expected := geo.DistanceMeters(from, to)
	assert.InDelta(t, expected, dirs.DistanceMeters, 1e-9)
	assert.InDelta(t, expected, dirs.DurationSeconds, 1e-9)
	assert.Equal(t, []entity.Coordinate{from, to}, dirs.Polyline)
	require.Len(t, dirs.Steps, 1)
	assert.Equal(t, "Head north", dirs.Steps[0].Instruction)
}

func TestStraightLineProvider_DefaultSpeed(t *testing.T) {
	provider := NewStraightLineProvider(0)

	from := entity.Coordinate{Latitude: 0, Longitude: 0}
	to := entity.Coordinate{Latitude: 0, Longitude: 0.01}

	dirs, err := provider.GetRoute(context.Background(), from, to, service.TravelModeWalking)
	require.NoError(t, err)
	assert.InDelta(t, dirs.DistanceMeters/(DefaultWalkingSpeedKmh/3.6), dirs.DurationSeconds, 1e-9)
	assert.Equal(t, "Head east", dirs.Steps[0].Instruction)
}

func TestStraightLineProvider_InvalidCoordinate(t *testing.T) {
	provider := NewStraightLineProvider(5)

	_, err := provider.GetRoute(context.Background(),
		entity.Coordinate{Latitude: 91, Longitude: 0},
		entity.Coordinate{Latitude: 0, Longitude: 0},
		service.TravelModeWalking,
	)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestStraightLineProvider_CancelledContext(t *testing.T) {
	provider := NewStraightLineProvider(5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.GetRoute(ctx, entity.Coordinate{}, entity.Coordinate{Latitude: 1}, service.TravelModeWalking)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		bearing  float64
		expected string
	}{
		{0, "north"},
		{22, "north"},
		{23, "northeast"},
		{90, "east"},
		{180, "south"},
		{270, "west"},
		{337.4, "northwest"},
		{337.6, "north"},
		{359.9, "north"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, compassPoint(tt.bearing), "bearing %v", tt.bearing)
	}
}
