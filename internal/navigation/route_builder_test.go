package navigation

import (
	"context"
	"sync"
	"testing"
	"time"

	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"
	"wildnav/internal/errors"
	mockService "wildnav/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	origin = entity.Coordinate{Latitude: 37.7700, Longitude: -122.4200}
	w1     = entity.NewSightingWaypoint(entity.Sighting{ID: "1", Coordinate: entity.Coordinate{Latitude: 37.7710, Longitude: -122.4200}})
	w2     = entity.NewHotspotWaypoint(entity.Hotspot{ID: "2", Coordinate: entity.Coordinate{Latitude: 37.7720, Longitude: -122.4210}})
)

func directionsFor(from, to entity.Coordinate, distance float64) *service.Directions {
	return &service.Directions{
		DistanceMeters:  distance,
		DurationSeconds: distance / 1.4,
		Polyline:        []entity.Coordinate{from, to},
		Steps:           []entity.RouteStep{{Instruction: "Walk", DistanceMeters: distance}},
	}
}

func TestRouteBuilder_Plan(t *testing.T) {
	b := NewRouteBuilder(mockService.NewMockDirectionsProvider(t))

	route := b.Plan(origin, []entity.Waypoint{w1, w2})

	require.NotNil(t, route)
	require.Len(t, route.Legs, 2)
	assert.Equal(t, origin, route.Legs[0].From)
	assert.Equal(t, w1.Location(), route.Legs[0].To)
	assert.Equal(t, w1.Location(), route.Legs[1].From)
	assert.Equal(t, w2.Location(), route.Legs[1].To)
	assert.Equal(t, "s-1", route.Legs[0].WaypointKey)
	assert.Equal(t, "h-2", route.Legs[1].WaypointKey)
	for i := 0; i < len(route.Legs)-1; i++ {
		assert.Equal(t, route.Legs[i].To, route.Legs[i+1].From)
	}

	assert.Nil(t, b.Plan(origin, nil))
}

func TestRouteBuilder_Build_OrderIndependentOfCompletion(t *testing.T) {
	provider := mockService.NewMockDirectionsProvider(t)
	firstDone := make(chan struct{})

	// Leg 0 only answers after leg 1 has completed.
	provider.EXPECT().
		GetRoute(mock.Anything, origin, w1.Location(), service.TravelModeWalking).
		RunAndReturn(func(ctx context.Context, from, to entity.Coordinate, _ service.TravelMode) (*service.Directions, error) {
			<-firstDone
			return directionsFor(from, to, 111), nil
		})
	provider.EXPECT().
		GetRoute(mock.Anything, w1.Location(), w2.Location(), service.TravelModeWalking).
		RunAndReturn(func(ctx context.Context, from, to entity.Coordinate, _ service.TravelMode) (*service.Directions, error) {
			defer close(firstDone)
			return directionsFor(from, to, 140), nil
		})

	route, err := NewRouteBuilder(provider).Build(context.Background(), origin, []entity.Waypoint{w1, w2})

	require.NoError(t, err)
	require.Len(t, route.Legs, 2)
	assert.Equal(t, origin, route.Legs[0].From)
	assert.Equal(t, w1.Location(), route.Legs[0].To)
	assert.InDelta(t, 111.0, *route.Legs[0].DistanceMeters, 1e-9)
	assert.InDelta(t, 140.0, *route.Legs[1].DistanceMeters, 1e-9)
	assert.InDelta(t, 251.0, route.TotalDistance(), 1e-9)
	assert.InDelta(t, 251.0/1.4, route.TotalExpectedTime(), 1e-9)
	assert.Equal(t, 2, route.ResolvedCount())
}

func TestRouteBuilder_Build_PartialFailure(t *testing.T) {
	provider := mockService.NewMockDirectionsProvider(t)
	provider.EXPECT().
		GetRoute(mock.Anything, origin, w1.Location(), service.TravelModeWalking).
		Return(nil, errors.New("quota exceeded"))
	provider.EXPECT().
		GetRoute(mock.Anything, w1.Location(), w2.Location(), service.TravelModeWalking).
		Return(directionsFor(w1.Location(), w2.Location(), 140), nil)

	route, err := NewRouteBuilder(provider).Build(context.Background(), origin, []entity.Waypoint{w1, w2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "leg 0")
	assert.Contains(t, err.Error(), "quota exceeded")
	require.Len(t, route.Legs, 2)
	assert.False(t, route.Legs[0].Resolved())
	assert.Equal(t, origin, route.Legs[0].From)
	assert.True(t, route.Legs[1].Resolved())
	assert.InDelta(t, 140.0, route.TotalDistance(), 1e-9)
}

func TestRouteBuilder_Build_NoWaypoints(t *testing.T) {
	route, err := NewRouteBuilder(mockService.NewMockDirectionsProvider(t)).Build(context.Background(), origin, nil)

	assert.NoError(t, err)
	assert.Nil(t, route)
}

func TestRouteBuilder_Resolve_CancelledDeliversNothing(t *testing.T) {
	provider := mockService.NewMockDirectionsProvider(t)
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	provider.EXPECT().
		GetRoute(mock.Anything, mock.Anything, mock.Anything, service.TravelModeWalking).
		RunAndReturn(func(ctx context.Context, from, to entity.Coordinate, _ service.TravelMode) (*service.Directions, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}).
		Once()

	b := NewRouteBuilder(provider, WithMaxConcurrentLegs(1))
	route := b.Plan(origin, []entity.Waypoint{w1, w2})

	var (
		mu       sync.Mutex
		outcomes []LegOutcome
	)
	done := make(chan error, 1)
	go func() {
		done <- b.Resolve(ctx, route.ID, route.Legs, func(o LegOutcome) {
			mu.Lock()
			defer mu.Unlock()
			outcomes = append(outcomes, o)
		})
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Resolve did not return after cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, outcomes)
	assert.Zero(t, route.ResolvedCount())
}

func TestRouteBuilder_Resolve_SnapshotSurvivesAdvance(t *testing.T) {
	provider := mockService.NewMockDirectionsProvider(t)
	advanced := make(chan struct{})

	provider.EXPECT().
		GetRoute(mock.Anything, mock.Anything, mock.Anything, service.TravelModeWalking).
		RunAndReturn(func(_ context.Context, from, to entity.Coordinate, _ service.TravelMode) (*service.Directions, error) {
			<-advanced
			return directionsFor(from, to, 100), nil
		}).
		Times(2)

	b := NewRouteBuilder(provider)
	route := b.Plan(origin, []entity.Waypoint{w1, w2})

	var mu sync.Mutex
	mu.Lock()
	legs := append([]*entity.RouteLeg(nil), route.Legs...)
	mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- b.Resolve(context.Background(), route.ID, legs, func(o LegOutcome) {
			mu.Lock()
			defer mu.Unlock()
			o.Apply()
		})
	}()

	// The first waypoint is passed while directions are in flight.
	mu.Lock()
	route.Legs = route.Legs[1:]
	mu.Unlock()
	close(advanced)

	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, route.Legs, 1)
	assert.True(t, route.Legs[0].Resolved())
	assert.Equal(t, w2.Location(), route.Legs[0].To)
	assert.True(t, legs[0].Resolved())
}

func TestLegOutcome_ApplyCopiesResult(t *testing.T) {
	leg := &entity.RouteLeg{From: origin, To: w1.Location()}
	d := directionsFor(origin, w1.Location(), 50)

	LegOutcome{Leg: leg, Directions: d}.Apply()
	d.Polyline[0] = entity.Coordinate{}

	require.True(t, leg.Resolved())
	assert.Equal(t, origin, leg.Polyline[0])

	other := &entity.RouteLeg{}
	LegOutcome{Leg: other, Err: errors.New("boom"), Directions: d}.Apply()
	assert.False(t, other.Resolved())
}
