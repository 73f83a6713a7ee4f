package navigation

import (
	"math"
	"testing"

	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wpA = entity.NewSightingWaypoint(entity.Sighting{ID: "A", Coordinate: entity.Coordinate{Latitude: 0, Longitude: 0}})
	wpB = entity.NewSightingWaypoint(entity.Sighting{ID: "B", Coordinate: entity.Coordinate{Latitude: 0.0001, Longitude: 0}})
)

// fixAt returns a fix the given distance due south of c.
func fixAt(c entity.Coordinate, metersSouth float64) service.LocationFix {
	metersPerDegree := orb.EarthRadius * math.Pi / 180

	return service.LocationFix{Coordinate: entity.Coordinate{
		Latitude:  c.Latitude - metersSouth/metersPerDegree,
		Longitude: c.Longitude,
	}}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}

	return out
}

func planned(waypoints ...entity.Waypoint) *entity.Route {
	return NewRouteBuilder(nil).Plan(entity.Coordinate{Latitude: -0.001}, waypoints)
}

func TestTracker_StartValidation(t *testing.T) {
	tr := NewTracker()

	assert.ErrorIs(t, tr.Start(nil, nil), ErrEmptyQueue)
	assert.Equal(t, StateIdle, tr.State())

	require.NoError(t, tr.Start(nil, []entity.Waypoint{wpA}))
	assert.Equal(t, StateNavigating, tr.State())
	assert.ErrorIs(t, tr.Start(nil, []entity.Waypoint{wpB}), ErrTrackerBusy)

	current, ok := tr.CurrentWaypoint()
	require.True(t, ok)
	assert.Equal(t, "s-A", current.Key())
}

func TestTracker_ArrivalRaisedExactlyOnce(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Start(planned(wpA), []entity.Waypoint{wpA}))

	assert.Empty(t, tr.Update(fixAt(wpA.Location(), 5)))
	g, ok := tr.Guidance()
	require.True(t, ok)
	assert.InDelta(t, 5.0, g.DistanceMeters, 0.01)

	events := tr.Update(fixAt(wpA.Location(), 2))
	assert.Equal(t, []EventKind{EventArrived, EventCompleted}, kinds(events))
	assert.Equal(t, "s-A", events[0].Waypoint.Key())
	assert.Equal(t, StateCompleted, tr.State())

	assert.Empty(t, tr.Update(fixAt(wpA.Location(), 2)))
}

func TestTracker_ArrowAngle(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Start(nil, []entity.Waypoint{wpB}))

	heading := 90.0
	fix := fixAt(wpB.Location(), 50)
	fix.Heading = &heading
	tr.Update(fix)

	g, ok := tr.Guidance()
	require.True(t, ok)
	require.NotNil(t, g.ArrowAngle)
	// Target is due north, device faces east.
	assert.InDelta(t, -90.0, *g.ArrowAngle, 0.01)
	assert.InDelta(t, 0.0, g.BearingDegrees, 0.01)

	// No heading: the arrow keeps its previous value.
	tr.Update(fixAt(wpB.Location(), 40))
	g, _ = tr.Guidance()
	require.NotNil(t, g.ArrowAngle)
	assert.InDelta(t, -90.0, *g.ArrowAngle, 0.01)
	assert.InDelta(t, 40.0, g.DistanceMeters, 0.01)
}

func TestTracker_EndToEnd(t *testing.T) {
	route := planned(wpA, wpB)
	tr := NewTracker()
	require.NoError(t, tr.Start(route, []entity.Waypoint{wpA, wpB}))

	var all []Event
	for _, d := range []float64{100, 60, 30, 10, 5, 2} {
		all = append(all, tr.Update(fixAt(wpA.Location(), d))...)
	}

	assert.Equal(t, []EventKind{EventArrived, EventAdvanced}, kinds(all))
	assert.Equal(t, "s-A", all[0].Waypoint.Key())
	assert.Equal(t, "s-B", all[1].Waypoint.Key())
	assert.Equal(t, StateNavigating, tr.State())
	assert.Equal(t, 1, tr.LegIndex())
	current, _ := tr.CurrentWaypoint()
	assert.Equal(t, "s-B", current.Key())

	leg, ok := tr.CurrentLeg()
	require.True(t, ok)
	assert.Equal(t, "s-B", leg.WaypointKey)
	assert.Len(t, tr.Route().Legs, 1)

	// B is ~13m away from this fix; no new arrival.
	assert.Empty(t, tr.Update(fixAt(wpA.Location(), 2)))

	ended := tr.End()
	assert.Equal(t, []EventKind{EventEnded}, kinds(ended))
	assert.Equal(t, StateIdle, tr.State())
	assert.Empty(t, tr.Queue())
	assert.Nil(t, tr.Route())
	_, ok = tr.CurrentWaypoint()
	assert.False(t, ok)
	assert.Nil(t, tr.End())
}

func TestTracker_Skip(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Start(planned(wpA, wpB), []entity.Waypoint{wpA, wpB}))

	events, err := tr.Skip()
	require.NoError(t, err)
	assert.Equal(t, []EventKind{EventSkipped, EventAdvanced}, kinds(events))
	assert.Equal(t, 1, tr.LegIndex())

	events, err = tr.Skip()
	require.NoError(t, err)
	assert.Equal(t, []EventKind{EventSkipped, EventCompleted}, kinds(events))
	assert.Equal(t, StateCompleted, tr.State())
	assert.Empty(t, tr.Route().Legs)

	_, err = tr.Skip()
	assert.ErrorIs(t, err, ErrNotNavigating)

	// A completed tracker can be ended and restarted.
	tr.End()
	assert.NoError(t, tr.Start(nil, []entity.Waypoint{wpA}))
}

func TestTracker_ConfirmMode(t *testing.T) {
	tr := NewTracker(WithAdvanceMode(AdvanceOnConfirm))
	require.NoError(t, tr.Start(planned(wpA, wpB), []entity.Waypoint{wpA, wpB}))

	_, err := tr.Confirm()
	assert.ErrorIs(t, err, ErrNoPendingArrival)

	events := tr.Update(fixAt(wpA.Location(), 1))
	assert.Equal(t, []EventKind{EventArrived}, kinds(events))
	assert.True(t, tr.AwaitingConfirmation())

	// Still close: arrival is not raised again while waiting.
	assert.Empty(t, tr.Update(fixAt(wpA.Location(), 0.5)))

	events, err = tr.Confirm()
	require.NoError(t, err)
	assert.Equal(t, []EventKind{EventAdvanced}, kinds(events))
	assert.False(t, tr.AwaitingConfirmation())
	current, _ := tr.CurrentWaypoint()
	assert.Equal(t, "s-B", current.Key())
}

func TestTracker_ThresholdOption(t *testing.T) {
	tr := NewTracker(WithArrivalThreshold(20))
	require.NoError(t, tr.Start(nil, []entity.Waypoint{wpA}))

	events := tr.Update(fixAt(wpA.Location(), 15))
	assert.Equal(t, []EventKind{EventArrived, EventCompleted}, kinds(events))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "navigating", StateNavigating.String())
	assert.Equal(t, "completed", StateCompleted.String())
}
