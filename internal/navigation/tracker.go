package navigation

import (
	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"
	"wildnav/internal/errors"
	"wildnav/internal/geo"
)

// DefaultArrivalThresholdMeters is the distance under which a waypoint counts as reached.
const DefaultArrivalThresholdMeters = 3.0

// State of a Tracker.
type State int

const (
	StateIdle State = iota
	StateNavigating
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateNavigating:
		return "navigating"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// AdvanceMode controls what happens after an arrival.
type AdvanceMode int

const (
	// AdvanceImmediately moves on to the next waypoint as soon as one is reached.
	AdvanceImmediately AdvanceMode = iota
	// AdvanceOnConfirm waits for Confirm before moving on.
	AdvanceOnConfirm
)

// EventKind names a tracker event.
type EventKind string

const (
	// EventStarted is recorded by the session owner; the tracker never emits it.
	EventStarted   EventKind = "started"
	EventArrived   EventKind = "arrived"
	EventAdvanced  EventKind = "advanced"
	EventSkipped   EventKind = "skipped"
	EventCompleted EventKind = "completed"
	EventEnded     EventKind = "ended"
)

// Event is emitted by tracker transitions. Waypoint is the waypoint the event concerns:
// the reached or skipped one for arrived/skipped, the new target for advanced.
type Event struct {
	Kind     EventKind
	Waypoint entity.Waypoint
	LegIndex int
	Position entity.Coordinate
}

// Guidance is the latest pointing information toward the current waypoint.
type Guidance struct {
	BearingDegrees float64  `json:"bearing_degrees"`
	DistanceMeters float64  `json:"distance_meters"`
	ArrowAngle     *float64 `json:"arrow_angle,omitempty"` // target bearing relative to device heading
}

var (
	ErrTrackerBusy      = errors.New("tracker is already navigating")
	ErrEmptyQueue       = errors.New("waypoint queue is empty")
	ErrNotNavigating    = errors.New("tracker is not navigating")
	ErrNoPendingArrival = errors.New("no arrival is waiting for confirmation")
)

// Tracker is the navigation state machine: Idle, Navigating through a waypoint queue,
// and Completed. It is not safe for concurrent use; the owning session serialises access.
type Tracker struct {
	threshold float64
	mode      AdvanceMode

	state           State
	route           *entity.Route
	queue           []entity.Waypoint
	legIndex        int
	awaitingConfirm bool

	guidance    Guidance
	hasGuidance bool
	position    entity.Coordinate
	hasPosition bool
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

func WithArrivalThreshold(meters float64) TrackerOption {
	return func(t *Tracker) {
		if meters > 0 {
			t.threshold = meters
		}
	}
}

func WithAdvanceMode(mode AdvanceMode) TrackerOption {
	return func(t *Tracker) {
		t.mode = mode
	}
}

func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{threshold: DefaultArrivalThresholdMeters, mode: AdvanceImmediately}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start begins navigating toward the head of queue. route may be nil while it is still
// being built and set later with SetRoute.
func (t *Tracker) Start(route *entity.Route, queue []entity.Waypoint) error {
	if t.state == StateNavigating {
		return ErrTrackerBusy
	}
	if len(queue) == 0 {
		return ErrEmptyQueue
	}

	t.state = StateNavigating
	t.route = route
	t.queue = append([]entity.Waypoint(nil), queue...)
	t.legIndex = 0
	t.awaitingConfirm = false
	t.guidance = Guidance{}
	t.hasGuidance = false

	return nil
}

// SetRoute replaces the route, e.g. after a rebuild from the latest position.
func (t *Tracker) SetRoute(route *entity.Route) {
	if t.state != StateNavigating {
		return
	}
	t.route = route
}

// Update consumes a location fix. It refreshes the guidance toward the current waypoint
// and reports an arrival when the fix is within the arrival threshold. Without a heading
// the arrow angle keeps its previous value.
func (t *Tracker) Update(fix service.LocationFix) []Event {
	t.position = fix.Coordinate
	t.hasPosition = true

	if t.state != StateNavigating {
		return nil
	}

	target := t.queue[0].Location()
	t.guidance.BearingDegrees = geo.BearingDegrees(fix.Coordinate, target)
	t.guidance.DistanceMeters = geo.DistanceMeters(fix.Coordinate, target)
	if fix.Heading != nil {
		angle := geo.RelativeAngle(t.guidance.BearingDegrees, *fix.Heading)
		t.guidance.ArrowAngle = &angle
	}
	t.hasGuidance = true

	if t.awaitingConfirm || t.guidance.DistanceMeters > t.threshold {
		return nil
	}

	events := []Event{t.event(EventArrived, t.queue[0])}
	if t.mode == AdvanceOnConfirm {
		t.awaitingConfirm = true

		return events
	}

	return append(events, t.advance()...)
}

// Skip drops the current waypoint without a distance check and advances.
func (t *Tracker) Skip() ([]Event, error) {
	if t.state != StateNavigating {
		return nil, ErrNotNavigating
	}

	events := []Event{t.event(EventSkipped, t.queue[0])}

	return append(events, t.advance()...), nil
}

// Confirm advances past a waypoint reached in AdvanceOnConfirm mode.
func (t *Tracker) Confirm() ([]Event, error) {
	if t.state != StateNavigating {
		return nil, ErrNotNavigating
	}
	if !t.awaitingConfirm {
		return nil, ErrNoPendingArrival
	}

	return t.advance(), nil
}

// End returns to Idle from any state, clearing the route and the queue.
func (t *Tracker) End() []Event {
	if t.state == StateIdle {
		return nil
	}

	ev := Event{Kind: EventEnded, LegIndex: t.legIndex, Position: t.position}
	if len(t.queue) > 0 {
		ev.Waypoint = t.queue[0]
	}

	t.state = StateIdle
	t.route = nil
	t.queue = nil
	t.legIndex = 0
	t.awaitingConfirm = false
	t.guidance = Guidance{}
	t.hasGuidance = false

	return []Event{ev}
}

// advance removes the head of the queue together with its leg.
func (t *Tracker) advance() []Event {
	head := t.queue[0]
	t.queue = t.queue[1:]
	t.awaitingConfirm = false
	t.guidance = Guidance{}
	t.hasGuidance = false

	if t.route != nil && len(t.route.Legs) > 0 && t.route.Legs[0].WaypointKey == head.Key() {
		t.route.Legs = t.route.Legs[1:]
	}
	t.legIndex++

	if len(t.queue) == 0 {
		t.state = StateCompleted

		return []Event{t.event(EventCompleted, head)}
	}

	return []Event{t.event(EventAdvanced, t.queue[0])}
}

func (t *Tracker) event(kind EventKind, w entity.Waypoint) Event {
	return Event{Kind: kind, Waypoint: w, LegIndex: t.legIndex, Position: t.position}
}

func (t *Tracker) State() State { return t.state }

func (t *Tracker) Mode() AdvanceMode { return t.mode }

// LegIndex counts the legs completed or skipped since Start.
func (t *Tracker) LegIndex() int { return t.legIndex }

func (t *Tracker) AwaitingConfirmation() bool { return t.awaitingConfirm }

// Route returns the remaining route; its first leg leads to the current waypoint.
func (t *Tracker) Route() *entity.Route { return t.route }

// CurrentWaypoint returns the waypoint being navigated to.
func (t *Tracker) CurrentWaypoint() (entity.Waypoint, bool) {
	if t.state != StateNavigating || len(t.queue) == 0 {
		return nil, false
	}

	return t.queue[0], true
}

// CurrentLeg returns the route leg leading to the current waypoint, if known.
func (t *Tracker) CurrentLeg() (*entity.RouteLeg, bool) {
	w, ok := t.CurrentWaypoint()
	if !ok || t.route == nil || len(t.route.Legs) == 0 {
		return nil, false
	}
	if leg := t.route.Legs[0]; leg.WaypointKey == w.Key() {
		return leg, true
	}

	return nil, false
}

// Queue returns a copy of the remaining waypoints, current one first.
func (t *Tracker) Queue() []entity.Waypoint {
	return append([]entity.Waypoint(nil), t.queue...)
}

// Guidance returns the latest guidance, false until a fix arrived for the current target.
func (t *Tracker) Guidance() (Guidance, bool) {
	g := t.guidance
	if g.ArrowAngle != nil {
		angle := *g.ArrowAngle
		g.ArrowAngle = &angle
	}

	return g, t.hasGuidance
}

// Position returns the last fix coordinate seen by the tracker.
func (t *Tracker) Position() (entity.Coordinate, bool) {
	return t.position, t.hasPosition
}
