package usecase

import (
	"context"
	"io"
	"time"

	"wildnav/internal/domain/entity"
	"wildnav/internal/domain/service"
	"wildnav/internal/navigation"
)

// StartSessionInput represents the input for starting a navigation session
type StartSessionInput struct {
	UserID    string
	Position  entity.Coordinate
	Heading   *float64
	Waypoints []entity.Waypoint

	// ConfirmBeforeAdvance overrides the configured advance mode when set
	ConfirmBeforeAdvance *bool
}

// SessionEvent is a navigation event recorded on a session
type SessionEvent struct {
	ID          string                      `json:"id"`
	Type        service.NavigationEventType `json:"type"`
	WaypointKey string                      `json:"waypoint_key,omitempty"`
	Title       string                      `json:"title,omitempty"`
	LegIndex    int                         `json:"leg_index"`
	Position    entity.Coordinate           `json:"position"`
	OccurredAt  time.Time                   `json:"occurred_at"`
}

// RouteView is a route together with its totals
type RouteView struct {
	*entity.Route
	TotalDistanceMeters      float64 `json:"total_distance_meters"`
	TotalExpectedTimeSeconds float64 `json:"total_expected_time_seconds"`
	ResolvedLegs             int     `json:"resolved_legs"`
}

// SessionSnapshot is a consistent copy of a session's state
type SessionSnapshot struct {
	ID                   string                `json:"id"`
	UserID               string                `json:"user_id"`
	State                string                `json:"state"`
	AwaitingConfirmation bool                  `json:"awaiting_confirmation"`
	CurrentWaypoint      *entity.WaypointView  `json:"current_waypoint,omitempty"`
	LegIndex             int                   `json:"leg_index"`
	Route                *RouteView            `json:"route,omitempty"`
	Loading              bool                  `json:"loading"`
	LastError            string                `json:"last_error,omitempty"`
	Position             *entity.Coordinate    `json:"position,omitempty"`
	Guidance             *navigation.Guidance  `json:"guidance,omitempty"`
	Remaining            []entity.WaypointView `json:"remaining"`
	Events               []SessionEvent        `json:"events"`
	StartedAt            time.Time             `json:"started_at"`
	LastActivityAt       time.Time             `json:"last_activity_at"`
}

// NavigationUsecase defines the interface for navigation session management
type NavigationUsecase interface {
	// StartSession starts navigating through the given waypoints. A user holds at most
	// one session; an existing one is ended first. The route is built asynchronously.
	StartSession(ctx context.Context, input *StartSessionInput) (*SessionSnapshot, error)

	// PushLocation feeds a device fix into the session
	PushLocation(ctx context.Context, sessionID string, fix service.LocationFix) error

	// Session returns a snapshot of the session
	Session(ctx context.Context, sessionID string) (*SessionSnapshot, error)

	// Skip drops the current waypoint and moves on
	Skip(ctx context.Context, sessionID string) (*SessionSnapshot, error)

	// Confirm moves on after an arrival when the session waits for confirmation
	Confirm(ctx context.Context, sessionID string) (*SessionSnapshot, error)

	// DismissError clears the latest error message
	DismissError(ctx context.Context, sessionID string) (*SessionSnapshot, error)

	// Rebuild requests directions again from the latest position for the remaining waypoints
	Rebuild(ctx context.Context, sessionID string) (*SessionSnapshot, error)

	// End cancels in-flight directions requests, stops location delivery and removes the session
	End(ctx context.Context, sessionID string) error

	// Breadcrumbs returns evenly spaced points along the current leg, empty while it is unresolved
	Breadcrumbs(ctx context.Context, sessionID string, intervalMeters float64) ([]entity.Coordinate, error)

	// ExportRoute writes the remaining route and waypoints to w and returns the media type
	ExportRoute(ctx context.Context, sessionID string, w io.Writer) (string, error)

	// ActiveSessions returns the number of sessions held in memory
	ActiveSessions() int
}
