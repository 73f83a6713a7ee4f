package service

import (
	"context"
	"time"
)

// NavigationEventType names a navigation lifecycle event
type NavigationEventType string

const (
	NavigationEventStarted   NavigationEventType = "started"
	NavigationEventArrived   NavigationEventType = "arrived"
	NavigationEventAdvanced  NavigationEventType = "advanced"
	NavigationEventSkipped   NavigationEventType = "skipped"
	NavigationEventCompleted NavigationEventType = "completed"
	NavigationEventEnded     NavigationEventType = "ended"
)

// NavigationEvent is published whenever a navigation session changes state
type NavigationEvent struct {
	RequestID   string              `json:"request_id,omitempty"` // For distributed tracing
	EventID     string              `json:"event_id"`
	SessionID   string              `json:"session_id"`
	UserID      string              `json:"user_id"`
	Type        NavigationEventType `json:"type"`
	WaypointKey string              `json:"waypoint_key,omitempty"`
	Title       string              `json:"title,omitempty"`
	LegIndex    int                 `json:"leg_index"`
	Latitude    float64             `json:"latitude"`
	Longitude   float64             `json:"longitude"`
	OccurredAt  time.Time           `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNavigationEvent publishes a navigation event for downstream consumers
	PublishNavigationEvent(ctx context.Context, event *NavigationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
